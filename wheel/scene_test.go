package wheel

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewave-io/yearwheel/lib/go2"
)

func TestBuildEmpty(t *testing.T) {
	scene := Build(nil, Options{Size: 1000, View: yearView(2025)})
	assert.Empty(t, scene.Marks)
	assert.Empty(t, scene.Labels)
	assert.Equal(t, 0, scene.Rings.Len())
	// the calendar grid still renders
	assert.Len(t, scene.Ticks, 12)
}

func TestBuildEmptyWithCategories(t *testing.T) {
	scene := Build(nil, Options{
		Size:       1000,
		View:       yearView(2025),
		Categories: []Category{{Name: "Ads"}, {Name: "Events"}},
	})
	assert.Equal(t, 2, scene.Rings.Len())
	assert.Empty(t, scene.Marks)
}

func TestBuildDegenerateSize(t *testing.T) {
	scene := Build(nil, Options{Size: 0, View: yearView(2025)})
	assert.Equal(t, minSize, scene.Geometry.Size)
	assert.Greater(t, scene.Geometry.Scale, 0.0)
	assert.Greater(t, scene.Geometry.FontSize(), 7.0)
}

func TestBuildSmallYearLabelBudget(t *testing.T) {
	// 30 activities in auto mode on a small surface: smart kicks in and the
	// labeled set stays within the small-view cap, selected always included
	var activities []*Activity
	for i := 0; i < 30; i++ {
		activities = append(activities, pointActivity(
			fmt.Sprintf("a%d", i), "ads",
			time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*12),
		))
	}
	scene := Build(activities, Options{
		Size:       400,
		View:       yearView(2025),
		LabelMode:  ModeAuto,
		SelectedID: "a23",
		Now:        time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, ModeSmart, scene.Mode)
	assert.LessOrEqual(t, len(scene.Labels), 6)
	var ids []string
	for _, l := range scene.Labels {
		ids = append(ids, l.ActivityID)
	}
	assert.Contains(t, ids, "a23")
}

func TestBuildFocusFiltersToMonth(t *testing.T) {
	march := pointActivity("march", "ads", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	june := pointActivity("june", "ads", time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	spansIn := pointActivity("spans", "ads", time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC))
	spansIn.End = go2.Pointer(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))

	scene := Build([]*Activity{march, june, spansIn}, Options{
		Size: 1000,
		View: monthView(2025, time.March),
	})

	require.Len(t, scene.Marks, 2)
	assert.NotNil(t, scene.MarkFor("march"))
	assert.NotNil(t, scene.MarkFor("spans"))
	assert.Nil(t, scene.MarkFor("june"))

	// March has 31 day ticks
	assert.Len(t, scene.Ticks, 31)
}

func TestBuildTicksYearBoundaries(t *testing.T) {
	scene := Build(nil, Options{Size: 1000, View: yearView(2025)})
	require.Len(t, scene.Ticks, 12)
	assert.Equal(t, "Jan", scene.Ticks[0].Label)
	assert.Equal(t, "Dec", scene.Ticks[11].Label)
	assert.InDelta(t, TopAngle, scene.Ticks[0].Angle, 0.0001)
	for i := 1; i < 12; i++ {
		assert.Greater(t, scene.Ticks[i].Angle, scene.Ticks[i-1].Angle)
	}
}

func TestBuildConnectionsNone(t *testing.T) {
	a := pointActivity("a", "ads", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))

	withLeaders := Build([]*Activity{a}, Options{Size: 1000, View: monthView(2025, time.March)})
	require.Len(t, withLeaders.Labels, 1)
	assert.NotEmpty(t, withLeaders.Labels[0].Leader)

	bare := Build([]*Activity{a}, Options{
		Size:        1000,
		View:        monthView(2025, time.March),
		Connections: ConnNone,
	})
	require.Len(t, bare.Labels, 1)
	assert.Empty(t, bare.Labels[0].Leader)
}

func TestSceneDragControllerRoundTrip(t *testing.T) {
	a := pointActivity("a", "ads", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	scene := Build([]*Activity{a}, Options{Size: 1000, View: monthView(2025, time.March)})

	var got []recordedUpdate
	c := scene.DragController(func(id string, handle Handle, at time.Time) {
		got = append(got, recordedUpdate{id, handle, at})
	})
	c.PointerDown("a", HandleStart)
	x, y := pointerAt(scene.Geometry, scene.View, 22)
	c.PointerUp(x, y)

	require.Len(t, got, 1)
	assert.Equal(t, 22, got[0].t.Day())
}
