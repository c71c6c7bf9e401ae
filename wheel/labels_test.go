package wheel

import (
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly 10", Truncate("exactly 10", 10))

	cut := Truncate("a very long campaign title", 10)
	assert.Equal(t, 10, len([]rune(cut)))
	assert.True(t, strings.HasSuffix(cut, "…"))
}

func TestTruncateIdempotent(t *testing.T) {
	s := "quarterly newsletter relaunch with partners"
	for _, budget := range []int{6, 10, 20} {
		once := Truncate(s, budget)
		assert.Equal(t, once, Truncate(once, budget))
	}
}

func TestTruncateBudgetFloor(t *testing.T) {
	// budgets below 6 are raised to 6
	cut := Truncate("abcdefghij", 2)
	assert.Equal(t, "abcde…", cut)
	assert.Equal(t, "abcdef", Truncate("abcdef", 0))
}

func TestWrapLines(t *testing.T) {
	lines := WrapLines("spring campaign kickoff", 10, 3)
	assert.Equal(t, []string{"spring", "campaign", "kickoff"}, lines)

	lines = WrapLines("big launch", 18, 3)
	assert.Equal(t, []string{"big launch"}, lines)

	assert.Empty(t, WrapLines("", 18, 3))
}

func TestWrapLinesHardBreaksLongWords(t *testing.T) {
	lines := WrapLines("antidisestablishmentarianism", 10, 3)
	require.True(t, len(lines) >= 2)
	assert.Equal(t, "antidisest", lines[0])
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), 10)
	}
}

func TestWrapLinesCapsWithEllipsis(t *testing.T) {
	long := strings.Repeat("word ", 30)
	lines := WrapLines(long, 10, 3)
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[2], "…"))
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), 10)
	}
}

func denseMonthActivities(n int) []*Activity {
	var out []*Activity
	for i := 0; i < n; i++ {
		out = append(out, pointActivity(
			fmt.Sprintf("a%d", i),
			"ads",
			time.Date(2025, time.March, 1+(i%28), 0, 0, 0, 0, time.UTC),
		))
	}
	return out
}

func focusLayout(t *testing.T, n int, size float64) (*Geometry, []*LabelItem) {
	t.Helper()
	g := NewGeometry(size)
	m := NewMapper(monthView(2025, time.March))
	activities := denseMonthActivities(n)
	rings := BuildRings(g.Outer, activities, nil)
	return g, LayoutLabels(g, m, rings, activities)
}

func railOf(items []*LabelItem, side Side) []*LabelItem {
	return sideItems(items, side)
}

func assertNoRailOverlap(t *testing.T, g *Geometry, rail []*LabelItem) {
	t.Helper()
	rail = append([]*LabelItem{}, rail...)
	sort.Slice(rail, func(i, j int) bool { return rail[i].Y < rail[j].Y })
	for i := 1; i < len(rail); i++ {
		a, b := rail[i-1], rail[i]
		assert.GreaterOrEqualf(t, b.Y, a.Y+a.Height+g.LabelGap()-0.001,
			"labels %s and %s overlap: %v then %v (h=%v)", a.ActivityID, b.ActivityID, a.Y, b.Y, a.Height)
	}
}

func TestRailNoOverlapInvariant(t *testing.T) {
	for _, n := range []int{3, 8, 15, 25} {
		g, items := focusLayout(t, n, 1000)
		for _, side := range []Side{SideLeft, SideRight} {
			assertNoRailOverlap(t, g, railOf(items, side))
		}
	}
}

func TestRailBoundsPreference(t *testing.T) {
	g, items := focusLayout(t, 8, 1000)
	minY := g.Center.Y - g.Outer
	maxY := g.Center.Y + g.Outer
	for _, it := range items {
		assert.GreaterOrEqual(t, it.Y, minY-0.001)
		assert.LessOrEqual(t, it.Y+it.Height, maxY+0.001)
	}
}

func TestRailOverflowKeepsNoOverlap(t *testing.T) {
	// far more labels than the rail can hold: bounds may break, overlap may not
	g, items := focusLayout(t, 60, 320)
	for _, side := range []Side{SideLeft, SideRight} {
		assertNoRailOverlap(t, g, railOf(items, side))
	}
}

func TestRailSideAssignment(t *testing.T) {
	g := NewGeometry(1000)
	m := NewMapper(monthView(2025, time.March))
	// day 8 of 31 is about a quarter turn: right half. Day 24 is the left half.
	right := pointActivity("right", "ads", time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC))
	left := pointActivity("left", "ads", time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC))
	activities := []*Activity{right, left}
	rings := BuildRings(g.Outer, activities, nil)

	items := LayoutLabels(g, m, rings, activities)
	require.Len(t, items, 2)
	bySide := map[string]Side{}
	for _, it := range items {
		bySide[it.ActivityID] = it.Side
	}
	assert.Equal(t, SideRight, bySide["right"])
	assert.Equal(t, SideLeft, bySide["left"])
}

func TestRailLabelsHaveLeaders(t *testing.T) {
	_, items := focusLayout(t, 5, 1000)
	for _, it := range items {
		require.Len(t, it.Leader, 3)
		assert.True(t, it.Leader[0].Equals(it.Anchor))
	}
}

func TestInlineLabelsSingleLineNoLeader(t *testing.T) {
	g := NewGeometry(1000)
	m := NewMapper(yearView(2025))
	a := pointActivity("a", "ads", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))
	a.Title = strings.Repeat("campaign ", 20)
	rings := BuildRings(g.Outer, []*Activity{a}, nil)

	items := LayoutLabels(g, m, rings, []*Activity{a})
	require.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, SideInline, it.Side)
	assert.Empty(t, it.Leader)
	require.Len(t, it.Lines, 1)
	assert.True(t, strings.HasSuffix(it.Lines[0], "…"))
	assert.GreaterOrEqual(t, len([]rune(it.Lines[0])), 6)
}

func TestLabelColorDarkensOnlyBrightColors(t *testing.T) {
	g := NewGeometry(1000)
	m := NewMapper(yearView(2025))
	bright := pointActivity("bright", "ads", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	bright.Color = "#ffffff"
	dark := pointActivity("dark", "ads", time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC))
	dark.Color = "#111111"
	activities := []*Activity{bright, dark}
	rings := BuildRings(g.Outer, activities, nil)

	items := LayoutLabels(g, m, rings, activities)
	require.Len(t, items, 2)
	byID := map[string]string{}
	for _, it := range items {
		byID[it.ActivityID] = it.Color
	}
	// bright text would vanish on the background, so it is darkened
	assert.NotEqual(t, "#ffffff", byID["bright"])
	// an already dark color passes through untouched
	assert.Equal(t, "#111111", byID["dark"])
}

func TestRelaxRailPreservesOrder(t *testing.T) {
	// a label anchored above another never ends up below it
	_, items := focusLayout(t, 20, 1000)
	for _, side := range []Side{SideLeft, SideRight} {
		rail := railOf(items, side)
		for i := 0; i < len(rail); i++ {
			for j := 0; j < len(rail); j++ {
				if rail[i].Anchor.Y < rail[j].Anchor.Y {
					assert.LessOrEqual(t, rail[i].Y, rail[j].Y)
				}
			}
		}
	}
}
