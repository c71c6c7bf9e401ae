package wheel

import (
	"math"
	"strconv"
	"time"
)

// Options are the caller-supplied view parameters for one render.
type Options struct {
	// Size is the observed container width. The engine never measures the
	// host; feeding the size in keeps layout math headless and testable.
	Size        float64
	View        ViewState
	Categories  []Category
	LabelMode   LabelMode
	Connections ConnectionMode
	SelectedID  string
	// Now anchors the "ongoing" window for smart label selection. Zero means
	// time.Now().
	Now time.Time
}

// Tick is a calendar gridline on the outer circle: month boundaries in year
// view, day boundaries in month focus. Labels sit at the unit's midpoint.
type Tick struct {
	Angle      float64
	LabelAngle float64
	Label      string
}

// Scene is the full derived layout. It has no identity of its own: every call
// to Build discards and recomputes everything from its inputs.
type Scene struct {
	Geometry *Geometry
	View     ViewState
	Mapper   *Mapper
	Rings    *RingSet
	Marks    []*Mark
	Labels   []*LabelItem
	Ticks    []Tick
	// Mode is the resolved label mode (never ModeAuto).
	Mode       LabelMode
	SelectedID string
}

// Build computes the wheel layout. Pure: no I/O, no retained state.
func Build(activities []*Activity, opts Options) *Scene {
	g := NewGeometry(opts.Size)
	if opts.View.Year == 0 {
		opts.View.Year = time.Now().Year()
	}
	m := NewMapper(opts.View)

	visible := visibleActivities(activities, opts.View)
	rings := BuildRings(g.Outer, visible, opts.Categories)
	marks := BuildMarks(g, m, rings, visible)

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	mode := ResolveLabelMode(opts.LabelMode, len(marks), opts.View.Focused(), g.Small())
	labeled := SelectLabeled(visible, mode, opts.SelectedID, now, opts.View.Focused(), g.Small())
	labels := LayoutLabels(g, m, rings, labeled)
	if opts.Connections == ConnNone {
		for _, l := range labels {
			l.Leader = nil
		}
	}

	return &Scene{
		Geometry:   g,
		View:       opts.View,
		Mapper:     m,
		Rings:      rings,
		Marks:      marks,
		Labels:     labels,
		Ticks:      buildTicks(m, opts.View),
		Mode:       mode,
		SelectedID: opts.SelectedID,
	}
}

// DragController wires a drag state machine to this scene's geometry and
// mapper.
func (s *Scene) DragController(onUpdate UpdateFunc) *DragController {
	return NewDragController(s.Geometry, s.Mapper, onUpdate)
}

func (s *Scene) MarkFor(activityID string) *Mark {
	for _, m := range s.Marks {
		if m.Activity.ID == activityID {
			return m
		}
	}
	return nil
}

// visibleActivities drops activities without a start date and, in month
// focus, activities whose interval does not touch the focused month.
func visibleActivities(activities []*Activity, view ViewState) []*Activity {
	out := make([]*Activity, 0, len(activities))
	for _, a := range activities {
		if a.Start == nil {
			continue
		}
		if view.Focused() && !touchesMonth(a, view.Year, *view.FocusedMonth) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func touchesMonth(a *Activity, year int, month time.Month) bool {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	start := *a.Start
	end := start
	if a.End != nil {
		end = *a.End
	}
	return start.Before(monthEnd) && !end.Before(monthStart)
}

func buildTicks(m *Mapper, view ViewState) []Tick {
	if view.Focused() {
		month := *view.FocusedMonth
		days := DaysIn(view.Year, month)
		ticks := make([]Tick, 0, days)
		for d := 1; d <= days; d++ {
			at := time.Date(view.Year, month, d, 0, 0, 0, 0, time.UTC)
			mid := at.Add(12 * time.Hour)
			ticks = append(ticks, Tick{
				Angle:      m.AngleOf(at),
				LabelAngle: m.AngleOf(mid),
				Label:      strconv.Itoa(d),
			})
		}
		return ticks
	}

	// Month gridlines sit on exact twelfths. AngleOf would offset day 1 by its
	// 1/30 month fraction, which is right for activities but not for ticks.
	ticks := make([]Tick, 0, 12)
	for mo := time.January; mo <= time.December; mo++ {
		boundary := float64(mo-1) / 12 * 2 * math.Pi
		mid := (float64(mo-1) + 0.5) / 12 * 2 * math.Pi
		ticks = append(ticks, Tick{
			Angle:      boundary + TopAngle,
			LabelAngle: mid + TopAngle,
			Label:      mo.String()[:3],
		})
	}
	return ticks
}
