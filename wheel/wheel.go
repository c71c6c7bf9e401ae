// Package wheel computes radial calendar layouts for dated marketing
// activities: ring assignment per category, angle/date mapping, label
// visibility and collision layout, duration arcs, and drag-to-reschedule.
//
// Everything here is a pure function of (activities, view state, render size);
// the only stateful piece is DragController, which holds the active pointer
// session between pointer-down and pointer-up.
package wheel

import (
	"time"
)

type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusActive    Status = "ACTIVE"
	StatusDone      Status = "DONE"
	StatusCancelled Status = "CANCELLED"
)

type Handle string

const (
	HandleStart Handle = "start"
	HandleEnd   Handle = "end"
)

// Activity is caller-owned input. The engine never mutates it; reschedules are
// surfaced through DragController's update callback.
type Activity struct {
	ID            string
	Title         string
	Category      string
	Status        Status
	Weight        int
	Budget        float64
	ExpectedLeads int
	Start         *time.Time
	End           *time.Time
	Owner         string
	Notes         string
	Color         string
}

// Ranged reports whether the activity spans a duration and is drawn as an arc
// rather than a dot.
func (a *Activity) Ranged() bool {
	return a.Start != nil && a.End != nil
}

func (a *Activity) DurationDays() int {
	if !a.Ranged() {
		return 0
	}
	d := int(a.End.Sub(*a.Start).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// ongoingPointWindow is how close to now a point-in-time activity still counts
// as ongoing for label selection.
const ongoingPointWindow = 7 * 24 * time.Hour

func (a *Activity) OngoingAt(now time.Time) bool {
	if a.Start == nil {
		return false
	}
	if a.End != nil {
		return !now.Before(*a.Start) && !now.After(*a.End)
	}
	d := now.Sub(*a.Start)
	if d < 0 {
		d = -d
	}
	return d <= ongoingPointWindow
}

// Category is an optional caller-supplied ring definition. Color may be any
// CSS color; unparseable colors fall back to the ring palette.
type Category struct {
	Name  string
	Color string
}

// ViewState selects between the year view and a single focused month. When
// FocusedMonth is set the whole circle represents that month's days; all angle
// math re-derives from it.
type ViewState struct {
	Year         int
	FocusedMonth *time.Month
}

func (v ViewState) Focused() bool {
	return v.FocusedMonth != nil
}
