package wheel

import (
	"fmt"
	"sort"
	"time"

	"github.com/tidewave-io/yearwheel/lib/go2"
)

// LabelMode is the closed set of label visibility policies. ModeAuto is
// resolved once per render into ModeAll or ModeSmart; the layout code never
// sees it.
type LabelMode int

const (
	ModeAuto LabelMode = iota
	ModeAll
	ModeSmart
	ModeHover
	ModeNone
)

func (m LabelMode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeAll:
		return "all"
	case ModeSmart:
		return "smart"
	case ModeHover:
		return "hover"
	case ModeNone:
		return "none"
	}
	return fmt.Sprintf("LabelMode(%d)", int(m))
}

func LabelModeFromString(s string) (LabelMode, error) {
	switch s {
	case "auto":
		return ModeAuto, nil
	case "all":
		return ModeAll, nil
	case "smart":
		return ModeSmart, nil
	case "hover":
		return ModeHover, nil
	case "none":
		return ModeNone, nil
	}
	return ModeAuto, fmt.Errorf("unknown label mode %q", s)
}

// ResolveLabelMode picks all vs. smart for ModeAuto based on how many
// activities are visible, whether the surface is small, and whether month
// focus is active. Focus mode tolerates more labels because they move to the
// side rails instead of sitting inline.
func ResolveLabelMode(mode LabelMode, visibleCount int, focused, small bool) LabelMode {
	if mode != ModeAuto {
		return mode
	}
	allCutover := 8
	if focused {
		allCutover = 16
	}
	if small {
		allCutover = 5
		if focused {
			allCutover = 10
		}
	}
	if visibleCount <= allCutover {
		return ModeAll
	}
	return ModeSmart
}

// SmartBudget is how many labels the smart policy may place.
func SmartBudget(focused, small bool) int {
	switch {
	case focused && small:
		return 10
	case focused:
		return 14
	case small:
		return 6
	default:
		return 10
	}
}

// ConnectionMode controls leader lines. ConnAll and ConnLabeled currently
// coincide: a leader exists to tie a relocated label back to its anchor, and
// only labeled activities have one.
type ConnectionMode int

const (
	ConnLabeled ConnectionMode = iota
	ConnAll
	ConnNone
)

func (m ConnectionMode) String() string {
	switch m {
	case ConnAll:
		return "all"
	case ConnLabeled:
		return "labeled"
	case ConnNone:
		return "none"
	}
	return fmt.Sprintf("ConnectionMode(%d)", int(m))
}

func ConnectionModeFromString(s string) (ConnectionMode, error) {
	switch s {
	case "all":
		return ConnAll, nil
	case "labeled":
		return ConnLabeled, nil
	case "none":
		return ConnNone, nil
	}
	return ConnLabeled, fmt.Errorf("unknown connection mode %q", s)
}

const (
	statusBoostActive  = 1000
	statusBoostPlanned = 250
)

// importanceScore ranks activities for smart label selection. Bigger budgets,
// heavier weights and longer durations win, with active status dominating.
func importanceScore(a *Activity) float64 {
	var s float64
	switch a.Status {
	case StatusActive:
		s += statusBoostActive
	case StatusPlanned:
		s += statusBoostPlanned
	}
	s += go2.Min(2000.0, a.Budget/10)
	s += go2.Min(300.0, float64(a.Weight)*5)
	s += go2.Min(120.0, float64(a.DurationDays()))
	return s
}

// SelectLabeled returns the subset of activities that get text labels under
// the given (already resolved) mode. The selected activity, if any, is always
// included under smart and hover.
func SelectLabeled(activities []*Activity, mode LabelMode, selectedID string, now time.Time, focused, small bool) []*Activity {
	switch mode {
	case ModeNone:
		return nil
	case ModeAll:
		return activities
	case ModeHover:
		for _, a := range activities {
			if a.ID == selectedID {
				return []*Activity{a}
			}
		}
		return nil
	}

	budget := SmartBudget(focused, small)
	picked := make([]*Activity, 0, budget)
	seen := map[string]bool{}

	take := func(a *Activity) {
		if len(picked) >= budget || seen[a.ID] {
			return
		}
		seen[a.ID] = true
		picked = append(picked, a)
	}

	for _, a := range activities {
		if a.ID == selectedID {
			take(a)
		}
	}
	for _, a := range activities {
		if a.OngoingAt(now) {
			take(a)
		}
	}

	rest := go2.Filter(activities, func(a *Activity) bool { return !seen[a.ID] })
	sort.SliceStable(rest, func(i, j int) bool {
		return importanceScore(rest[i]) > importanceScore(rest[j])
	})
	for _, a := range rest {
		take(a)
	}
	return picked
}
