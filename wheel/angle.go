package wheel

import (
	"math"
	"time"

	"github.com/tidewave-io/yearwheel/lib/geo"
)

// TopAngle is 12 o'clock in screen coordinates. The calendar starts there and
// sweeps clockwise.
const TopAngle = -math.Pi / 2

// Mapper converts between calendar time and position-on-circle for one view
// state. AngleOf and DateOf are approximate inverses: round-trips hold to the
// resolution of the active unit (month in year view, day in month focus).
type Mapper struct {
	view ViewState
}

func NewMapper(view ViewState) *Mapper {
	return &Mapper{view: view}
}

func (m *Mapper) View() ViewState {
	return m.view
}

// AngleOf returns the angle in radians for t.
//
// Year view places a date at (month + day/30)/12 of the full circle. The fixed
// 30-day month keeps the forward mapping free of per-month day counts; the
// resulting tiny angular-speed difference between short and long months is a
// kept behavior, not a bug.
func (m *Mapper) AngleOf(t time.Time) float64 {
	if m.view.Focused() {
		return m.monthAngle(t)
	}
	month := float64(t.Month() - 1)
	day := float64(t.Day())
	return (month+day/30)/12*2*math.Pi + TopAngle
}

func (m *Mapper) monthAngle(t time.Time) float64 {
	month := *m.view.FocusedMonth
	days := DaysIn(m.view.Year, month)

	// Clamp into the focused month before deriving the elapsed fraction.
	var frac float64
	switch {
	case t.Year() < m.view.Year || (t.Year() == m.view.Year && t.Month() < month):
		frac = 0
	case t.Year() > m.view.Year || (t.Year() == m.view.Year && t.Month() > month):
		frac = (float64(days-1) + 23.0/24 + 59.0/1440) / float64(days)
	default:
		frac = (float64(t.Day()-1) + float64(t.Hour())/24 + float64(t.Minute())/1440) / float64(days)
	}
	return frac*2*math.Pi + TopAngle
}

// DateOf inverts AngleOf. Any angle is accepted; it is normalized into [0, 2π)
// relative to the top of the circle first. The recovered day is always clamped
// into [1, daysInMonth].
func (m *Mapper) DateOf(angle float64) time.Time {
	turn := geo.NormalizeAngle(angle-TopAngle) / (2 * math.Pi)
	if m.view.Focused() {
		month := *m.view.FocusedMonth
		days := DaysIn(m.view.Year, month)
		day := int(turn*float64(days)) + 1
		day = clampDay(day, days)
		return time.Date(m.view.Year, month, day, 0, 0, 0, 0, time.UTC)
	}

	f := turn * 12
	monthIdx := int(f)
	if monthIdx > 11 {
		monthIdx = 11
	}
	month := time.Month(monthIdx + 1)
	day := int(math.Round((f - float64(monthIdx)) * 30))
	day = clampDay(day, DaysIn(m.view.Year, month))
	return time.Date(m.view.Year, month, day, 0, 0, 0, 0, time.UTC)
}

func clampDay(day, daysInMonth int) int {
	if day < 1 {
		return 1
	}
	if day > daysInMonth {
		return daysInMonth
	}
	return day
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
