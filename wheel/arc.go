package wheel

import (
	"math"

	"github.com/tidewave-io/yearwheel/lib/geo"
	"github.com/tidewave-io/yearwheel/lib/svg"
)

type MarkKind int

const (
	MarkDot MarkKind = iota
	MarkArc
)

// ArcSegment is one sweep-correct piece of a duration arc. Wrapping intervals
// (December→January, or month-end→month-start in focus view) produce two.
type ArcSegment struct {
	StartAngle float64
	EndAngle   float64
	Start      *geo.Point
	End        *geo.Point
	LargeArc   bool
}

// Mark is the renderable shape for one activity: a dot for point-in-time
// activities, an arc between the start and end angles for ranged ones.
type Mark struct {
	Activity   *Activity
	Ring       *Ring
	Kind       MarkKind
	StartAngle float64
	EndAngle   float64
	Dot        *geo.Point
	EndDot     *geo.Point
	Segments   []ArcSegment
	Path       string
	Color      string
}

// BuildMarks maps every placeable activity onto its ring. Activities without a
// start date are skipped; everything else always places (unknown categories
// fall back to the default ring).
func BuildMarks(g *Geometry, m *Mapper, rings *RingSet, activities []*Activity) []*Mark {
	var marks []*Mark
	for _, a := range activities {
		if a.Start == nil {
			continue
		}
		ring := rings.RingFor(a)
		if ring == nil {
			continue
		}
		mark := buildMark(g, m, ring, a)
		marks = append(marks, mark)
	}
	return marks
}

func buildMark(g *Geometry, m *Mapper, ring *Ring, a *Activity) *Mark {
	c := ring.Color
	startAngle := m.AngleOf(*a.Start)
	mark := &Mark{
		Activity:   a,
		Ring:       ring,
		Kind:       MarkDot,
		StartAngle: startAngle,
		Dot:        geo.OnCircle(g.Center, ring.Radius, startAngle),
		Color:      c,
	}
	if !a.Ranged() {
		return mark
	}

	endAngle := m.AngleOf(*a.End)
	if geo.PrecisionCompare(startAngle, endAngle, geo.PRECISION) == 0 {
		return mark
	}
	mark.Kind = MarkArc
	mark.EndAngle = endAngle
	mark.EndDot = geo.OnCircle(g.Center, ring.Radius, endAngle)
	mark.Segments = arcSegments(g.Center, ring.Radius, startAngle, endAngle)
	mark.Path = arcPath(mark.Segments, ring.Radius)
	return mark
}

// arcSegments sweeps clockwise (forward in time) from a0 to a1. When the
// interval crosses the top of the circle the end angle is numerically before
// the start, and the arc splits there into two segments so each one respects
// the single-direction sweep convention. The year view's fixed 30-day month
// pushes the last days of December slightly past the top; such a start has
// already wrapped, so the arc is a single forward segment on the far side.
func arcSegments(center *geo.Point, radius, a0, a1 float64) []ArcSegment {
	if a1 >= a0 {
		return []ArcSegment{newSegment(center, radius, a0, a1)}
	}
	top := TopAngle + 2*math.Pi
	if a0 >= top {
		return []ArcSegment{newSegment(center, radius, a0-2*math.Pi, a1)}
	}
	return []ArcSegment{
		newSegment(center, radius, a0, top),
		newSegment(center, radius, TopAngle, a1),
	}
}

func newSegment(center *geo.Point, radius, a0, a1 float64) ArcSegment {
	return ArcSegment{
		StartAngle: a0,
		EndAngle:   a1,
		Start:      geo.OnCircle(center, radius, a0),
		End:        geo.OnCircle(center, radius, a1),
		LargeArc:   a1-a0 > math.Pi,
	}
}

func arcPath(segments []ArcSegment, radius float64) string {
	ctx := svg.NewSVGPathContext()
	for _, seg := range segments {
		ctx.StartAt(seg.Start)
		ctx.A(radius, seg.LargeArc, true, seg.End.X, seg.End.Y)
	}
	return ctx.PathData()
}
