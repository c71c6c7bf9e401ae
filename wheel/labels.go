package wheel

import (
	"math"
	"sort"
	"strings"

	"github.com/tidewave-io/yearwheel/lib/color"
	"github.com/tidewave-io/yearwheel/lib/geo"
	"github.com/tidewave-io/yearwheel/lib/go2"
)

type Side int

const (
	SideInline Side = iota
	SideLeft
	SideRight
)

const (
	minTruncateBudget = 6
	ellipsis          = "…"

	// rail wrapping
	railWrapWidth = 18
	railMaxLines  = 3
)

// LabelItem is a resolved label: anchor on the ring, final text origin, and
// wrapped lines. Recomputed on every relevant input change, never persisted.
type LabelItem struct {
	ActivityID string
	Anchor     *geo.Point
	Side       Side
	X, Y       float64
	Lines      []string
	Height     float64
	Color      string
	// Leader ties a rail label back to its true angular position:
	// anchor → circle edge → rail. Empty for inline labels.
	Leader []*geo.Point
}

// Truncate cuts s to at most budget characters, appending a single ellipsis.
// The budget never drops below 6. Truncating an already truncated string with
// the same budget is a no-op.
func Truncate(s string, budget int) string {
	budget = go2.Max(budget, minTruncateBudget)
	r := []rune(s)
	if len(r) <= budget {
		return s
	}
	return string(r[:budget-1]) + ellipsis
}

// WrapLines word-wraps s to width characters and at most maxLines lines.
// Words longer than a line are hard-broken mid-word; when content is cut, the
// last line carries an ellipsis.
func WrapLines(s string, width, maxLines int) []string {
	width = go2.Max(width, 1)
	var lines []string
	cur := ""
	flush := func() {
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
	}
	for _, word := range strings.Fields(s) {
		for len([]rune(word)) > width {
			flush()
			r := []rune(word)
			lines = append(lines, string(r[:width]))
			word = string(r[width:])
		}
		switch {
		case cur == "":
			cur = word
		case len([]rune(cur))+1+len([]rune(word)) <= width:
			cur += " " + word
		default:
			flush()
			cur = word
		}
	}
	flush()

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		r := []rune(last)
		if len(r) >= width {
			last = string(r[:width-1]) + ellipsis
		} else {
			last += ellipsis
		}
		lines[maxLines-1] = last
	}
	return lines
}

// LayoutLabels positions labels for the already-selected subset of activities.
//
// Year view keeps labels inline next to their dots, truncated to the
// horizontal room left between the anchor and the render edge. Month focus
// pushes labels onto a left or right rail (split by which horizontal half the
// anchor angle falls in) and relaxes each rail so labels never overlap.
func LayoutLabels(g *Geometry, m *Mapper, rings *RingSet, labeled []*Activity) []*LabelItem {
	var items []*LabelItem
	for _, a := range labeled {
		if a.Start == nil {
			continue
		}
		ring := rings.RingFor(a)
		if ring == nil {
			continue
		}
		angle := m.AngleOf(*a.Start)
		anchor := geo.OnCircle(g.Center, ring.Radius, angle)
		c := ring.Color
		if a.Color != "" {
			if hex, err := color.Normalize(a.Color); err == nil {
				c = hex
			}
		}
		c = labelColor(c)

		if !m.View().Focused() {
			items = append(items, inlineLabel(g, a, anchor, angle, c))
			continue
		}
		items = append(items, railLabel(g, a, anchor, angle, c))
	}

	if m.View().Focused() {
		relaxRail(g, sideItems(items, SideLeft))
		relaxRail(g, sideItems(items, SideRight))
	}
	return items
}

// labelColor darkens bright colors so text stays legible against the light
// background; colors already in the dark luminance bands pass through.
func labelColor(c string) string {
	cat, err := color.LuminanceCategory(c)
	if err != nil || cat == "dark" || cat == "darker" {
		return c
	}
	if dark, err := color.Darken(c); err == nil {
		return dark
	}
	return c
}

func inlineLabel(g *Geometry, a *Activity, anchor *geo.Point, angle float64, c string) *LabelItem {
	offset := g.DotRadius() + g.LabelGap()
	x := anchor.X + offset
	room := g.Size - x
	if geo.Sign(math.Cos(angle)) < 0 {
		x = anchor.X - offset
		room = x
	}
	budget := int(room / g.CharWidth())
	return &LabelItem{
		ActivityID: a.ID,
		Anchor:     anchor.Copy(),
		Side:       SideInline,
		X:          x,
		Y:          anchor.Y - g.FontSize()/2,
		Lines:      []string{Truncate(a.Title, budget)},
		Height:     g.LineHeight(),
		Color:      c,
	}
}

func railLabel(g *Geometry, a *Activity, anchor *geo.Point, angle float64, c string) *LabelItem {
	side := SideRight
	if geo.Sign(math.Cos(angle)) < 0 {
		side = SideLeft
	}
	railGap := 3 * g.LabelGap()
	x := g.Center.X + g.Outer + railGap
	if side == SideLeft {
		x = g.Center.X - g.Outer - railGap
	}
	lines := WrapLines(a.Title, railWrapWidth, railMaxLines)
	if len(lines) == 0 {
		lines = []string{Truncate(a.ID, railWrapWidth)}
	}
	return &LabelItem{
		ActivityID: a.ID,
		Anchor:     anchor.Copy(),
		Side:       side,
		X:          x,
		Y:          anchor.Y - g.LineHeight()/2,
		Lines:      lines,
		Height:     float64(len(lines)) * g.LineHeight(),
		Color:      c,
	}
}

func sideItems(items []*LabelItem, side Side) []*LabelItem {
	out := make([]*LabelItem, 0, len(items))
	for _, it := range items {
		if it.Side == side {
			out = append(out, it)
		}
	}
	return out
}

// relaxRail resolves vertical collisions on one rail with a constrained
// two-pass relaxation:
//
//  1. sort by natural anchor position
//  2. forward pass pushes labels down until no pair overlaps
//  3. if the rail overflows the bottom bound, shift the whole rail up
//  4. backward pass pulls labels back toward their naturals and re-clamps to
//     the top bound without reintroducing overlap
//
// No-overlap is the hard guarantee; staying inside the circle's vertical
// extent is best-effort and holds whenever the total label height fits.
func relaxRail(g *Geometry, rail []*LabelItem) {
	if len(rail) == 0 {
		return
	}
	sort.SliceStable(rail, func(i, j int) bool { return rail[i].Y < rail[j].Y })

	gap := g.LabelGap()
	minY := g.Center.Y - g.Outer
	maxY := g.Center.Y + g.Outer

	// forward: push down
	for i := 1; i < len(rail); i++ {
		floor := rail[i-1].Y + rail[i-1].Height + gap
		if rail[i].Y < floor {
			rail[i].Y = floor
		}
	}

	// shift the whole rail up by any bottom overflow
	last := rail[len(rail)-1]
	if over := last.Y + last.Height - maxY; over > 0 {
		for _, it := range rail {
			it.Y -= over
		}
	}

	// backward: pull up under the successor
	for i := len(rail) - 2; i >= 0; i-- {
		ceil := rail[i+1].Y - gap - rail[i].Height
		if rail[i].Y > ceil {
			rail[i].Y = ceil
		}
	}

	// re-clamp to the top bound, pushing down only as far as no-overlap allows
	floor := minY
	for _, it := range rail {
		if it.Y < floor {
			it.Y = floor
		}
		floor = it.Y + it.Height + gap
	}

	for _, it := range rail {
		attachLeader(g, it)
	}
}

func attachLeader(g *Geometry, it *LabelItem) {
	angle := it.Anchor.AngleAround(g.Center)
	edge := geo.OnCircle(g.Center, g.Outer+g.LabelGap(), angle)
	railEnd := geo.NewPoint(it.X-g.LabelGap(), it.Y+g.LineHeight()/2)
	if it.Side == SideLeft {
		railEnd.X = it.X + g.LabelGap()
	}
	it.Leader = []*geo.Point{it.Anchor.Copy(), edge, railEnd}
}
