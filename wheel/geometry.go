package wheel

import (
	"math"

	"github.com/tidewave-io/yearwheel/lib/geo"
)

const (
	baseSize = 1000.0

	// minSize is the floor for a collapsing container. Below it, scale-derived
	// sizes (fonts, dots, gaps) would become illegible.
	minSize   = 320.0
	smallSize = 520.0

	minScale = 0.66
	maxScale = 2.5

	outerRadiusFrac = 0.44
)

// Geometry holds the scale factors derived from the render size hint. It is
// rebuilt on every size change; nothing in it is cached across renders.
type Geometry struct {
	Size   float64
	Center *geo.Point
	Outer  float64
	Scale  float64
}

func NewGeometry(sizeHint float64) *Geometry {
	size := math.Max(sizeHint, minSize)
	return &Geometry{
		Size:   size,
		Center: geo.NewPoint(size/2, size/2),
		Outer:  size * outerRadiusFrac,
		Scale:  geo.Clamp(size/baseSize, minScale, maxScale),
	}
}

// Small reports whether the render surface is tight enough to lower the label
// visibility cutovers.
func (g *Geometry) Small() bool {
	return g.Size < smallSize
}

func (g *Geometry) FontSize() float64 {
	return 12 * g.Scale
}

func (g *Geometry) LineHeight() float64 {
	return g.FontSize() * 1.3
}

// CharWidth approximates the average glyph advance at the current font size.
// Label budgets are character counts, not measured text.
func (g *Geometry) CharWidth() float64 {
	return g.FontSize() * 0.58
}

func (g *Geometry) DotRadius() float64 {
	return 5 * g.Scale
}

func (g *Geometry) ArcWidth() float64 {
	return 6 * g.Scale
}

func (g *Geometry) LabelGap() float64 {
	return 4 * g.Scale
}

func (g *Geometry) TickLength() float64 {
	return 7 * g.Scale
}
