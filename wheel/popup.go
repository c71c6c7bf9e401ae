package wheel

import (
	"math"

	"github.com/tidewave-io/yearwheel/lib/geo"
)

const popupMargin = 12.0

// PopupAnchor places the host UI's detail card next to an activity's dot,
// offset outward along the radial direction. Anchors that would leave the
// render surface flip inward, then clamp, so the card never opens off-screen.
func PopupAnchor(g *Geometry, dot *geo.Point) *geo.Point {
	angle := dot.AngleAround(g.Center)
	offset := 5 * g.DotRadius()

	p := geo.OnCircle(g.Center, dot.DistanceTo(g.Center)+offset, angle)
	if p.X < popupMargin || p.X > g.Size-popupMargin ||
		p.Y < popupMargin || p.Y > g.Size-popupMargin {
		p = geo.OnCircle(g.Center, math.Max(0, dot.DistanceTo(g.Center)-offset), angle)
	}
	p.X = geo.Clamp(p.X, popupMargin, g.Size-popupMargin)
	p.Y = geo.Clamp(p.Y, popupMargin, g.Size-popupMargin)
	return p
}
