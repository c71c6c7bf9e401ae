package geo

import (
	"fmt"
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// OnCircle returns the point at the given angle (radians) and radius around center.
// Angles follow screen convention: 0 is 3 o'clock, positive sweeps clockwise.
func OnCircle(center *Point, radius, angle float64) *Point {
	return &Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// AngleAround returns the screen-convention angle of p around center, in [0, 2π).
func (p *Point) AngleAround(center *Point) float64 {
	return NormalizeAngle(math.Atan2(p.Y-center.Y, p.X-center.X))
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil {
		return p2 == nil
	} else if p2 == nil {
		return false
	}
	return (p1.X == p2.X) && (p1.Y == p2.Y)
}

func (p *Point) Copy() *Point {
	return &Point{X: p.X, Y: p.Y}
}

func (p *Point) DistanceTo(p2 *Point) float64 {
	return EuclideanDistance(p.X, p.Y, p2.X, p2.Y)
}

func (p *Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
