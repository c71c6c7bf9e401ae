package svg

import (
	"fmt"
	"math"
	"strings"

	"github.com/tidewave-io/yearwheel/lib/geo"
)

// SvgPathContext accumulates SVG path commands.
type SvgPathContext struct {
	Commands []string
	Start    *geo.Point
	Current  *geo.Point
}

func chopPrecision(f float64) float64 {
	return math.Round(f*10000) / 10000
}

func NewSVGPathContext() *SvgPathContext {
	return &SvgPathContext{}
}

func (c *SvgPathContext) StartAt(p *geo.Point) {
	c.Start = p.Copy()
	c.Commands = append(c.Commands, fmt.Sprintf("M %v %v", chopPrecision(p.X), chopPrecision(p.Y)))
	c.Current = p.Copy()
}

func (c *SvgPathContext) L(x, y float64) {
	c.Commands = append(c.Commands, fmt.Sprintf("L %v %v", chopPrecision(x), chopPrecision(y)))
	c.Current = geo.NewPoint(x, y)
}

// A appends an elliptical arc command with equal radii. sweep=true follows the
// clockwise (screen) direction.
func (c *SvgPathContext) A(radius float64, largeArc, sweep bool, x, y float64) {
	large := 0
	if largeArc {
		large = 1
	}
	sweepFlag := 0
	if sweep {
		sweepFlag = 1
	}
	c.Commands = append(c.Commands, fmt.Sprintf("A %v %v 0 %d %d %v %v",
		chopPrecision(radius), chopPrecision(radius), large, sweepFlag, chopPrecision(x), chopPrecision(y)))
	c.Current = geo.NewPoint(x, y)
}

func (c *SvgPathContext) Z() {
	c.Commands = append(c.Commands, "Z")
	c.Current = c.Start.Copy()
}

func (c *SvgPathContext) PathData() string {
	return strings.Join(c.Commands, " ")
}
