package wheelsvg

import (
	"fmt"
	"math"
)

// Element is a helper for building SVG elements attribute by attribute.
// Unset numeric attributes are skipped; math.MaxFloat64 is the sentinel.
type Element struct {
	tag string

	X      float64
	Y      float64
	X1     float64
	Y1     float64
	X2     float64
	Y2     float64
	R      float64
	Cx     float64
	Cy     float64
	Width  float64
	Height float64

	D         string
	Points    string
	Transform string

	Fill          string
	Stroke        string
	StrokeWidth   float64
	StrokeOpacity float64
	Opacity       float64

	FontSize   float64
	TextAnchor string

	ClassName  string
	Style      string
	Attributes string

	Content string
}

func NewElement(tag string) *Element {
	unset := math.MaxFloat64
	return &Element{
		tag:           tag,
		X:             unset,
		Y:             unset,
		X1:            unset,
		Y1:            unset,
		X2:            unset,
		Y2:            unset,
		R:             unset,
		Cx:            unset,
		Cy:            unset,
		Width:         unset,
		Height:        unset,
		StrokeWidth:   unset,
		StrokeOpacity: unset,
		Opacity:       unset,
		FontSize:      unset,
	}
}

func num(v float64) string {
	return fmt.Sprintf("%v", math.Round(v*1000)/1000)
}

func (el *Element) Render() string {
	out := "<" + el.tag

	attr := func(name string, v float64) {
		if v != math.MaxFloat64 {
			out += fmt.Sprintf(` %s="%s"`, name, num(v))
		}
	}
	attr("x", el.X)
	attr("y", el.Y)
	attr("x1", el.X1)
	attr("y1", el.Y1)
	attr("x2", el.X2)
	attr("y2", el.Y2)
	attr("cx", el.Cx)
	attr("cy", el.Cy)
	attr("r", el.R)
	attr("width", el.Width)
	attr("height", el.Height)

	if len(el.D) > 0 {
		out += fmt.Sprintf(` d="%s"`, el.D)
	}
	if len(el.Points) > 0 {
		out += fmt.Sprintf(` points="%s"`, el.Points)
	}
	if len(el.Transform) > 0 {
		out += fmt.Sprintf(` transform="%s"`, el.Transform)
	}
	if len(el.Fill) > 0 {
		out += fmt.Sprintf(` fill="%s"`, el.Fill)
	}
	if len(el.Stroke) > 0 {
		out += fmt.Sprintf(` stroke="%s"`, el.Stroke)
	}
	attr("stroke-width", el.StrokeWidth)
	attr("stroke-opacity", el.StrokeOpacity)
	attr("opacity", el.Opacity)
	attr("font-size", el.FontSize)
	if len(el.TextAnchor) > 0 {
		out += fmt.Sprintf(` text-anchor="%s"`, el.TextAnchor)
	}
	if len(el.ClassName) > 0 {
		out += fmt.Sprintf(` class="%s"`, el.ClassName)
	}
	if len(el.Style) > 0 {
		out += fmt.Sprintf(` style="%s"`, el.Style)
	}
	if len(el.Attributes) > 0 {
		out += fmt.Sprintf(` %s`, el.Attributes)
	}

	if len(el.Content) > 0 {
		return fmt.Sprintf("%s>%s</%s>", out, el.Content, el.tag)
	}
	return out + " />"
}
