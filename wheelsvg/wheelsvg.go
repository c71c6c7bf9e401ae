// Package wheelsvg renders a computed wheel.Scene to a standalone SVG
// document. The scene is the contract: this package draws, it never lays out.
package wheelsvg

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/tidewave-io/yearwheel/lib/geo"
	"github.com/tidewave-io/yearwheel/lib/svg"
	"github.com/tidewave-io/yearwheel/wheel"
)

//go:embed style.css
var baseStylesheet string

// Arc strokes are drawn in three concentric-width passes to get a glow
// without SVG filters.
var glowWidths = []float64{3.2, 1.9, 1.0}
var glowOpacities = []float64{0.18, 0.45, 1.0}

type RenderOpts struct {
	NoXMLTag        *bool
	BackgroundColor string
}

func Render(scene *wheel.Scene, opts *RenderOpts) ([]byte, error) {
	if scene == nil {
		return nil, errors.New("wheelsvg: nil scene")
	}
	if opts == nil {
		opts = &RenderOpts{}
	}
	bg := opts.BackgroundColor
	if bg == "" {
		bg = "#ffffff"
	}

	buf := &bytes.Buffer{}
	if opts.NoXMLTag == nil || !*opts.NoXMLTag {
		buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	}
	size := scene.Geometry.Size
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %v %v" class="yearwheel">`,
		geo.TruncateDecimals(size), geo.TruncateDecimals(size))
	fmt.Fprintf(buf, "<style type=\"text/css\"><![CDATA[\n%s\n]]></style>", baseStylesheet)

	rect := NewElement("rect")
	rect.X, rect.Y = 0, 0
	rect.Width, rect.Height = size, size
	rect.Fill = bg
	buf.WriteString(rect.Render())

	drawRings(buf, scene)
	drawTicks(buf, scene)
	drawCenterLabel(buf, scene)
	for _, m := range scene.Marks {
		drawMark(buf, scene, m)
	}
	for _, l := range scene.Labels {
		drawLeader(buf, scene, l)
	}
	for _, l := range scene.Labels {
		drawLabel(buf, scene, l)
	}

	buf.WriteString("</svg>")
	return buf.Bytes(), nil
}

func drawRings(buf *bytes.Buffer, scene *wheel.Scene) {
	g := scene.Geometry
	for _, r := range scene.Rings.Rings() {
		el := NewElement("circle")
		el.Cx, el.Cy = g.Center.X, g.Center.Y
		el.R = r.Radius
		el.ClassName = "ring"
		el.StrokeWidth = g.Scale
		buf.WriteString(el.Render())
	}

	outer := NewElement("circle")
	outer.Cx, outer.Cy = g.Center.X, g.Center.Y
	outer.R = g.Outer
	outer.ClassName = "ring"
	outer.StrokeWidth = 1.5 * g.Scale
	buf.WriteString(outer.Render())
}

func drawTicks(buf *bytes.Buffer, scene *wheel.Scene) {
	g := scene.Geometry
	for _, tick := range scene.Ticks {
		from := geo.OnCircle(g.Center, g.Outer-g.TickLength(), tick.Angle)
		to := geo.OnCircle(g.Center, g.Outer+g.TickLength()/2, tick.Angle)
		line := NewElement("line")
		line.X1, line.Y1 = from.X, from.Y
		line.X2, line.Y2 = to.X, to.Y
		line.Stroke = "#d1d5db"
		line.StrokeWidth = g.Scale
		buf.WriteString(line.Render())

		at := geo.OnCircle(g.Center, g.Outer+2.2*g.TickLength(), tick.LabelAngle)
		text := NewElement("text")
		text.X, text.Y = at.X, at.Y+g.FontSize()/3
		text.FontSize = g.FontSize() * 0.85
		text.TextAnchor = "middle"
		text.ClassName = "tick-label"
		text.Content = svg.EscapeText(tick.Label)
		buf.WriteString(text.Render())
	}
}

func drawCenterLabel(buf *bytes.Buffer, scene *wheel.Scene) {
	g := scene.Geometry
	label := fmt.Sprintf("%d", scene.View.Year)
	if scene.View.Focused() {
		label = fmt.Sprintf("%s %d", scene.View.FocusedMonth.String(), scene.View.Year)
	}
	text := NewElement("text")
	text.X, text.Y = g.Center.X, g.Center.Y+g.FontSize()/2
	text.FontSize = 1.6 * g.FontSize()
	text.TextAnchor = "middle"
	text.ClassName = "center-label"
	text.Content = svg.EscapeText(label)
	buf.WriteString(text.Render())
}

func drawMark(buf *bytes.Buffer, scene *wheel.Scene, m *wheel.Mark) {
	g := scene.Geometry
	if m.Kind == wheel.MarkArc {
		for i := range glowWidths {
			path := NewElement("path")
			path.D = m.Path
			path.Fill = "none"
			path.Stroke = m.Color
			path.StrokeWidth = g.ArcWidth() * glowWidths[i]
			path.StrokeOpacity = glowOpacities[i]
			path.Attributes = `stroke-linecap="round"`
			buf.WriteString(path.Render())
		}
	}

	drawDot(buf, scene, m, m.Dot, g.DotRadius())
	if m.EndDot != nil {
		drawDot(buf, scene, m, m.EndDot, 0.8*g.DotRadius())
	}
}

func drawDot(buf *bytes.Buffer, scene *wheel.Scene, m *wheel.Mark, at *geo.Point, radius float64) {
	el := NewElement("circle")
	el.Cx, el.Cy = at.X, at.Y
	el.R = radius
	el.Fill = m.Color
	el.ClassName = "activity-dot"
	if m.Activity.ID == scene.SelectedID {
		el.ClassName = "activity-dot selected"
		el.StrokeWidth = 1.5 * scene.Geometry.Scale
	}
	el.Content = "<title>" + svg.EscapeText(m.Activity.Title) + "</title>"
	buf.WriteString(el.Render())
}

func drawLeader(buf *bytes.Buffer, scene *wheel.Scene, l *wheel.LabelItem) {
	if len(l.Leader) == 0 {
		return
	}
	pts := make([]string, 0, len(l.Leader))
	for _, p := range l.Leader {
		pts = append(pts, fmt.Sprintf("%v,%v", geo.TruncateDecimals(p.X), geo.TruncateDecimals(p.Y)))
	}
	el := NewElement("polyline")
	el.Points = strings.Join(pts, " ")
	el.Stroke = l.Color
	el.StrokeWidth = scene.Geometry.Scale
	el.ClassName = "leader"
	buf.WriteString(el.Render())
}

func drawLabel(buf *bytes.Buffer, scene *wheel.Scene, l *wheel.LabelItem) {
	g := scene.Geometry

	anchor := "start"
	if l.Side == wheel.SideLeft || (l.Side == wheel.SideInline && l.X < l.Anchor.X) {
		anchor = "end"
	}

	text := NewElement("text")
	text.X = l.X
	text.Y = l.Y + g.FontSize()
	text.FontSize = g.FontSize()
	text.TextAnchor = anchor
	text.Fill = l.Color
	text.ClassName = "activity-label"

	if len(l.Lines) == 1 {
		text.Content = svg.EscapeText(l.Lines[0])
	} else {
		var sb strings.Builder
		for i, line := range l.Lines {
			dy := 0.0
			if i > 0 {
				dy = g.LineHeight()
			}
			sb.WriteString(fmt.Sprintf(`<tspan x="%v" dy="%v">%s</tspan>`,
				geo.TruncateDecimals(l.X), geo.TruncateDecimals(dy), svg.EscapeText(line)))
		}
		text.Content = sb.String()
	}
	buf.WriteString(text.Render())
}
