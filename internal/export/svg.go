package export

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"vizterm/internal/geometry"
	"vizterm/internal/scale"
)

const (
	styleTick  = "fill:%s;font-size:11px;font-family:monospace"
	styleTitle = "fill:%s;font-size:16px;font-family:monospace;font-weight:bold"
)

func writeSVG(path string, snap Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WriteSVG(f, snap); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	return f.Close()
}

// WriteSVG renders snap as an SVG document. Every element carries its
// colour class and data-* attributes; the pinned one also carries "active".
func WriteSVG(w io.Writer, snap Snapshot) error {
	ew := &errWriter{w: w}
	width, height := snap.size()
	canvas := svg.New(ew)
	canvas.Start(width, height)
	if snap.Title != "" {
		canvas.Title(snap.Title)
	}
	canvas.Rect(0, 0, width, height, "fill:"+css(colorBackdrop))

	ss := snap.Scales
	pad := int(ss.Frame.Padding)
	baseY, leftX, rightX := ss.Axes()
	right := int(rightX)

	canvas.Gid("x-axis")
	canvas.Line(int(leftX), int(baseY), right, int(baseY), "stroke:"+css(colorAxis))
	for _, t := range ss.XTicks(scale.DefaultTicks) {
		x := round(t.Pos)
		canvas.Line(x, int(baseY), x, int(baseY)+6, "stroke:"+css(colorAxis))
		canvas.Text(x, int(baseY)+18, t.Label, fmt.Sprintf(styleTick, css(colorSubtle)), `text-anchor="middle"`)
	}
	canvas.Gend()

	canvas.Gid("y-axis")
	canvas.Line(int(leftX), pad, int(leftX), int(baseY), "stroke:"+css(colorAxis))
	for _, t := range ss.YTicks(scale.DefaultTicks) {
		y := round(t.Pos)
		canvas.Line(int(leftX)-6, y, int(leftX), y, "stroke:"+css(colorAxis))
		canvas.Text(int(leftX)-8, y+4, t.Label, fmt.Sprintf(styleTick, css(colorSubtle)), `text-anchor="end"`)
	}
	canvas.Gend()

	canvas.Gid("elements")
	for i, e := range snap.Elements {
		attrs := elementAttrs(e, snap.active(i))
		switch e.Shape {
		case geometry.Cell:
			canvas.Rect(round(e.X), round(e.Y), int(math.Ceil(e.W)), int(math.Ceil(e.H)), attrs...)
		default:
			canvas.Circle(round(e.X), round(e.Y), round(e.R), attrs...)
		}
	}
	canvas.Gend()

	if snap.Title != "" {
		canvas.Text(pad, pad/2+6, snap.Title, fmt.Sprintf(styleTitle, css(colorText)))
	}
	canvas.Text(pad, height-8, summaryLine(snap.Summary), fmt.Sprintf(styleTick, css(colorSubtle)), `id="summary"`)
	canvas.End()
	return ew.err
}

// elementAttrs builds svgo's trailing arguments: strings containing "=" are
// written as raw attributes, the rest as style.
func elementAttrs(e geometry.Element, active bool) []string {
	class := e.Class
	c := fill(e)
	style := "fill:" + css(c)
	if active {
		class += " active"
		style += ";stroke:" + css(colorActive) + ";stroke-width:2"
		if e.Shape == geometry.Circle {
			style = "fill:" + css(colorActive)
		}
	}
	out := make([]string, 0, len(e.Attrs)+2)
	out = append(out, fmt.Sprintf("class=%q", class))
	for _, a := range e.Attrs {
		out = append(out, fmt.Sprintf("%s=%q", a.Name, a.Value))
	}
	return append(out, style)
}

func round(v float64) int { return int(math.Round(v)) }

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
