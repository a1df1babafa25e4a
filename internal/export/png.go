package export

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"vizterm/internal/geometry"
	"vizterm/internal/scale"
)

func writePNG(path string, snap Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := WritePNG(f, snap); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// WritePNG rasterises the same geometry WriteSVG draws.
func WritePNG(w io.Writer, snap Snapshot) error {
	width, height := snap.size()
	dc := gg.NewContext(width, height)
	dc.SetColor(colorBackdrop)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	ss := snap.Scales
	baseY, leftX, right := ss.Axes()

	for i, e := range snap.Elements {
		drawElement(dc, e, snap.active(i))
	}

	dc.SetColor(colorAxis)
	dc.SetLineWidth(1)
	dc.DrawLine(leftX, baseY, right, baseY)
	dc.DrawLine(leftX, ss.Frame.Padding, leftX, baseY)
	dc.Stroke()

	for _, t := range ss.XTicks(scale.DefaultTicks) {
		dc.SetColor(colorAxis)
		dc.DrawLine(t.Pos, baseY, t.Pos, baseY+6)
		dc.Stroke()
		dc.SetColor(colorSubtle)
		dc.DrawStringAnchored(t.Label, t.Pos, baseY+16, 0.5, 0.5)
	}
	for _, t := range ss.YTicks(scale.DefaultTicks) {
		dc.SetColor(colorAxis)
		dc.DrawLine(leftX-6, t.Pos, leftX, t.Pos)
		dc.Stroke()
		dc.SetColor(colorSubtle)
		dc.DrawStringAnchored(t.Label, leftX-8, t.Pos, 1, 0.5)
	}

	if snap.Title != "" {
		dc.SetColor(colorText)
		dc.DrawStringAnchored(snap.Title, ss.Frame.Padding, ss.Frame.Padding/2, 0, 0.5)
	}
	dc.SetColor(colorSubtle)
	dc.DrawStringAnchored(summaryLine(snap.Summary), ss.Frame.Padding, float64(height)-10, 0, 0.5)

	return dc.EncodePNG(w)
}

func drawElement(dc *gg.Context, e geometry.Element, active bool) {
	switch e.Shape {
	case geometry.Cell:
		dc.SetColor(fill(e))
		dc.DrawRectangle(e.X, e.Y, e.W, e.H)
		dc.Fill()
		if active {
			dc.SetColor(colorActive)
			dc.SetLineWidth(2)
			dc.DrawRectangle(e.X, e.Y, e.W, e.H)
			dc.Stroke()
		}
	default:
		if active {
			dc.SetColor(colorActive)
		} else {
			dc.SetColor(fill(e))
		}
		dc.DrawCircle(e.X, e.Y, e.R)
		dc.Fill()
	}
}
