package tui

import (
	"vizterm/internal/resize"
	"vizterm/internal/scale"
)

const (
	headerHeight = 2 // title + summary bar
	footerHeight = 2 // status/help + comparison
	sidebarWidth = 28
	detailWidth  = 34
	yGutter      = 7
	minDetailFit = 72
)

// layout is the cell geometry of one frame. Chart coordinates include the
// y-label gutter and the x-label row; plot coordinates are the braille area.
type layout struct {
	contentW, contentH int

	sidebarW int
	detailW  int

	chartX, chartY int
	chartW, chartH int

	gutter       int
	plotW, plotH int
}

func computeLayout(size resize.Size, sidebar bool) layout {
	l := layout{contentW: max(10, size.Width)}
	l.contentH = max(4, size.Height-headerHeight-footerHeight)
	if sidebar {
		l.sidebarW = sidebarWidth
		l.chartX = sidebarWidth + 1
	}
	if l.contentW-l.sidebarW >= minDetailFit {
		l.detailW = detailWidth
	}
	l.chartY = headerHeight
	l.chartW = max(10, l.contentW-l.chartX-l.detailW)
	if l.detailW > 0 {
		l.chartW = max(10, l.chartW-1)
	}
	l.chartH = l.contentH
	l.gutter = yGutter
	l.plotW = max(2, l.chartW-l.gutter)
	l.plotH = max(2, l.chartH-1)
	return l
}

// frame is the plot area in braille micro-pixels.
func (l layout) frame(padding float64) scale.Frame {
	return scale.Frame{Width: float64(l.plotW * 2), Height: float64(l.plotH * 4), Padding: padding}
}

// toMicro maps a screen cell to the centre of its braille cell in plot
// micro-pixels. ok is false outside the plot.
func (l layout) toMicro(x, y int) (px, py float64, ok bool) {
	cx, cy := x-l.chartX-l.gutter, y-l.chartY
	if cx < 0 || cy < 0 || cx >= l.plotW || cy >= l.plotH {
		return 0, 0, false
	}
	return float64(cx*2) + 0.5, float64(cy*4) + 1.5, true
}
