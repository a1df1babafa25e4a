package tui

import (
	"math"
	"strings"

	"vizterm/internal/geometry"
	"vizterm/internal/scale"
)

// grid is a cell canvas: one rune and one colour class per cell.
type grid struct {
	w, h int
	r    [][]rune
	c    [][]cellClass
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, r: make([][]rune, h), c: make([][]cellClass, h)}
	for y := 0; y < h; y++ {
		g.r[y] = []rune(strings.Repeat(" ", w))
		g.c[y] = make([]cellClass, w)
	}
	return g
}

func (g *grid) put(x, y int, r rune, c cellClass) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.r[y][x] = r
	g.c[y][x] = c
}

func (g *grid) text(x, y int, s string, c cellClass) {
	for i, r := range []rune(s) {
		g.put(x+i, y, r, c)
	}
}

// box draws lines inside a rounded border with its top-left corner at (x, y).
func (g *grid) box(x, y int, lines []string, c cellClass) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	g.text(x, y, "╭"+strings.Repeat("─", w+2)+"╮", c)
	for i, l := range lines {
		g.text(x, y+1+i, "│ "+padRight(l, w-len([]rune(l)))+" │", c)
	}
	g.text(x, y+1+len(lines), "╰"+strings.Repeat("─", w+2)+"╯", c)
}

// lines styles runs of equally classed cells.
func (g *grid) lines() []string {
	out := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		var sb strings.Builder
		for x := 0; x < g.w; {
			c := g.c[y][x]
			end := x
			for end < g.w && g.c[y][end] == c {
				end++
			}
			run := string(g.r[y][x:end])
			if st, ok := classStyles[c]; ok {
				run = st.Render(run)
			}
			sb.WriteString(run)
			x = end
		}
		out[y] = sb.String()
	}
	return out
}

func boxSize(lines []string) (w, h int) {
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	return w + 4, len(lines) + 2
}

func elementClass(e geometry.Element) cellClass {
	if e.Shape == geometry.Cell {
		switch e.Bucket {
		case geometry.Coolest:
			return clsCoolest
		case geometry.Cool:
			return clsCool
		case geometry.Warm:
			return clsWarm
		default:
			return clsWarmest
		}
	}
	if strings.HasSuffix(e.Class, geometry.ClassDoping) {
		return clsDoping
	}
	return clsClean
}

func micro(v float64) int { return int(math.Round(v)) }

// renderChart draws axes, labels, elements and the tooltip for the chart
// area described by l. Element coordinates are braille micro-pixels
// relative to the plot origin.
func (m Model) renderChart(l layout) string {
	g := newGrid(l.chartW, l.chartH)
	if !m.chart.Ready() {
		msg := "loading " + m.source + " …"
		if m.loadErr != nil {
			msg = "load failed: " + m.loadErr.Error()
		}
		msg = truncate(msg, l.chartW)
		g.text((l.chartW-len([]rune(msg)))/2, l.chartH/2, msg, clsLabel)
		return strings.Join(g.lines(), "\n")
	}

	ss := m.chart.Scales()
	br := newBrailleBuf(l.plotW, l.plotH)

	baseY, leftX, rightX := ss.Axes()
	br.drawLineMicro(micro(leftX), micro(baseY), micro(rightX), micro(baseY), clsAxis)
	br.drawLineMicro(micro(leftX), micro(ss.Frame.Padding), micro(leftX), micro(baseY), clsAxis)

	vis := m.chart.Visuals()
	for i, e := range m.chart.Elements() {
		c := elementClass(e)
		if i < len(vis) {
			switch {
			case vis[i].Active:
				c = clsActive
			case vis[i].Hovered:
				c = clsHover
			}
		}
		switch e.Shape {
		case geometry.Cell:
			br.fillRectMicro(micro(e.X), micro(e.Y), micro(e.X+e.W), micro(e.Y+e.H), c)
		default:
			r := 1
			if c == clsActive || c == clsHover {
				r = 2
			}
			br.fillDiscMicro(micro(e.X), micro(e.Y), r, c)
		}
	}
	br.composite(g, l.gutter, 0)

	m.drawTicks(g, l, ss)

	if tip := m.tip.block; tip.Visible && m.hovering {
		w, h := boxSize(tip.Lines)
		px, py := m.pointerX-l.chartX, m.pointerY-l.chartY
		x := px + 2
		if x+w > l.chartW {
			x = px - w - 1
		}
		y := clamp(py-h/2, 0, max(0, l.chartH-h))
		g.box(clamp(x, 0, max(0, l.chartW-w)), y, tip.Lines, clsTooltip)
	}
	return strings.Join(g.lines(), "\n")
}

func (m Model) drawTicks(g *grid, l layout, ss scale.ScaleSet) {
	labelRow := l.plotH
	next := 0
	for _, t := range ss.XTicks(scale.DefaultTicks) {
		col := l.gutter + micro(t.Pos)/2
		start := col - len([]rune(t.Label))/2
		if start < next || start+len([]rune(t.Label)) > l.chartW {
			continue
		}
		g.text(start, labelRow, t.Label, clsLabel)
		next = start + len([]rune(t.Label)) + 1
	}
	lastRow := -1
	for _, t := range ss.YTicks(scale.DefaultTicks) {
		row := micro(t.Pos) / 4
		if row == lastRow || row >= l.plotH {
			continue
		}
		label := truncate(t.Label, l.gutter-1)
		g.text(l.gutter-1-len([]rune(label)), row, label, clsLabel)
		lastRow = row
	}
}
