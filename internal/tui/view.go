package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Header: title and summary bar
	title := titleStyle.Render(" vizterm ─ " + displayName(m.source) + " ")
	s := m.chart.Summary()
	summary := dimStyle.Render(" Total: ") + s.Total +
		dimStyle.Render("  Max: ") + s.Max +
		dimStyle.Render("  Min: ") + s.Min +
		dimStyle.Render("  Mean: ") + s.Mean
	if !m.chart.Ready() {
		summary = dimStyle.Render(" no data")
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(l.contentW).Render(title),
		lipgloss.NewStyle().Width(l.contentW).Render(summary))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
		sidebar = lipgloss.NewStyle().Width(l.sidebarW).Render(m.l.View())
	}

	// Chart area
	var chartView string
	switch {
	case m.showRecords:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(l.chartW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(l.chartH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		chartView = lipgloss.Place(l.chartW, l.chartH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(l.chartW)
		m.ta.SetHeight(min(l.chartH, 3))
		chartView = lipgloss.Place(l.chartW, l.chartH, lipgloss.Left, lipgloss.Center, m.ta.View())
	default:
		chartView = lipgloss.NewStyle().Width(l.chartW).Height(l.chartH).Render(m.renderChart(l))
	}

	// Detail panel
	cols := []string{}
	if m.showSidebar {
		cols = append(cols, sidebar, " ")
	}
	cols = append(cols, chartView)
	if l.detailW > 0 {
		cols = append(cols, " ", m.renderDetail(l.detailW, l.contentH))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	if m.loadErr != nil {
		status = errStyle.Render(" " + m.status + " ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	coords := m.renderPointer(l)
	spacerW := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	line1 := lipgloss.NewStyle().Width(l.contentW).MaxHeight(1).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	second := ""
	if l.detailW == 0 {
		second = strings.Join(m.detail.block.Lines, "  ")
	}
	if cmp := m.chart.Comparison(); len(cmp) > 0 && l.detailW == 0 {
		second += "  " + strings.Join(cmp, "  ")
	}
	line2 := lipgloss.NewStyle().Width(l.contentW).MaxHeight(1).Render(dimStyle.Render(" " + second))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, line1, line2)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

func (m Model) renderDetail(w, h int) string {
	lines := []string{titleStyle.Render("Pinned")}
	lines = append(lines, m.detail.block.Lines...)
	if cmp := m.chart.Comparison(); len(cmp) > 0 {
		lines = append(lines, "", titleStyle.Render("Hovered vs pinned"))
		lines = append(lines, cmp...)
	}
	body := strings.Join(lines, "\n")
	return boxStyle.Width(w - 2).MaxHeight(h).Render(body)
}

// renderPointer shows the axis values under the pointer.
func (m Model) renderPointer(l layout) string {
	if !m.chart.Ready() {
		return ""
	}
	px, py, ok := l.toMicro(m.pointerX, m.pointerY)
	if !ok {
		return ""
	}
	ss := m.chart.Scales()
	x := ss.X.FormatTick(ss.X.Invert(px))
	y := ss.Y.FormatTick(ss.Y.Invert(py - ss.OffsetY))
	return dimStyle.Render(fmt.Sprintf("  x=%s y=%s  ", x, y))
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"r reload",
		"e export",
		"Esc unpin",
		"Tab datasets",
		"p paste",
		"a records",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
