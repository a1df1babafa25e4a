package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	errorFg   = lipgloss.Color("#F87171")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(errorFg)
)

// cellClass colours one terminal cell of the chart canvas. Higher values
// win when several things land in the same cell.
type cellClass uint8

const (
	clsNone cellClass = iota
	clsAxis
	clsLabel
	clsClean
	clsDoping
	clsCoolest
	clsCool
	clsWarm
	clsWarmest
	clsHover
	clsActive
	clsTooltip
)

var classStyles = map[cellClass]lipgloss.Style{
	clsAxis:    lipgloss.NewStyle().Foreground(borderCol),
	clsLabel:   dimStyle,
	clsClean:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
	clsDoping:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")),
	clsCoolest: lipgloss.NewStyle().Foreground(lipgloss.Color("#4575B4")),
	clsCool:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ABD9E9")),
	clsWarm:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FDAE61")),
	clsWarmest: lipgloss.NewStyle().Foreground(lipgloss.Color("#D73027")),
	clsHover:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true),
	clsActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6366F1")).Bold(true),
	clsTooltip: lipgloss.NewStyle().Foreground(baseFg).Background(lipgloss.Color("#1F2937")),
}
