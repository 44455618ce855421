package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/stepsearch/core"
)

// Node colours per state.
var stateColors = map[core.State]lipgloss.Color{
	core.StateEmpty:   lipgloss.Color("#e5e7eb"),
	core.StateSource:  lipgloss.Color("#ef4444"),
	core.StateGoal:    lipgloss.Color("#10b981"),
	core.StateVisited: lipgloss.Color("#8b5cf6"),
	core.StatePath:    lipgloss.Color("#f59e0b"),
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	canvasStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// stateStyle returns the foreground style of a node in state s.
func stateStyle(s core.State) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(stateColors[s]).Bold(s != core.StateEmpty)
}
