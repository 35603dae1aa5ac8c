package tui

import "github.com/charmbracelet/lipgloss"

// styles contains the style definitions for the UI.
type styles struct {
	pane        lipgloss.Style
	focusedPane lipgloss.Style
	label       lipgloss.Style
	focused     lipgloss.Style
	header      lipgloss.Style
	selected    lipgloss.Style
	dir         lipgloss.Style
	dim         lipgloss.Style
	status      lipgloss.Style
	button      lipgloss.Style
	stopButton  lipgloss.Style
}

func newStyles() *styles {
	return &styles{
		pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		focusedPane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		selected: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		dir:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		dim:      lipgloss.NewStyle().Faint(true),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		button:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		stopButton: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}
