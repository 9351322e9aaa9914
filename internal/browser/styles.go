package browser

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#8BC34A")
	muted   = lipgloss.Color("#7a8699")
	danger  = lipgloss.Color("#e53935")
	surface = lipgloss.Color("#1e2a3d")
)

type styles struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Badge    lipgloss.Style
	Disabled lipgloss.Style
	Help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Error:    lipgloss.NewStyle().Foreground(danger),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Badge:    lipgloss.NewStyle().Background(surface).Padding(0, 1),
		Disabled: lipgloss.NewStyle().Foreground(muted).Faint(true),
		Help:     lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
