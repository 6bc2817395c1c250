package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	section   lipgloss.Style
	heading   lipgloss.Style
	lens      lipgloss.Style
	detail    lipgloss.Style
	pass      lipgloss.Style
	fail      lipgloss.Style
	unknown   lipgloss.Style
	empty     lipgloss.Style
	reasoning lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:   lipgloss.NewStyle().MarginTop(1),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		lens:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		pass:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		fail:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		unknown:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		empty:     lipgloss.NewStyle().Faint(true),
		reasoning: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(2),
	}
}
