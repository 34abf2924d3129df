package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	heading   lipgloss.Style
	wallet    lipgloss.Style
	detail    lipgloss.Style
	warning   lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	key       lipgloss.Style
	signature lipgloss.Style
	confirmed lipgloss.Style
	pending   lipgloss.Style
	failed    lipgloss.Style
	help      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		wallet:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		key:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		signature: lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		confirmed: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		help:      lipgloss.NewStyle().Faint(true),
	}
}
