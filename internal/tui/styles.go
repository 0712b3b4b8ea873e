package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	prompt lipgloss.Style
	cursor lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	answer lipgloss.Style
	muted  lipgloss.Style
	help   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Underline(true),
		prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5c2e7")),
		cursor: lipgloss.NewStyle().Background(lipgloss.Color("#b4befe")),
		good:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true),
		bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true),
		answer: lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")),
		help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
