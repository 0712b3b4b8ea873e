package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	prompt lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	answer lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, color bool) styles {
	if !color {
		plain := r.NewStyle()
		return styles{prompt: plain, good: plain, bad: plain, answer: plain, muted: plain}
	}
	return styles{
		prompt: r.NewStyle().Bold(true),
		good:   r.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true),
		bad:    r.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true),
		answer: r.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#6c7086")),
	}
}
