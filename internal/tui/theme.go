package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alsnogtix/simuladorFermentacao/internal/prediction"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Filled   lipgloss.Style
	Empty    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Filled: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Empty:  lipgloss.NewStyle().Faint(true),
	}
}

// Severity styles a classification in its display colour.
func (t Theme) Severity(s prediction.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.Color().Hex()))
}
