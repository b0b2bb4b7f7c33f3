package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the modal's lipgloss styles.
type Styles struct {
	Heading  lipgloss.Style
	Selected lipgloss.Style
	Tags     lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles returns the default styles.
func NewStyles() *Styles {
	return &Styles{
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Tags:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:     lipgloss.NewStyle().Faint(true),
	}
}
