package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles for the frame chrome. Colors use ANSI 256
// codes for broad terminal compatibility; the artwork itself is
// rendered through the color-profile-aware frame renderer instead
type Theme struct {
	Title  lipgloss.Style
	Faint  lipgloss.Style
	Help   lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
	Saved  lipgloss.Style
}

// DefaultTheme is the built-in dark-terminal style set
var DefaultTheme = Theme{
	Title:  lipgloss.NewStyle().Bold(true),
	Faint:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	Saved:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
}
