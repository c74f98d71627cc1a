package cli

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	deniedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	detailStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
