package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	okColor       = lipgloss.Color("10")  // Green
	warningColor  = lipgloss.Color("11")  // Yellow
	criticalColor = lipgloss.Color("9")   // Red
	unknownColor  = lipgloss.Color("13")  // Magenta
	missingColor  = lipgloss.Color("8")   // Gray

	headerBg   = lipgloss.Color("235")
	statusBg   = lipgloss.Color("236")
	helpBg     = lipgloss.Color("234")
	errorColor = lipgloss.Color("9")
	dimColor   = lipgloss.Color("8")
)

// Styles
var (
	okStyle       = lipgloss.NewStyle().Foreground(okColor).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	criticalStyle = lipgloss.NewStyle().Foreground(criticalColor).Bold(true)
	unknownStyle  = lipgloss.NewStyle().Foreground(unknownColor)
	missingStyle  = lipgloss.NewStyle().Foreground(missingColor)

	headerStyle = lipgloss.NewStyle().
			Background(headerBg).
			Padding(0, 1).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Background(statusBg).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Background(helpBg).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(errorColor).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(dimColor)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("238")).
				Bold(true)

	expressionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Italic(true)
)

// stateStyle returns the style for a monitoring state
func stateStyle(state uint8) lipgloss.Style {
	switch state {
	case 0:
		return okStyle
	case 1:
		return warningStyle
	case 2:
		return criticalStyle
	case 3:
		return unknownStyle
	default:
		return missingStyle
	}
}
