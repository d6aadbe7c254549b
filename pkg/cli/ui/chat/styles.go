package chat

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle   = "☸ kubeassist"
	appTagline = "Kubernetes assistant"
)

var (
	// Color palette - uses standard ANSI colors (0-15) to respect user's terminal theme.
	primaryColor   = lipgloss.ANSIColor(14) // Bright cyan
	accentColor    = lipgloss.ANSIColor(6)  // Cyan
	secondaryColor = lipgloss.ANSIColor(8)  // Bright black (gray)
	userColor      = lipgloss.ANSIColor(12) // Bright blue
	assistantColor = lipgloss.ANSIColor(13) // Bright magenta
	keyColor       = lipgloss.ANSIColor(11) // Bright yellow
	successColor   = lipgloss.ANSIColor(10) // Bright green
	dimColor       = lipgloss.ANSIColor(8)  // Bright black (gray)
	errorColor     = lipgloss.ANSIColor(9)  // Bright red

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	taglineStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Italic(true)

	// headerBoxStyle wraps the entire header section.
	headerBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2)

	userMsgStyle = lipgloss.NewStyle().
			Foreground(userColor).
			Bold(true)

	assistantMsgStyle = lipgloss.NewStyle().
				Foreground(assistantColor).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// viewportStyle styles the chat area.
	viewportStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	// focusedViewportStyle marks the pane that receives navigation keys.
	focusedViewportStyle = viewportStyle.
				BorderForeground(primaryColor)

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	disabledInputStyle = inputStyle.
				BorderForeground(secondaryColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// sidebarTitleStyle renders the "Chat History" heading.
	sidebarTitleStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	sidebarItemStyle = lipgloss.NewStyle().
				Foreground(dimColor)

	sidebarSelectedStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	metricsTitleStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)
)

// createModalStyle creates a consistent style for the resource menu and modal.
func createModalStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		PaddingLeft(1).
		PaddingRight(1).
		Width(width).
		Height(height)
}
