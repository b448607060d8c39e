// Package tui provides the terminal views for Miles: the prompt preview pager
// and the built-in section listing.
package tui

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
var (
	colorForeground = lipgloss.Color("#fcfcfa")
	colorYellow     = lipgloss.Color("#ffd866")
	colorMagenta    = lipgloss.Color("#ab9df2")
	colorGreen      = lipgloss.Color("#a9dc76")
	colorCyan       = lipgloss.Color("#78dce8")
	colorGray       = lipgloss.Color("#727072")
	colorDimGray    = lipgloss.Color("#5b595c")
)

// Panel styles
var (
	// headerStyle is used for the preview header border
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorDimGray).
			Padding(0, 1)

	// headerLabelStyle is used for labels in the header
	headerLabelStyle = lipgloss.NewStyle().
				Foreground(colorGray)

	// headerValueStyle is used for values in the header
	headerValueStyle = lipgloss.NewStyle().
				Foreground(colorForeground).
				Bold(true)

	// panelStyle is used for the scrollable prompt panel
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorYellow).
			Padding(0, 1)

	// panelTitleStyle is used for panel titles
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorMagenta).
			Bold(true)

	// scrollIndicatorStyle is for scroll indicators
	scrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				Italic(true)
)

// Section listing styles
var (
	sectionIndexStyle = lipgloss.NewStyle().
				Foreground(colorDimGray)

	sectionNameStyle = lipgloss.NewStyle().
				Foreground(colorCyan).
				Bold(true)

	sectionHeadingStyle = lipgloss.NewStyle().
				Foreground(colorForeground)

	sectionMetaStyle = lipgloss.NewStyle().
				Foreground(colorGreen)
)

// Help text styles
var (
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	helpSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorDimGray)
)
