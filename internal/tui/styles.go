package tui

import "github.com/charmbracelet/lipgloss"

// Colors matching the output package scheme
var (
	colorBlue   = lipgloss.Color("4")  // Blue - station points
	colorCyan   = lipgloss.Color("6")  // Cyan - focus, codes
	colorYellow = lipgloss.Color("3")  // Yellow - highlighted segment
	colorRed    = lipgloss.Color("1")  // Red - highlighted station, errors
	colorWhite  = lipgloss.Color("15") // White - titles
	colorGray   = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleMuted  = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleKey    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// Panel border styles
var (
	stylePanelFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	stylePanelNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray)
)

// Selected item in a list
var styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Map canvas layers
var (
	styleStation         = lipgloss.NewStyle().Foreground(colorBlue)
	styleSelectedStation = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleSegment         = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)
