package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors matching the CLI palette.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	titleIdleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	titleRunningStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	entryStyle        = lipgloss.NewStyle().Foreground(colorWhite)
	entryDisabled     = lipgloss.NewStyle().Foreground(colorDim)
	cursorStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	errorStyle        = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	noticeStyle       = lipgloss.NewStyle().Foreground(colorYellow)
	hintStyle         = lipgloss.NewStyle().Foreground(colorDim)
	boxStyle          = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)
