package ui

import "github.com/charmbracelet/lipgloss"

// Gold and rose palette, matching the particle colours
var (
	ColorGold       = lipgloss.Color("#D4A574")
	ColorGoldDim    = lipgloss.Color("#8A6A4A")
	ColorRose       = lipgloss.Color("#E85A6F")
	ColorDeepRose   = lipgloss.Color("#C41E3A")
	ColorCream      = lipgloss.Color("#FDF8F3")
	ColorNight      = lipgloss.Color("#1A1014")
	ColorBorderNorm = lipgloss.Color("#8A6A4A")
	ColorWarning    = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorNight).
			Foreground(ColorGold).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorGold).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorCream)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorNight).
			Foreground(ColorCream).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorGold).
				Bold(true)

	StyleStatusStopped = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStatusDemo = lipgloss.NewStyle().
			Foreground(ColorRose).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorGoldDim)
)
