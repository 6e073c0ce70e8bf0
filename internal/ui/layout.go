package ui

import "github.com/charmbracelet/lipgloss"

const (
	MenuHeight   = 1
	StatusHeight = 1
	BorderSize   = 1 // Panel border thickness on every side
)

// PanelInner returns the cell area inside the particle panel for a terminal
// of width×height cells.
func PanelInner(width, height int) (cols, rows int) {
	cols = width - 2*BorderSize
	rows = height - MenuHeight - StatusHeight - 2*BorderSize
	return max(cols, 0), max(rows, 0)
}

// PanelOrigin is the terminal cell of the panel's top-left inner cell.
func PanelOrigin() (col, row int) {
	return BorderSize, MenuHeight + BorderSize
}

// RenderPanel wraps the particle grid with a styled border.
func RenderPanel(width, height int, content string) string {
	cols, rows := PanelInner(width, height)
	return StylePanelBorder.Width(cols).Height(rows).Render(content)
}

// ComposeLayout stacks the menu bar, the particle panel and the status bar.
func ComposeLayout(menuBar, panel, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, panel, statusBar)
}
