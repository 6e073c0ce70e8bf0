package cellgrid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render produces the grid as rows of styled characters.
func (g *Grid) Render() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	styles := make(map[string]lipgloss.Style)
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			sb.WriteString(renderCell(g.cells[row*g.cols+col], styles))
		}
		if row < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderCell(c Cell, styles map[string]lipgloss.Style) string {
	if c.Glyph == ' ' || c.Glyph == 0 || c.Color == black {
		return " "
	}
	hex := c.Color.Clamped().Hex()
	style, ok := styles[hex]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		styles[hex] = style
	}
	return style.Render(string(c.Glyph))
}
