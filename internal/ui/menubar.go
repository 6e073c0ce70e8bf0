package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"particlefield.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, demo bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	mode := StyleMenuLabel.Render("Pointer: mouse")
	if demo {
		mode = StyleStatusDemo.Render("Pointer: demo")
	}

	left := StyleMenuKey.Render(title) + menu
	right := mode + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
