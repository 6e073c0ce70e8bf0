package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"particlefield.klederson.com/internal/field"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, stats field.Stats) string {
	var status string
	if stats.State == field.Running {
		status = StyleStatusRunning.Render("[" + strings.ToUpper(stats.State.String()) + "]")
	} else {
		status = StyleStatusStopped.Render("[" + strings.ToUpper(stats.State.String()) + "]")
	}

	pointer := "--"
	if stats.Pointer.OK {
		pointer = fmt.Sprintf("%d,%d", int(stats.Pointer.X), int(stats.Pointer.Y))
	}

	info := fmt.Sprintf(" Frames: %d  Particles: %d  Links: %d  Rebuilds: %d  Surface: %dx%dpx  Pointer: %s",
		stats.Frames, stats.Particles, stats.Connections, stats.Rebuilds, stats.Width, stats.Height, pointer)

	content := status + StyleStatusBar.Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
