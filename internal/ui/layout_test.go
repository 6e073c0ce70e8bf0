package ui

import (
	"strings"
	"testing"

	"particlefield.klederson.com/internal/field"
)

func TestPanelInner(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cols, rows    int
	}{
		{"Typical terminal", 120, 40, 118, 36},
		{"Tiny terminal", 1, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := PanelInner(tt.width, tt.height)
			if cols != tt.cols || rows != tt.rows {
				t.Errorf("Expected %dx%d, got %dx%d", tt.cols, tt.rows, cols, rows)
			}
		})
	}
}

func TestPanelOrigin(t *testing.T) {
	col, row := PanelOrigin()
	if col != 1 || row != 2 {
		t.Errorf("Expected (1, 2), got (%d, %d)", col, row)
	}
}

func TestRenderStatusBar(t *testing.T) {
	stats := field.Stats{
		State:       field.Running,
		Width:       400,
		Height:      240,
		Particles:   50,
		Connections: 12,
		Frames:      9,
		Pointer:     field.Pointer{X: 10.7, Y: 20.2, OK: true},
	}
	out := RenderStatusBar(160, stats)
	for _, want := range []string{"[RUNNING]", "Particles: 50", "Links: 12", "400x240px", "Pointer: 10,20"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected status bar to contain %q, got %q", want, out)
		}
	}

	stats.State = field.Stopped
	stats.Pointer = field.Pointer{}
	out = RenderStatusBar(160, stats)
	if !strings.Contains(out, "[STOPPED]") || !strings.Contains(out, "Pointer: --") {
		t.Errorf("Expected stopped status without pointer, got %q", out)
	}
}

func TestRenderMenuBar(t *testing.T) {
	if out := RenderMenuBar(100, true); !strings.Contains(out, "Pointer: demo") {
		t.Errorf("Expected demo marker, got %q", out)
	}
	if out := RenderMenuBar(100, false); !strings.Contains(out, "Pointer: mouse") {
		t.Errorf("Expected mouse marker, got %q", out)
	}
}
