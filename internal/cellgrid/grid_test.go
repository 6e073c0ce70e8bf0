package cellgrid

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"particlefield.klederson.com/internal/config"
	"particlefield.klederson.com/internal/field"
)

var gold = config.Color{R: 212, G: 165, B: 116, A: 1}

func newTestGrid() *Grid {
	g := New(4, 8)
	g.SetSize(40, 32)
	return g
}

func TestLineChar(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   rune
	}{
		{"Right", 5, 0, '-'},
		{"Left", -5, 0, '-'},
		{"Down", 0, 3, '|'},
		{"Up", 0, -3, '|'},
		{"Down right", 2, 2, '\\'},
		{"Up left", -2, -2, '\\'},
		{"Up right", 2, -2, '/'},
		{"Down left", -2, 2, '/'},
		{"Point", 0, 0, '·'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineChar(tt.dx, tt.dy); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSetSizeSnapsToCells(t *testing.T) {
	g := New(4, 8)
	g.SetSize(43, 35)
	if cols, rows := g.Dims(); cols != 10 || rows != 4 {
		t.Errorf("Expected 10x4 cells, got %dx%d", cols, rows)
	}
	if w, h := g.Size(); w != 40 || h != 32 {
		t.Errorf("Expected 40x32 pixels, got %dx%d", w, h)
	}
}

func TestFillCircleMarksContainingCell(t *testing.T) {
	g := newTestGrid()
	g.FillCircle(6, 12, 1, gold)

	c := g.Cell(1, 1)
	if c.Glyph != glyphCore {
		t.Errorf("Expected core glyph, got %q", c.Glyph)
	}
	if got := c.Color.Hex(); got != "#d4a574" {
		t.Errorf("Expected #d4a574, got %s", got)
	}
	if g.Cell(2, 1).Glyph != ' ' {
		t.Error("Expected neighbouring cell to stay blank")
	}
}

func TestFillCircleOffGridIsIgnored(t *testing.T) {
	g := newTestGrid()
	g.FillCircle(-50, -50, 3, gold)
	g.FillCircle(500, 500, 3, gold)
	if strings.TrimSpace(strings.ReplaceAll(g.Render(), "\n", "")) != "" {
		t.Error("Expected off-grid circles to draw nothing")
	}
}

func TestNonFiniteDrawingIsIgnored(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	stops := field.GlowStops(gold)

	tests := []struct {
		name string
		draw func(g *Grid)
	}{
		{"Circle at NaN", func(g *Grid) { g.FillCircle(nan, nan, 3, gold) }},
		{"Circle at NaN x", func(g *Grid) { g.FillCircle(nan, 10, 3, gold) }},
		{"Circle at infinity", func(g *Grid) { g.FillCircle(inf, -inf, 3, gold) }},
		{"Circle with infinite radius", func(g *Grid) { g.FillCircle(nan, 10, inf, gold) }},
		{"Radial at NaN", func(g *Grid) { g.FillRadial(nan, nan, 9, stops) }},
		{"Radial with infinite radius", func(g *Grid) { g.FillRadial(10, 10, inf, stops) }},
		{"Line to NaN", func(g *Grid) { g.StrokeLine(0, 0, nan, nan, 1, gold) }},
		{"Line from infinity", func(g *Grid) { g.StrokeLine(-inf, 0, 10, 10, 1, gold) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid()
			tt.draw(g)
			if strings.TrimSpace(strings.ReplaceAll(g.Render(), "\n", "")) != "" {
				t.Error("Expected nothing to be drawn")
			}
		})
	}

	g := newTestGrid()
	g.FillCircle(nan, nan, 3, gold)
	g.ClearRect(nan, 0, inf, nan)
	g.FillCircle(10, 10, 3, gold)
	if strings.TrimSpace(strings.ReplaceAll(g.Render(), "\n", "")) == "" {
		t.Error("Expected the grid to keep drawing after non-finite calls")
	}
}

func TestSample(t *testing.T) {
	stops := field.GlowStops(gold)
	tests := []struct {
		t, alpha float64
	}{
		{0, 1},
		{0.25, 0.6},
		{0.5, 0.2},
		{0.75, 0.1},
		{1, 0},
		{2, 0},
	}

	for _, tt := range tests {
		_, a := Sample(stops, tt.t)
		if math.Abs(a-tt.alpha) > 1e-9 {
			t.Errorf("At %f expected alpha %f, got %f", tt.t, tt.alpha, a)
		}
	}
}

func TestGlowDoesNotHideCore(t *testing.T) {
	g := newTestGrid()
	g.FillRadial(20, 16, 12, field.GlowStops(gold))
	if c := g.Cell(5, 2); c.Glyph != glyphGlow {
		t.Fatalf("Expected dense glow glyph, got %q", c.Glyph)
	}

	g.FillCircle(20, 16, 2, gold)
	g.FillRadial(20, 16, 12, field.GlowStops(gold))
	if c := g.Cell(5, 2); c.Glyph != glyphCore {
		t.Errorf("Expected core glyph to survive a later glow, got %q", c.Glyph)
	}
}

func TestStrokeLine(t *testing.T) {
	g := newTestGrid()
	g.StrokeLine(2, 4, 38, 4, 1, gold.WithAlpha(0.5))
	for col := 0; col < 10; col++ {
		if c := g.Cell(col, 0); c.Glyph != '-' {
			t.Errorf("Expected '-' at column %d, got %q", col, c.Glyph)
		}
	}
	if c := g.Cell(0, 1); c.Glyph != ' ' {
		t.Errorf("Expected row 1 untouched, got %q", c.Glyph)
	}

	g.StrokeLine(2, 4, 2, 28, 1, gold)
	for row := 1; row < 4; row++ {
		if c := g.Cell(0, row); c.Glyph != '|' {
			t.Errorf("Expected '|' at row %d, got %q", row, c.Glyph)
		}
	}
}

func TestStrokeLineBlendsOncePerCell(t *testing.T) {
	g := newTestGrid()
	g.StrokeLine(1, 1, 3, 1, 1, gold.WithAlpha(0.5))
	want := black.BlendRgb(gold.Colorful(), 0.5)
	if got := g.Cell(0, 0).Color; got.Hex() != want.Hex() {
		t.Errorf("Expected %s, got %s", want.Hex(), got.Hex())
	}
}

func TestClearRect(t *testing.T) {
	g := newTestGrid()
	g.FillCircle(6, 12, 1, gold)
	g.FillCircle(30, 28, 1, gold)
	g.ClearRect(0, 0, 20, 16)

	if g.Cell(1, 1).Glyph != ' ' {
		t.Error("Expected cleared cell inside rect")
	}
	if g.Cell(7, 3).Glyph != glyphCore {
		t.Error("Expected cell outside rect to survive")
	}
}

func TestRender(t *testing.T) {
	g := newTestGrid()
	g.FillCircle(6, 12, 1, gold)
	out := g.Render()

	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("Expected 3 line breaks, got %d", n)
	}
	if !strings.Contains(out, string(glyphCore)) {
		t.Errorf("Expected core glyph in output, got %q", out)
	}
}

func TestGridAsFieldSurface(t *testing.T) {
	g := New(config.CellWidth, config.CellHeight)
	host := field.NewHeadless(config.SurfaceID, g, 320, 160)
	f := field.New(config.SurfaceID, host, config.Default(), field.WithRand(rand.New(rand.NewSource(5))))
	defer f.Destroy()

	for i := 0; i < 5; i++ {
		host.Step()
	}
	if cols, rows := g.Dims(); cols != 80 || rows != 20 {
		t.Fatalf("Expected 80x20 cells, got %dx%d", cols, rows)
	}
	if !strings.ContainsRune(g.Render(), glyphCore) {
		t.Error("Expected at least one particle core on the grid")
	}
}
