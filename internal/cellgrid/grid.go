package cellgrid

import (
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"particlefield.klederson.com/internal/config"
	"particlefield.klederson.com/internal/field"
)

// Glyph layers; a cell keeps the glyph of the highest layer drawn into it.
const (
	layerNone = iota
	layerGlow
	layerLine
	layerCore
)

const (
	glyphCore      = '●'
	glyphGlowFaint = '·'
	glyphGlow      = '░'
	minGlowAlpha   = 0.05
	denseGlowAlpha = 0.15
)

var black = colorful.Color{}

// Cell is one character of the grid. Color is the result of compositing every
// draw over a black background.
type Cell struct {
	Color colorful.Color
	Glyph rune
	layer int
}

// Grid is a field.Surface drawn as terminal characters. Every cell covers
// CellW×CellH surface pixels, so the surface stays isotropic on terminals
// whose characters are about twice as tall as they are wide.
type Grid struct {
	CellW, CellH int

	mu    sync.RWMutex
	cols  int
	rows  int
	cells []Cell
}

var _ field.Surface = (*Grid)(nil)

// New creates an empty grid with the given cell size in pixels.
func New(cellW, cellH int) *Grid {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	return &Grid{CellW: cellW, CellH: cellH}
}

// SetSize resizes the grid to the whole number of cells that fit in w×h
// pixels and clears it.
func (g *Grid) SetSize(w, h int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cols = max(w/g.CellW, 0)
	g.rows = max(h/g.CellH, 0)
	g.cells = make([]Cell, g.cols*g.rows)
	for i := range g.cells {
		g.cells[i] = Cell{Glyph: ' '}
	}
}

// Size returns the surface size in pixels.
func (g *Grid) Size() (int, int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cols * g.CellW, g.rows * g.CellH
}

// Dims returns the grid size in cells.
func (g *Grid) Dims() (cols, rows int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cols, g.rows
}

// Cell returns the cell at col, row; out of range cells are blank.
func (g *Grid) Cell(col, row int) Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return Cell{Glyph: ' '}
	}
	return g.cells[row*g.cols+col]
}

// ClearRect blanks every cell whose centre lies in the rectangle.
func (g *Grid) ClearRect(x, y, w, h float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c0, r0, c1, r1 := g.span(x, y, x+w, y+h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx, cy := g.center(col, row)
			if cx >= x && cx < x+w && cy >= y && cy < y+h {
				g.cells[row*g.cols+col] = Cell{Glyph: ' '}
			}
		}
	}
}

// StrokeLine blends c into every cell the segment crosses.
func (g *Grid) StrokeLine(x0, y0, x1, y1, _ float64, c config.Color) {
	if !finite(x0, y0, x1, y1) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	dx := (x1 - x0) / float64(g.CellW)
	dy := (y1 - y0) / float64(g.CellH)
	glyph := LineChar(dx, dy)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))*2)) + 1

	last := -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col, row, ok := g.cellAt(x0+(x1-x0)*t, y0+(y1-y0)*t)
		if !ok {
			continue
		}
		idx := row*g.cols + col
		if idx == last {
			continue
		}
		last = idx
		g.blend(idx, c.Colorful(), c.A, glyph, layerLine)
	}
}

// FillCircle blends c into every cell whose centre is within r, and always
// into the cell containing the centre.
func (g *Grid) FillCircle(x, y, r float64, c config.Color) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seen := -1
	if col, row, ok := g.cellAt(x, y); ok {
		seen = row*g.cols + col
		g.blend(seen, c.Colorful(), c.A, glyphCore, layerCore)
	}
	c0, r0, c1, r1 := g.span(x-r, y-r, x+r, y+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			idx := row*g.cols + col
			if idx == seen {
				continue
			}
			cx, cy := g.center(col, row)
			if cellDistance(cx, cy, x, y) <= r {
				g.blend(idx, c.Colorful(), c.A, glyphCore, layerCore)
			}
		}
	}
}

// FillRadial samples the gradient at every cell centre within r.
func (g *Grid) FillRadial(x, y, r float64, stops []field.GradientStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	c0, r0, c1, r1 := g.span(x-r, y-r, x+r, y+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx, cy := g.center(col, row)
			d := cellDistance(cx, cy, x, y)
			if d > r {
				continue
			}
			cc, a := Sample(stops, d/r)
			if a <= 0 {
				continue
			}
			glyph := rune(' ')
			switch {
			case a >= denseGlowAlpha:
				glyph = glyphGlow
			case a >= minGlowAlpha:
				glyph = glyphGlowFaint
			}
			g.blend(row*g.cols+col, cc, a, glyph, layerGlow)
		}
	}
}

// Sample interpolates the gradient at t in [0,1], returning colour and alpha.
func Sample(stops []field.GradientStop, t float64) (colorful.Color, float64) {
	c := field.SampleStops(stops, t)
	return c.Colorful(), c.A
}

// blend composites src at alpha over the cell and raises its glyph if the
// layer is at least as high as the current one. Must hold mu.
func (g *Grid) blend(idx int, src colorful.Color, alpha float64, glyph rune, layer int) {
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	cell := &g.cells[idx]
	cell.Color = cell.Color.BlendRgb(src, alpha)
	if glyph != ' ' && layer >= cell.layer {
		cell.Glyph = glyph
		cell.layer = layer
	}
}

func (g *Grid) center(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * float64(g.CellW), (float64(row) + 0.5) * float64(g.CellH)
}

func (g *Grid) cellAt(x, y float64) (int, int, bool) {
	if !finite(x, y) || x < 0 || y < 0 {
		return 0, 0, false
	}
	col := int(x) / g.CellW
	row := int(y) / g.CellH
	if col >= g.cols || row >= g.rows {
		return 0, 0, false
	}
	return col, row, true
}

// span returns the inclusive cell range covering a pixel box, clipped to the grid.
func (g *Grid) span(x0, y0, x1, y1 float64) (c0, r0, c1, r1 int) {
	if g.cols == 0 || g.rows == 0 || !finite(x0, y0, x1, y1) {
		return 0, 0, -1, -1
	}
	c0 = clampInt(int(math.Floor(x0/float64(g.CellW))), 0, g.cols-1)
	r0 = clampInt(int(math.Floor(y0/float64(g.CellH))), 0, g.rows-1)
	c1 = clampInt(int(math.Floor(x1/float64(g.CellW))), 0, g.cols-1)
	r1 = clampInt(int(math.Floor(y1/float64(g.CellH))), 0, g.rows-1)
	if x1 < 0 || y1 < 0 || x0 >= float64(g.cols*g.CellW) || y0 >= float64(g.rows*g.CellH) {
		return 0, 0, -1, -1
	}
	return c0, r0, c1, r1
}

// finite reports whether every value is a usable coordinate.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
