package field

import (
	"math/rand"

	"particlefield.klederson.com/internal/config"
)

type op struct {
	kind           string
	x0, y0, x1, y1 float64
	r              float64
	color          config.Color
	stops          []GradientStop
}

// recordingSurface keeps every drawing call for inspection.
type recordingSurface struct {
	w, h int
	ops  []op
}

func (s *recordingSurface) SetSize(w, h int) { s.w, s.h = w, h }
func (s *recordingSurface) Size() (int, int) { return s.w, s.h }
func (s *recordingSurface) reset()           { s.ops = nil }
func (s *recordingSurface) count(k string) int {
	n := 0
	for _, o := range s.ops {
		if o.kind == k {
			n++
		}
	}
	return n
}

func (s *recordingSurface) ClearRect(x, y, w, h float64) {
	s.ops = append(s.ops, op{kind: "clear", x0: x, y0: y, x1: x + w, y1: y + h})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c config.Color) {
	s.ops = append(s.ops, op{kind: "line", x0: x0, y0: y0, x1: x1, y1: y1, r: width, color: c})
}

func (s *recordingSurface) FillCircle(x, y, r float64, c config.Color) {
	s.ops = append(s.ops, op{kind: "circle", x0: x, y0: y, r: r, color: c})
}

func (s *recordingSurface) FillRadial(x, y, r float64, stops []GradientStop) {
	s.ops = append(s.ops, op{kind: "radial", x0: x, y0: y, r: r, stops: stops})
}

// countingHost counts cancellations on top of a Headless host.
type countingHost struct {
	*Headless
	cancels int
}

func (h *countingHost) CancelFrame(id FrameID) {
	h.cancels++
	h.Headless.CancelFrame(id)
}

// fixedRand returns the same value for every draw.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func testConfig() config.Field {
	return config.Default()
}
