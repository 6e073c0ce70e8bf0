package raster

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	"particlefield.klederson.com/internal/config"
	"particlefield.klederson.com/internal/field"
)

// Surface is a field.Surface backed by an HTML5-style software canvas.
type Surface struct {
	mu      sync.Mutex
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	width   int
	height  int
}

var _ field.Surface = (*Surface)(nil)

// NewSurface creates a canvas of w×h pixels.
func NewSurface(w, h int) *Surface {
	s := &Surface{}
	s.SetSize(w, h)
	return s
}

// SetSize replaces the backing canvas; the previous contents are dropped.
func (s *Surface) SetSize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, h = max(w, 1), max(h, 1)
	s.backend = softwarebackend.New(w, h)
	s.cv = canvas.New(s.backend)
	s.width, s.height = w, h
}

func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cv.ClearRect(x, y, w, h)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c config.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cv.BeginPath()
	s.cv.SetStrokeStyle(cssColor(c))
	s.cv.SetLineWidth(width)
	s.cv.MoveTo(x0, y0)
	s.cv.LineTo(x1, y1)
	s.cv.Stroke()
}

func (s *Surface) FillCircle(x, y, r float64, c config.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cv.BeginPath()
	s.cv.Arc(x, y, r, 0, 2*math.Pi, false)
	s.cv.SetFillStyle(cssColor(c))
	s.cv.Fill()
}

func (s *Surface) FillRadial(x, y, r float64, stops []field.GradientStop) {
	if r <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	grad := s.cv.CreateRadialGradient(x, y, 0, x, y, r)
	for _, stop := range stops {
		grad.AddColorStop(stop.Offset, cssColor(stop.Color))
	}
	s.cv.BeginPath()
	s.cv.Arc(x, y, r, 0, 2*math.Pi, false)
	s.cv.SetFillStyle(grad)
	s.cv.Fill()
}

// Image returns the backing pixels. The image is replaced on SetSize.
func (s *Surface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Image
}

// cssColor formats a colour the way the canvas parser expects it.
func cssColor(c config.Color) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, c.A)
}
