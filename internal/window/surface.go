package window

import (
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"particlefield.klederson.com/internal/config"
	"particlefield.klederson.com/internal/field"
)

const (
	minRings = 4
	maxRings = 24
)

// Surface draws onto whichever ebiten image is bound for the current frame.
// Outside of Draw nothing is bound and drawing calls are dropped.
type Surface struct {
	mu     sync.Mutex
	dst    *ebiten.Image
	width  int
	height int
}

var _ field.Surface = (*Surface)(nil)

// Bind sets the image that subsequent calls draw on; nil unbinds.
func (s *Surface) Bind(dst *ebiten.Image) {
	s.mu.Lock()
	s.dst = dst
	s.mu.Unlock()
}

func (s *Surface) SetSize(w, h int) {
	s.mu.Lock()
	s.width, s.height = w, h
	s.mu.Unlock()
}

func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *Surface) target() *ebiten.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dst
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	dst := s.target()
	if dst == nil {
		return
	}
	r := clearBounds(x, y, w, h).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c config.Color) {
	dst := s.target()
	if dst == nil {
		return
	}
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.NRGBA(), true)
}

func (s *Surface) FillCircle(x, y, r float64, c config.Color) {
	dst := s.target()
	if dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), c.NRGBA(), true)
}

// FillRadial approximates the gradient with nested discs drawn outermost
// first.
func (s *Surface) FillRadial(x, y, r float64, stops []field.GradientStop) {
	dst := s.target()
	if dst == nil || r <= 0 {
		return
	}
	for _, ring := range radialRings(stops, r) {
		if ring.Color.A <= 0 {
			continue
		}
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(ring.Radius), ring.Color.NRGBA(), true)
	}
}

type ring struct {
	Radius float64
	Color  config.Color
}

// radialRings splits a gradient of radius r into discs, outermost first.
// Disc alphas are chosen so that the composite over each band matches the
// gradient alpha sampled at the band's middle.
func radialRings(stops []field.GradientStop, r float64) []ring {
	n := int(r / 2)
	n = max(minRings, min(maxRings, n))

	rings := make([]ring, 0, n)
	outer := 0.0 // Composite alpha of the discs already drawn
	for k := n; k >= 1; k-- {
		c := field.SampleStops(stops, (float64(k)-0.5)/float64(n))
		a := 0.0
		if outer < 1 {
			a = 1 - (1-c.A)/(1-outer)
		}
		a = math.Max(0, math.Min(1, a))
		rings = append(rings, ring{Radius: r * float64(k) / float64(n), Color: c.WithAlpha(a)})
		outer = 1 - (1-outer)*(1-a)
	}
	return rings
}

func clearBounds(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
}
