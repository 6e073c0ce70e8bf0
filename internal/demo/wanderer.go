package demo

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"particlefield.klederson.com/internal/field"
)

// PointerMsg is sent via tea.Program.Send with a synthetic pointer position
// in surface pixels.
type PointerMsg struct {
	X, Y float64
}

// LeaveMsg is sent when the synthetic pointer leaves the surface.
type LeaveMsg struct{}

const (
	springFrequency = 2.5
	springDamping   = 0.6
	minDwell        = 60  // Frames spent gliding towards one target
	dwellSpan       = 120 // Extra random frames
	awayChance      = 0.15
	awayFrames      = 90
)

// Wanderer is a pointer that glides between random points on the surface and
// now and then leaves it for a while.
type Wanderer struct {
	mu     sync.Mutex
	rng    field.Rand
	spring harmonica.Spring
	fps    int

	width, height float64
	x, y          float64
	vx, vy        float64
	tx, ty        float64
	inside        bool
	dwell         int

	program *tea.Program
	running bool
	cancel  context.CancelFunc
}

// NewWanderer creates a wanderer over a width×height surface, stepping at fps.
func NewWanderer(width, height float64, fps int, rng field.Rand) *Wanderer {
	if fps <= 0 {
		fps = 60
	}
	w := &Wanderer{
		rng:    rng,
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		fps:    fps,
		width:  width,
		height: height,
		x:      width / 2,
		y:      height / 2,
		inside: true,
	}
	w.tx, w.ty = w.x, w.y
	return w
}

// SetBounds changes the surface size. The pointer is pulled back inside on
// its next target.
func (w *Wanderer) SetBounds(width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width, w.height = width, height
	w.dwell = 0
}

// Next advances one frame and returns the position and whether the pointer
// is over the surface.
func (w *Wanderer) Next() (x, y float64, inside bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.dwell--
	if w.dwell <= 0 {
		w.retarget()
	}
	if !w.inside {
		return w.x, w.y, false
	}

	w.x, w.vx = w.spring.Update(w.x, w.vx, w.tx)
	w.y, w.vy = w.spring.Update(w.y, w.vy, w.ty)
	w.x = clamp(w.x, 0, w.width)
	w.y = clamp(w.y, 0, w.height)
	return w.x, w.y, true
}

// retarget picks the next destination, or a spell away from the surface. Must hold mu.
func (w *Wanderer) retarget() {
	if w.inside && w.rng.Float64() < awayChance {
		w.inside = false
		w.dwell = awayFrames
		return
	}
	if !w.inside {
		// Re-enter from a random point instead of the spot we left at
		w.x = w.rng.Float64() * w.width
		w.y = w.rng.Float64() * w.height
		w.vx, w.vy = 0, 0
	}
	w.inside = true
	w.tx = w.rng.Float64() * w.width
	w.ty = w.rng.Float64() * w.height
	w.dwell = minDwell + int(w.rng.Float64()*dwellSpan)
}

// Start begins sending pointer messages to p at the wanderer's frame rate.
func (w *Wanderer) Start(p *tea.Program) error {
	w.mu.Lock()
	w.program = p
	w.running = true
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.mu.Unlock()

	go w.loop(ctx)
	return nil
}

func (w *Wanderer) loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(w.fps))
	defer ticker.Stop()

	wasInside := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.mu.Lock()
			running, program := w.running, w.program
			w.mu.Unlock()
			if !running {
				return
			}

			x, y, inside := w.Next()
			if program == nil {
				continue
			}
			switch {
			case inside:
				program.Send(PointerMsg{X: x, Y: y})
			case wasInside:
				program.Send(LeaveMsg{})
			}
			wasInside = inside
		}
	}
}

// Stop halts the message loop.
func (w *Wanderer) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = false
	if w.cancel != nil {
		w.cancel()
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
