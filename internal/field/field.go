package field

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"particlefield.klederson.com/internal/config"
)

// State is the lifecycle stage of a Field.
type State int

const (
	Uninitialized State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "uninitialized"
	}
}

// Stats describes the field for status displays.
type Stats struct {
	State       State
	Width       int
	Height      int
	Particles   int
	Connections int // Drawn in the last frame
	Frames      int
	Rebuilds    int
	Pointer     Pointer
}

// Option customises a Field at construction.
type Option func(*Field)

// WithRand sets the random source used for particle draws.
func WithRand(r Rand) Option {
	return func(f *Field) { f.rng = r }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(f *Field) { f.log = l }
}

// Field animates a set of particles on a host surface.
//
// All mutable state sits behind mu. A frame, a resize rebuild and a pointer
// update each hold it for their whole duration, so a frame never sees a
// partially rebuilt particle set.
type Field struct {
	cfg    config.Field
	rng    Rand
	log    logrus.FieldLogger
	host   Host
	target Target

	mu          sync.Mutex
	state       State
	particles   []Particle
	width       int
	height      int
	pointer     Pointer
	frame       FrameID
	pending     bool
	unsubscribe []func()
	connections int
	frames      int
	rebuilds    int
}

// New looks up the surface id on host and starts animating it. When the host
// has no such surface the returned Field stays Uninitialized, holds no
// handles and is safe to Destroy or discard.
func New(id string, host Host, cfg config.Field, opts ...Option) *Field {
	f := &Field{cfg: cfg, host: host}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if f.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		f.log = l
	}
	f.log = f.log.WithField("surface", id)

	if host == nil {
		f.log.Debug("no host, particle field inert")
		return f
	}
	target, ok := host.Lookup(id)
	if !ok || target.Surface == nil {
		f.log.Debug("surface not found, particle field inert")
		return f
	}
	f.target = target
	f.init()
	return f
}

func (f *Field) init() {
	w, h := f.measure()

	f.mu.Lock()
	f.applySize(w, h)
	f.particles = newParticles(f.cfg, f.width, f.height, f.rng)
	f.mu.Unlock()

	unsubs := []func(){f.host.OnResize(f.handleResize)}
	if f.target.Pointer != nil {
		unsubs = append(unsubs,
			f.target.Pointer.OnPointerMove(f.handlePointerMove),
			f.target.Pointer.OnPointerLeave(f.handlePointerLeave),
		)
	}

	f.mu.Lock()
	f.unsubscribe = unsubs
	f.state = Running
	f.frame = f.host.RequestFrame(f.tick)
	f.pending = true
	fields := logrus.Fields{
		"width":     f.width,
		"height":    f.height,
		"particles": len(f.particles),
	}
	f.mu.Unlock()

	f.log.WithFields(fields).Debug("particle field started")
}

func (f *Field) measure() (int, int) {
	if f.target.Container != nil {
		return f.target.Container.Measure()
	}
	return f.target.Surface.Size()
}

// applySize resizes the surface and adopts whatever size it settled on.
func (f *Field) applySize(w, h int) {
	f.target.Surface.SetSize(w, h)
	f.width, f.height = f.target.Surface.Size()
}

func (f *Field) tick() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = false
	if f.state != Running {
		return
	}

	s := f.target.Surface
	s.ClearRect(0, 0, float64(f.width), float64(f.height))
	f.connections = drawConnections(s, f.particles, f.cfg)
	for i := range f.particles {
		p := &f.particles[i]
		step(p, f.pointer, f.cfg.PointerRadius, f.width, f.height)
		drawParticle(s, p)
	}
	f.frames++

	f.frame = f.host.RequestFrame(f.tick)
	f.pending = true
}

func (f *Field) handleResize() {
	w, h := f.measure()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Running {
		return
	}
	f.applySize(w, h)
	f.particles = newParticles(f.cfg, f.width, f.height, f.rng)
	f.rebuilds++

	f.log.WithFields(logrus.Fields{
		"width":  f.width,
		"height": f.height,
	}).Debug("surface resized, particles rebuilt")
}

func (f *Field) handlePointerMove(x, y float64) {
	f.mu.Lock()
	f.pointer = Pointer{X: x, Y: y, OK: true}
	f.mu.Unlock()
}

func (f *Field) handlePointerLeave() {
	f.mu.Lock()
	f.pointer = Pointer{}
	f.mu.Unlock()
}

// Destroy cancels the pending frame and unsubscribes from the host. It is
// idempotent; a destroyed Field never draws again.
func (f *Field) Destroy() {
	f.mu.Lock()
	if f.state != Running {
		f.mu.Unlock()
		return
	}
	f.state = Stopped
	if f.pending {
		f.host.CancelFrame(f.frame)
		f.pending = false
	}
	unsubs := f.unsubscribe
	f.unsubscribe = nil
	f.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
	f.log.Debug("particle field stopped")
}

// State returns the current lifecycle stage.
func (f *Field) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Stats returns a snapshot of counters and dimensions.
func (f *Field) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Stats{
		State:       f.state,
		Width:       f.width,
		Height:      f.height,
		Particles:   len(f.particles),
		Connections: f.connections,
		Frames:      f.frames,
		Rebuilds:    f.rebuilds,
		Pointer:     f.pointer,
	}
}
