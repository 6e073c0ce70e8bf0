package field

import "sync"

// Headless is a Host with a single surface whose frames, resizes and pointer
// events are all driven explicitly by its owner.
type Headless struct {
	FrameQueue

	id      string
	surface Surface

	mu     sync.Mutex
	width  int
	height int

	resize Listeners[func()]
	move   Listeners[func(x, y float64)]
	leave  Listeners[func()]
}

// NewHeadless exposes s under id with an initial container size.
func NewHeadless(id string, s Surface, width, height int) *Headless {
	return &Headless{id: id, surface: s, width: width, height: height}
}

// Lookup implements Host.
func (h *Headless) Lookup(id string) (Target, bool) {
	if id != h.id || h.surface == nil {
		return Target{}, false
	}
	return Target{Surface: h.surface, Container: h, Pointer: h}, true
}

// Measure reports the container size.
func (h *Headless) Measure() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

func (h *Headless) OnResize(fn func()) func() { return h.resize.Add(fn) }

func (h *Headless) OnPointerMove(fn func(x, y float64)) func() { return h.move.Add(fn) }

func (h *Headless) OnPointerLeave(fn func()) func() { return h.leave.Add(fn) }

// Resize changes the container size and notifies subscribers.
func (h *Headless) Resize(width, height int) {
	h.mu.Lock()
	h.width, h.height = width, height
	h.mu.Unlock()
	h.resize.Each(func(fn func()) { fn() })
}

// MovePointer reports a pointer position relative to the surface.
func (h *Headless) MovePointer(x, y float64) {
	h.move.Each(func(fn func(x, y float64)) { fn(x, y) })
}

// LeavePointer reports that the pointer left the surface.
func (h *Headless) LeavePointer() {
	h.leave.Each(func(fn func()) { fn() })
}

// Subscribers returns the number of live resize, move and leave subscriptions.
func (h *Headless) Subscribers() int {
	return h.resize.Len() + h.move.Len() + h.leave.Len()
}
