package app

import (
	"sync"

	"particlefield.klederson.com/internal/cellgrid"
	"particlefield.klederson.com/internal/field"
)

// termHost serves the particle field inside the Bubble Tea program: one
// surface (the grid), one pending frame at a time, and resize and pointer
// events forwarded from tea messages.
type termHost struct {
	id   string
	grid *cellgrid.Grid

	mu        sync.Mutex
	nextID    field.FrameID
	pendingID field.FrameID
	pending   func()
	width     int
	height    int

	resize field.Listeners[func()]
	move   field.Listeners[func(x, y float64)]
	leave  field.Listeners[func()]
}

var _ field.Host = (*termHost)(nil)

func newTermHost(id string, grid *cellgrid.Grid) *termHost {
	return &termHost{id: id, grid: grid}
}

func (h *termHost) Lookup(id string) (field.Target, bool) {
	if id != h.id {
		return field.Target{}, false
	}
	return field.Target{Surface: h.grid, Container: h, Pointer: h}, true
}

// RequestFrame replaces any pending frame; the model delivers it on the next FrameMsg.
func (h *termHost) RequestFrame(fn func()) field.FrameID {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.pendingID = h.nextID
	h.pending = fn
	return h.pendingID
}

func (h *termHost) CancelFrame(id field.FrameID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if id == h.pendingID {
		h.pending = nil
	}
}

// takeFrame removes and returns the pending callback, if any.
func (h *termHost) takeFrame() func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn := h.pending
	h.pending = nil
	return fn
}

func (h *termHost) hasFrame() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending != nil
}

func (h *termHost) Measure() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

func (h *termHost) OnResize(fn func()) func() { return h.resize.Add(fn) }

func (h *termHost) OnPointerMove(fn func(x, y float64)) func() { return h.move.Add(fn) }

func (h *termHost) OnPointerLeave(fn func()) func() { return h.leave.Add(fn) }

// setPanel records the panel size in cells and notifies resize subscribers.
func (h *termHost) setPanel(cols, rows int) {
	h.mu.Lock()
	h.width = cols * h.grid.CellW
	h.height = rows * h.grid.CellH
	h.mu.Unlock()
	h.resize.Each(func(fn func()) { fn() })
}

func (h *termHost) movePointer(x, y float64) {
	h.move.Each(func(fn func(x, y float64)) { fn(x, y) })
}

func (h *termHost) leavePointer() {
	h.leave.Each(func(fn func()) { fn() })
}
