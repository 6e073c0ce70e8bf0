package field

import "particlefield.klederson.com/internal/config"

// FrameID identifies a pending frame callback.
type FrameID uint64

// Scheduler runs a callback once before the next repaint.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Measurer reports the size a surface should take, usually its container's.
type Measurer interface {
	Measure() (width, height int)
}

// ResizeSource notifies when the hosting viewport changes size.
type ResizeSource interface {
	OnResize(fn func()) (unsubscribe func())
}

// PointerSource delivers surface-relative pointer positions.
type PointerSource interface {
	OnPointerMove(fn func(x, y float64)) (unsubscribe func())
	OnPointerLeave(fn func()) (unsubscribe func())
}

// GradientStop is one colour stop of a radial gradient, Offset in [0,1].
type GradientStop struct {
	Offset float64
	Color  config.Color
}

// Surface is a canvas-like drawing target measured in pixels.
type Surface interface {
	SetSize(width, height int)
	Size() (width, height int)
	ClearRect(x, y, w, h float64)
	StrokeLine(x0, y0, x1, y1, width float64, c config.Color)
	FillCircle(x, y, r float64, c config.Color)
	// FillRadial fills a circle of radius r with a gradient centred on (x, y).
	FillRadial(x, y, r float64, stops []GradientStop)
}

// Target is a surface found on the host together with its layout and input.
type Target struct {
	Surface   Surface
	Container Measurer
	Pointer   PointerSource
}

// Host resolves surfaces by id and provides frame scheduling and resize events.
type Host interface {
	Scheduler
	ResizeSource
	Lookup(id string) (Target, bool)
}

// Rand is the random source used for particle draws. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}
