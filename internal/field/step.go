package field

import (
	"math"

	"particlefield.klederson.com/internal/config"
)

const (
	floatScale = 0.01 // Orbit radius to per-frame drift
	pushScale  = 0.5  // Pointer repulsion at full strength, pixels per frame
)

// Pointer is the last known pointer position; OK is false when unknown.
type Pointer struct {
	X, Y float64
	OK   bool
}

// step advances one particle by one frame on a w×h surface.
func step(p *Particle, ptr Pointer, radius float64, w, h int) {
	p.Angle += p.AngleSpeed
	floatX := math.Cos(p.Angle) * p.OrbitRadius * floatScale
	floatY := math.Sin(p.Angle) * p.OrbitRadius * floatScale

	p.X += p.VX + floatX
	p.Y += p.VY + floatY

	if ptr.OK {
		dx := p.X - ptr.X
		dy := p.Y - ptr.Y
		d := math.Sqrt(dx*dx + dy*dy)
		// d == 0 has no direction to push along
		if d > 0 && d < radius {
			force := (radius - d) / radius
			p.X += dx / d * force * pushScale
			p.Y += dy / d * force * pushScale
		}
	}

	wrap(p, float64(w), float64(h))
}

func wrap(p *Particle, w, h float64) {
	const m = config.WrapMargin
	if p.X < -m {
		p.X = w + m
	}
	if p.X > w+m {
		p.X = -m
	}
	if p.Y < -m {
		p.Y = h + m
	}
	if p.Y > h+m {
		p.Y = -m
	}
}
