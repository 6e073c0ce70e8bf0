package field

import (
	"math"

	"particlefield.klederson.com/internal/config"
)

const (
	pulseAmplitude = 0.3
	glowScale      = 3.0 // Glow radius relative to the core
	glowMidAlpha   = 0.2
)

// ConnectionOpacity is the line opacity for two particles d apart. It falls
// linearly from scale at d == 0 to zero at d == maxDist.
func ConnectionOpacity(d, maxDist, scale float64) float64 {
	if d >= maxDist {
		return 0
	}
	return (1 - d/maxDist) * scale
}

// PulseFactor is the size multiplier for a pulse phase, in [0.7, 1.3].
func PulseFactor(phase float64) float64 {
	return 1 + math.Sin(phase)*pulseAmplitude
}

// GlowStops are the radial gradient stops for a particle colour.
func GlowStops(c config.Color) []GradientStop {
	return []GradientStop{
		{Offset: 0, Color: c},
		{Offset: 0.5, Color: c.WithAlpha(glowMidAlpha)},
		{Offset: 1, Color: c.WithAlpha(0)},
	}
}

// SampleStops interpolates a gradient at t in [0,1]. Offsets are assumed
// ascending; t outside the stops takes the nearest end colour.
func SampleStops(stops []GradientStop, t float64) config.Color {
	if len(stops) == 0 {
		return config.Color{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		u := (t - a.Offset) / span
		cc := a.Color.Colorful().BlendRgb(b.Color.Colorful(), u)
		return config.FromColorful(cc, a.Color.A+(b.Color.A-a.Color.A)*u)
	}
	return stops[len(stops)-1].Color
}

// drawConnections strokes a line between every pair closer than the
// connection distance and returns how many were drawn. O(n²) in particles.
func drawConnections(s Surface, ps []Particle, cfg config.Field) int {
	n := 0
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= cfg.ConnectDistance {
				continue
			}
			alpha := ConnectionOpacity(d, cfg.ConnectDistance, cfg.ConnectOpacity)
			s.StrokeLine(ps[i].X, ps[i].Y, ps[j].X, ps[j].Y, cfg.ConnectLineWidth, cfg.ConnectColor.WithAlpha(alpha))
			n++
		}
	}
	return n
}

// drawParticle renders the glow and core of p.
//
// The pulse phase advances here rather than in step, so a frame that is
// simulated but never drawn leaves the pulse where it was.
func drawParticle(s Surface, p *Particle) {
	p.PulsePhase += p.PulseSpeed
	size := p.BaseSize * PulseFactor(p.PulsePhase)

	s.FillRadial(p.X, p.Y, size*glowScale, GlowStops(p.Color))
	s.FillCircle(p.X, p.Y, size, p.Color)
}
