package field

import (
	"math"

	"particlefield.klederson.com/internal/config"
)

// Particle is one decorative point. Only X, Y, Angle and PulsePhase change after creation.
type Particle struct {
	X, Y        float64
	BaseSize    float64
	Color       config.Color
	VX, VY      float64
	Angle       float64 // Orbit phase, radians
	AngleSpeed  float64
	OrbitRadius float64
	PulsePhase  float64
	PulseSpeed  float64
}

const (
	minAngleSpeed  = 0.01
	angleSpeedSpan = 0.02
	minOrbitRadius = 20.0
	orbitSpan      = 30.0
	minPulseSpeed  = 0.02
	pulseSpeedSpan = 0.02
)

// newParticle draws a particle uniformly over a w×h surface.
func newParticle(cfg config.Field, w, h int, rng Rand) Particle {
	return Particle{
		X:           rng.Float64() * float64(w),
		Y:           rng.Float64() * float64(h),
		BaseSize:    cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize),
		Color:       cfg.Palette[int(rng.Float64()*float64(len(cfg.Palette)))%len(cfg.Palette)],
		VX:          (rng.Float64() - 0.5) * cfg.SpeedMultiplier,
		VY:          (rng.Float64() - 0.5) * cfg.SpeedMultiplier,
		Angle:       rng.Float64() * 2 * math.Pi,
		AngleSpeed:  minAngleSpeed + rng.Float64()*angleSpeedSpan,
		OrbitRadius: minOrbitRadius + rng.Float64()*orbitSpan,
		PulsePhase:  rng.Float64() * 2 * math.Pi,
		PulseSpeed:  minPulseSpeed + rng.Float64()*pulseSpeedSpan,
	}
}

// newParticles builds a full collection.
func newParticles(cfg config.Field, w, h int, rng Rand) []Particle {
	ps := make([]Particle, cfg.ParticleCount)
	for i := range ps {
		ps[i] = newParticle(cfg, w, h, rng)
	}
	return ps
}
