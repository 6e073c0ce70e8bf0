package config

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Particle field defaults
	ParticleCount     = 50
	MinSize           = 2.0
	MaxSize           = 6.0
	ConnectDistance   = 120.0 // Max pixel distance for a connection line
	ConnectOpacity    = 0.15  // Opacity of a zero-length connection
	SpeedMultiplier   = 0.3
	PointerRadius     = 150.0 // Pointer influence radius in pixels
	ConnectLineWidth  = 1.0
	WrapMargin        = 10.0 // Pixels a particle may drift past an edge before wrapping
	SurfaceID         = "hero-particles-canvas"
	DefaultPaletteHex = "#D4A574@0.6,#D4A574@0.4,#E85A6F@0.5,#E85A6F@0.3,#C41E3A@0.3,#FDF8F3@0.4"

	// Frame loop
	TargetFPS = 60

	// Terminal surface: surface pixels covered by one character cell
	CellWidth  = 4
	CellHeight = 8

	// Window host
	WindowWidth  = 960
	WindowHeight = 540

	// Headless export
	RenderFrames = 120
	RenderWidth  = 800
	RenderHeight = 450

	// App
	AppName    = "PARTICLEFIELD"
	AppVersion = "1.0"
)

// ConnectColor is the base colour of connection lines; opacity is applied per line.
var ConnectColor = Color{R: 212, G: 165, B: 116, A: 1}

// Field holds the immutable configuration of one particle field.
type Field struct {
	ParticleCount    int
	MinSize          float64
	MaxSize          float64
	Palette          []Color
	ConnectDistance  float64
	ConnectOpacity   float64
	ConnectColor     Color
	ConnectLineWidth float64
	SpeedMultiplier  float64
	PointerRadius    float64
}

// Default returns the reference configuration.
func Default() Field {
	palette, err := ParsePalette(DefaultPaletteHex)
	if err != nil {
		panic(fmt.Sprintf("config: default palette: %v", err))
	}
	return Field{
		ParticleCount:    ParticleCount,
		MinSize:          MinSize,
		MaxSize:          MaxSize,
		Palette:          palette,
		ConnectDistance:  ConnectDistance,
		ConnectOpacity:   ConnectOpacity,
		ConnectColor:     ConnectColor,
		ConnectLineWidth: ConnectLineWidth,
		SpeedMultiplier:  SpeedMultiplier,
		PointerRadius:    PointerRadius,
	}
}

// Validate reports the first out-of-range setting. The field itself trusts its
// configuration; hosts call Validate on anything that came from the user.
func (f Field) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"min size", f.MinSize},
		{"max size", f.MaxSize},
		{"connection distance", f.ConnectDistance},
		{"connection opacity", f.ConnectOpacity},
		{"connection line width", f.ConnectLineWidth},
		{"speed multiplier", f.SpeedMultiplier},
		{"pointer radius", f.PointerRadius},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%s must be finite, got %g", v.name, v.value)
		}
	}

	switch {
	case f.ParticleCount <= 0:
		return fmt.Errorf("particle count must be positive, got %d", f.ParticleCount)
	case f.MinSize <= 0 || f.MaxSize <= 0:
		return fmt.Errorf("sizes must be positive, got [%g, %g]", f.MinSize, f.MaxSize)
	case f.MinSize > f.MaxSize:
		return fmt.Errorf("min size %g exceeds max size %g", f.MinSize, f.MaxSize)
	case len(f.Palette) == 0:
		return errors.New("palette must not be empty")
	case f.ConnectDistance <= 0:
		return fmt.Errorf("connection distance must be positive, got %g", f.ConnectDistance)
	case f.ConnectOpacity < 0 || f.ConnectOpacity > 1:
		return fmt.Errorf("connection opacity must be in [0,1], got %g", f.ConnectOpacity)
	case f.SpeedMultiplier <= 0:
		return fmt.Errorf("speed multiplier must be positive, got %g", f.SpeedMultiplier)
	case f.PointerRadius <= 0:
		return fmt.Errorf("pointer radius must be positive, got %g", f.PointerRadius)
	}
	return nil
}
