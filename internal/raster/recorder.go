package raster

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"particlefield.klederson.com/internal/config"
	"particlefield.klederson.com/internal/demo"
	"particlefield.klederson.com/internal/field"
)

// ErrNotStarted is returned when the field did not attach to the surface.
var ErrNotStarted = errors.New("particle field did not start")

// Recorder animates a field offscreen and writes every frame as a PNG.
type Recorder struct {
	Config config.Field
	Frames int
	Width  int
	Height int
	Dir    string
	Seed   int64
	Demo   bool // Drive the pointer with a synthetic wanderer
	Log    logrus.FieldLogger
}

// Run renders r.Frames frames and returns the written paths.
func (r Recorder) Run(ctx context.Context) ([]string, error) {
	if r.Frames <= 0 {
		return nil, fmt.Errorf("frame count must be positive, got %d", r.Frames)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("size must be positive, got %dx%d", r.Width, r.Height)
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	log := r.Log
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}

	surface := NewSurface(r.Width, r.Height)
	host := field.NewHeadless(config.SurfaceID, surface, r.Width, r.Height)
	f := field.New(config.SurfaceID, host, r.Config,
		field.WithRand(rand.New(rand.NewSource(r.Seed))),
		field.WithLogger(log),
	)
	defer f.Destroy()
	if f.State() != field.Running {
		return nil, ErrNotStarted
	}

	var pointer *demo.Wanderer
	if r.Demo {
		pointer = demo.NewWanderer(float64(r.Width), float64(r.Height), config.TargetFPS, rand.New(rand.NewSource(r.Seed+1)))
	}

	paths := make([]string, 0, r.Frames)
	for i := 0; i < r.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		if pointer != nil {
			if x, y, inside := pointer.Next(); inside {
				host.MovePointer(x, y)
			} else {
				host.LeavePointer()
			}
		}
		host.Step()

		path := filepath.Join(r.Dir, fmt.Sprintf("frame-%04d.png", i+1))
		if err := writePNG(path, surface); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	stats := f.Stats()
	log.WithFields(logrus.Fields{
		"frames":    stats.Frames,
		"particles": stats.Particles,
		"dir":       r.Dir,
	}).Info("render finished")
	return paths, nil
}

func writePNG(path string, s *Surface) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(out, s.Image()); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
