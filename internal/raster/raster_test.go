package raster

import (
	"context"
	"image/png"
	"os"
	"testing"

	"particlefield.klederson.com/internal/config"
	"particlefield.klederson.com/internal/field"
)

func TestCSSColor(t *testing.T) {
	c := config.Color{R: 232, G: 90, B: 111, A: 0.5}
	if got := cssColor(c); got != "rgba(232,90,111,0.500)" {
		t.Errorf("Expected rgba(232,90,111,0.500), got %s", got)
	}
}

func TestSurfaceSize(t *testing.T) {
	s := NewSurface(64, 32)
	if w, h := s.Size(); w != 64 || h != 32 {
		t.Errorf("Expected 64x32, got %dx%d", w, h)
	}
	s.SetSize(10, 20)
	if b := s.Image().Bounds(); b.Dx() != 10 || b.Dy() != 20 {
		t.Errorf("Expected 10x20 image, got %v", b)
	}
}

func TestFillCircleDrawsPixels(t *testing.T) {
	s := NewSurface(40, 40)
	s.FillCircle(20, 20, 6, config.Color{R: 255, A: 1})
	_, _, _, a := s.Image().At(20, 20).RGBA()
	if a == 0 {
		t.Error("Expected an opaque pixel at the circle centre")
	}
	_, _, _, a = s.Image().At(2, 2).RGBA()
	if a != 0 {
		t.Error("Expected the corner to stay transparent")
	}

	s.ClearRect(0, 0, 40, 40)
	_, _, _, a = s.Image().At(20, 20).RGBA()
	if a != 0 {
		t.Error("Expected ClearRect to erase the circle")
	}
}

func TestFillRadialFades(t *testing.T) {
	s := NewSurface(60, 60)
	s.FillRadial(30, 30, 24, field.GlowStops(config.Color{R: 255, G: 255, B: 255, A: 1}))
	_, _, _, center := s.Image().At(30, 30).RGBA()
	_, _, _, edge := s.Image().At(30, 52).RGBA()
	if center <= edge {
		t.Errorf("Expected glow to fade outwards, centre alpha %d edge alpha %d", center, edge)
	}
}

func TestRecorderWritesFrames(t *testing.T) {
	dir := t.TempDir()
	rec := Recorder{
		Config: config.Default(),
		Frames: 3,
		Width:  120,
		Height: 80,
		Dir:    dir,
		Seed:   9,
		Demo:   true,
	}
	paths, err := rec.Run(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(paths))
	}
	f, err := os.Open(paths[2])
	if err != nil {
		t.Fatalf("Open frame: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode frame: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("Expected 120x80 frame, got %v", b)
	}
}

func TestRecorderRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		rec  Recorder
	}{
		{"No frames", Recorder{Config: config.Default(), Frames: 0, Width: 10, Height: 10}},
		{"No size", Recorder{Config: config.Default(), Frames: 1, Width: 0, Height: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.rec.Dir = t.TempDir()
			if _, err := tt.rec.Run(context.Background()); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestRecorderHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := Recorder{Config: config.Default(), Frames: 5, Width: 40, Height: 40, Dir: t.TempDir()}
	paths, err := rec.Run(ctx)
	if err == nil || len(paths) != 0 {
		t.Errorf("Expected cancellation before the first frame, got %d paths, err %v", len(paths), err)
	}
}

func TestZeroSizeSurfaceClampsToOnePixel(t *testing.T) {
	s := NewSurface(0, 0)
	if w, h := s.Size(); w != 1 || h != 1 {
		t.Errorf("Expected 1x1 surface, got %dx%d", w, h)
	}

	host := field.NewHeadless(config.SurfaceID, s, 0, 0)
	f := field.New(config.SurfaceID, host, config.Default())
	defer f.Destroy()
	if stats := f.Stats(); stats.Width != 1 || stats.Height != 1 {
		t.Errorf("Expected field to adopt 1x1, got %dx%d", stats.Width, stats.Height)
	}
	host.Step()
	if got := f.Stats().Frames; got != 1 {
		t.Errorf("Expected 1 frame, got %d", got)
	}
}
