package window

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"particlefield.klederson.com/internal/config"
	"particlefield.klederson.com/internal/field"
)

// Options configures the window host.
type Options struct {
	Width     int
	Height    int
	Seed      int64
	ShowStats bool
	Logger    logrus.FieldLogger
}

// Game hosts a particle field in a desktop window.
type Game struct {
	host    *field.Headless
	surface *Surface
	field   *field.Field
	log     logrus.FieldLogger

	width, height int
	showStats     bool
	pointerIn     bool
	px, py        float64
}

var _ ebiten.Game = (*Game)(nil)

// New creates the game and starts its field at the requested size.
func New(cfg config.Field, opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = config.WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = config.WindowHeight
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}

	g := &Game{
		surface:   &Surface{},
		log:       log,
		width:     opts.Width,
		height:    opts.Height,
		showStats: opts.ShowStats,
	}
	g.host = field.NewHeadless(config.SurfaceID, g.surface, g.width, g.height)
	g.field = field.New(config.SurfaceID, g.host, cfg,
		field.WithRand(rand.New(rand.NewSource(opts.Seed))),
		field.WithLogger(log),
	)
	return g
}

// Field returns the hosted field.
func (g *Game) Field() *field.Field { return g.field }

// Update polls input once per tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.field.Destroy()
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	g.trackPointer(float64(x), float64(y), ebiten.IsFocused())
	return nil
}

// trackPointer turns a polled cursor position into move and leave events.
// The cursor position goes stale once the pointer leaves the window, so an
// unfocused window counts as the pointer having left.
func (g *Game) trackPointer(x, y float64, focused bool) {
	inside := focused && x >= 0 && y >= 0 && x < float64(g.width) && y < float64(g.height)
	switch {
	case inside && (!g.pointerIn || x != g.px || y != g.py):
		g.pointerIn, g.px, g.py = true, x, y
		g.host.MovePointer(x, y)
	case !inside && g.pointerIn:
		g.pointerIn = false
		g.host.LeavePointer()
	}
}

// Draw runs the pending animation frame onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.host.Step()
	g.surface.Bind(nil)

	if g.showStats {
		stats := g.field.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.0f  particles %d  links %d  frames %d",
			ebiten.ActualFPS(), stats.Particles, stats.Connections, stats.Frames))
	}
}

// Layout uses the window size as the surface size and reports changes to
// the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.log.WithFields(logrus.Fields{
			"width":  g.width,
			"height": g.height,
		}).Debug("window resized")
		g.host.Resize(g.width, g.height)
	}
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TargetFPS)

	defer g.field.Destroy()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
