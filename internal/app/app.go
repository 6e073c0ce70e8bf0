package app

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"particlefield.klederson.com/internal/cellgrid"
	"particlefield.klederson.com/internal/config"
	"particlefield.klederson.com/internal/demo"
	"particlefield.klederson.com/internal/field"
	"particlefield.klederson.com/internal/ui"
)

// Options configures the terminal host.
type Options struct {
	Demo   bool               // Drive the pointer with a synthetic wanderer
	Seed   int64              // Zero picks a time-based seed
	Logger logrus.FieldLogger // Nil discards diagnostics
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	grid     *cellgrid.Grid
	host     *termHost
	field    *field.Field
	wanderer *demo.Wanderer
	ticking  bool
}

// AppModel is the root Bubble Tea model hosting the particle field.
type AppModel struct {
	width  int
	height int

	cfg      config.Field
	demoMode bool
	rng      *rand.Rand
	log      logrus.FieldLogger

	shared *shared

	// Cached after every frame
	stats field.Stats
}

// New creates a new AppModel. The field starts on the first window size message.
func New(cfg config.Field, opts Options) AppModel {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	grid := cellgrid.New(config.CellWidth, config.CellHeight)
	rng := rand.New(rand.NewSource(seed))

	m := AppModel{
		cfg:      cfg,
		demoMode: opts.Demo,
		rng:      rng,
		log:      opts.Logger,
		shared: &shared{
			grid: grid,
			host: newTermHost(config.SurfaceID, grid),
		},
	}
	if opts.Demo {
		m.shared.wanderer = demo.NewWanderer(0, 0, config.TargetFPS, rand.New(rand.NewSource(seed+1)))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.resize()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case demo.PointerMsg:
		m.shared.host.movePointer(msg.X, msg.Y)
		return m, nil

	case demo.LeaveMsg:
		m.shared.host.leavePointer()
		return m, nil

	case FrameMsg:
		m.shared.ticking = false
		if fn := m.shared.host.takeFrame(); fn != nil {
			fn()
		}
		if m.shared.field != nil {
			m.stats = m.shared.field.Stats()
		}
		return m, m.armFrame()
	}

	return m, nil
}

// resize sizes the panel and starts the field on the first call.
func (m AppModel) resize() tea.Cmd {
	cols, rows := ui.PanelInner(m.width, m.height)
	s := m.shared

	if s.wanderer != nil {
		s.wanderer.SetBounds(float64(cols*s.grid.CellW), float64(rows*s.grid.CellH))
	}
	s.host.setPanel(cols, rows)
	if s.field == nil {
		opts := []field.Option{field.WithRand(m.rng)}
		if m.log != nil {
			opts = append(opts, field.WithLogger(m.log))
		}
		s.field = field.New(config.SurfaceID, s.host, m.cfg, opts...)
	}
	return m.armFrame()
}

// armFrame schedules a FrameMsg if a frame is pending and none is in flight.
func (m AppModel) armFrame() tea.Cmd {
	if m.shared.ticking || !m.shared.host.hasFrame() {
		return nil
	}
	m.shared.ticking = true
	return frameCmd()
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c", "esc":
		m.Stop()
		if m.shared.field != nil {
			m.stats = m.shared.field.Stats()
		}
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse converts terminal cells to surface pixels relative to the panel.
func (m AppModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionMotion {
		return
	}
	ox, oy := ui.PanelOrigin()
	cols, rows := m.shared.grid.Dims()
	col := msg.X - ox
	row := msg.Y - oy
	if col < 0 || row < 0 || col >= cols || row >= rows {
		m.shared.host.leavePointer()
		return
	}
	x := (float64(col) + 0.5) * float64(m.shared.grid.CellW)
	y := (float64(row) + 0.5) * float64(m.shared.grid.CellH)
	m.shared.host.movePointer(x, y)
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing particle field..."
	}

	menuBar := ui.RenderMenuBar(m.width, m.demoMode)
	panel := ui.RenderPanel(m.width, m.height, m.shared.grid.Render())
	statusBar := ui.RenderStatusBar(m.width, m.stats)

	return ui.ComposeLayout(menuBar, panel, statusBar)
}

// StartPointer starts the synthetic pointer in demo mode. Must be called before p.Run().
func (m *AppModel) StartPointer(p *tea.Program) error {
	if m.shared.wanderer == nil {
		return nil
	}
	return m.shared.wanderer.Start(p)
}

// Stop tears the field down and halts the synthetic pointer. Safe to call repeatedly.
func (m *AppModel) Stop() {
	if m.shared.wanderer != nil {
		m.shared.wanderer.Stop()
	}
	if m.shared.field != nil {
		m.shared.field.Destroy()
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
