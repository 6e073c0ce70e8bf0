package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"particlefield.klederson.com/internal/app"
	"particlefield.klederson.com/internal/config"
	"particlefield.klederson.com/internal/raster"
	"particlefield.klederson.com/internal/window"
)

// options collects every command line flag.
type options struct {
	count          int
	minSize        float64
	maxSize        float64
	palette        string
	connectDist    float64
	connectOpacity float64
	speed          float64
	pointerRadius  float64
	seed           int64
	logFile        string
	debug          bool

	demo   bool
	width  int
	height int
	frames int
	out    string
	stats  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "particlefield",
		Short: "Particle Field - drifting, connected particles that react to the pointer",
		Long: `Particle Field animates a field of softly glowing particles that orbit,
drift, link up with nearby neighbours and shy away from the pointer.

Run it in the terminal (default), in a desktop window, or render frames to PNG.
A fixed --seed makes every run reproducible.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&opts.count, "count", config.ParticleCount, "Number of particles")
	pf.Float64Var(&opts.minSize, "min-size", config.MinSize, "Smallest particle radius in pixels")
	pf.Float64Var(&opts.maxSize, "max-size", config.MaxSize, "Largest particle radius in pixels")
	pf.StringVar(&opts.palette, "palette", config.DefaultPaletteHex, "Comma separated #rrggbb[@alpha] colours")
	pf.Float64Var(&opts.connectDist, "connect-dist", config.ConnectDistance, "Maximum distance for a connecting line")
	pf.Float64Var(&opts.connectOpacity, "connect-opacity", config.ConnectOpacity, "Opacity of a zero-length connection")
	pf.Float64Var(&opts.speed, "speed", config.SpeedMultiplier, "Velocity scale")
	pf.Float64Var(&opts.pointerRadius, "pointer-radius", config.PointerRadius, "Pointer influence radius in pixels")
	pf.Int64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	pf.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCmd.Flags().BoolVar(&opts.demo, "demo", false, "Drive the pointer with a synthetic wanderer")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Animate the field in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
	tuiCmd.Flags().BoolVar(&opts.demo, "demo", false, "Drive the pointer with a synthetic wanderer")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "Animate the field in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, opts)
		},
	}
	windowCmd.Flags().IntVar(&opts.width, "width", config.WindowWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&opts.height, "height", config.WindowHeight, "Window height in pixels")
	windowCmd.Flags().BoolVar(&opts.stats, "stats", false, "Overlay frame statistics")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames to PNG files without a display",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	renderCmd.Flags().IntVar(&opts.frames, "frames", config.RenderFrames, "Number of frames to render")
	renderCmd.Flags().IntVar(&opts.width, "width", config.RenderWidth, "Frame width in pixels")
	renderCmd.Flags().IntVar(&opts.height, "height", config.RenderHeight, "Frame height in pixels")
	renderCmd.Flags().StringVar(&opts.out, "out", "frames", "Output directory")
	renderCmd.Flags().BoolVar(&opts.demo, "demo", false, "Drive the pointer with a synthetic wanderer")

	rootCmd.AddCommand(tuiCmd, windowCmd, renderCmd)
	return rootCmd
}

// fieldConfig builds and validates the field configuration from the flags.
func (o *options) fieldConfig() (config.Field, error) {
	cfg := config.Default()
	cfg.ParticleCount = o.count
	cfg.MinSize = o.minSize
	cfg.MaxSize = o.maxSize
	cfg.ConnectDistance = o.connectDist
	cfg.ConnectOpacity = o.connectOpacity
	cfg.SpeedMultiplier = o.speed
	cfg.PointerRadius = o.pointerRadius

	palette, err := config.ParsePalette(o.palette)
	if err != nil {
		return config.Field{}, fmt.Errorf("invalid --palette: %w", err)
	}
	cfg.Palette = palette

	if err := cfg.Validate(); err != nil {
		return config.Field{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (o *options) resolvedSeed() int64 {
	if o.seed != 0 {
		return o.seed
	}
	return time.Now().UnixNano()
}

// newLogger writes to the log file when one is given and to fallback
// otherwise. The returned func closes the file.
func newLogger(path string, debug bool, fallback io.Writer) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	log.SetLevel(logrus.InfoLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if path == "" {
		log.SetOutput(fallback)
		return log, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f.Close, nil
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.fieldConfig()
	if err != nil {
		return err
	}
	// The terminal belongs to Bubble Tea, so logs only go to a file.
	log, closeLog, err := newLogger(opts.logFile, opts.debug, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := opts.resolvedSeed()
	log.WithFields(logrus.Fields{"seed": seed, "demo": opts.demo}).Info("starting terminal host")

	model := app.New(cfg, app.Options{Demo: opts.demo, Seed: seed, Logger: log})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
	)

	if err := model.StartPointer(p); err != nil {
		return fmt.Errorf("start synthetic pointer: %w", err)
	}
	defer model.Stop()

	_, err = p.Run()
	return err
}

func runWindow(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.fieldConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(opts.logFile, opts.debug, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	seed := opts.resolvedSeed()
	log.WithFields(logrus.Fields{"seed": seed, "width": opts.width, "height": opts.height}).Info("starting window host")

	g := window.New(cfg, window.Options{
		Width:     opts.width,
		Height:    opts.height,
		Seed:      seed,
		ShowStats: opts.stats,
		Logger:    log,
	})
	return window.Run(g, fmt.Sprintf("%s v%s", config.AppName, config.AppVersion))
}

func runRender(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.fieldConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(opts.logFile, opts.debug, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	rec := raster.Recorder{
		Config: cfg,
		Frames: opts.frames,
		Width:  opts.width,
		Height: opts.height,
		Dir:    opts.out,
		Seed:   opts.resolvedSeed(),
		Demo:   opts.demo,
		Log:    log,
	}
	paths, err := rec.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frames to %s\n", len(paths), opts.out)
	return nil
}
