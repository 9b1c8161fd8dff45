package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treasure-arcade/internal/core"
	"github.com/vovakirdan/treasure-arcade/internal/registry"
)

var (
	// ErrNoSurface is returned when the host cannot provide a usable surface.
	ErrNoSurface = errors.New("engine: no render surface")
	// ErrNoInput is returned when no input snapshot is supplied.
	ErrNoInput = errors.New("engine: no input snapshot")
)

// Recorder persists finished runs. Implemented by the storage package.
type Recorder interface {
	RecordRun(res core.RunResult) error
}

// Options configures a Game.
type Options struct {
	Width    int // Surface width in logical pixels
	Height   int // Surface height in logical pixels
	TickRate int
	Seed     int64
	Touch    bool

	Logger   *log.Logger // nil discards logs
	Recorder Recorder    // nil disables run history
}

// Game owns the active scene and the fixed-timestep loop. It is the Host
// that scenes see.
type Game struct {
	cfg      core.RuntimeConfig
	in       *core.Input
	loop     *Loop
	logger   *log.Logger
	recorder Recorder

	scene    registry.Scene
	pending  string
	stepping bool
	quit     bool
	results  []core.RunResult
}

var _ registry.Host = (*Game)(nil)

// New creates a game host. The surface size must be positive and an input
// snapshot is required.
func New(opts Options, in *core.Input) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrNoSurface, opts.Width, opts.Height)
	}
	if in == nil {
		return nil, ErrNoInput
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		cfg: core.RuntimeConfig{
			Width:    opts.Width,
			Height:   opts.Height,
			TickRate: opts.TickRate,
			Seed:     opts.Seed,
			Touch:    opts.Touch,
		},
		in:       in,
		loop:     NewLoop(opts.TickRate),
		logger:   logger,
		recorder: opts.Recorder,
	}, nil
}

// Config returns the runtime configuration.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}

// Input returns the shared input snapshot.
func (g *Game) Input() *core.Input {
	return g.in
}

// Scene returns the active scene, or nil before the first SetScene.
func (g *Game) Scene() registry.Scene {
	return g.scene
}

// Loop exposes the scheduler (tests, diagnostics).
func (g *Game) Loop() *Loop {
	return g.loop
}

// SetScene creates and initializes the scene with the given ID and makes it
// active immediately.
func (g *Game) SetScene(id string) error {
	s, err := registry.Create(id)
	if err != nil {
		return err
	}
	if err := s.Init(g); err != nil {
		return fmt.Errorf("engine: init scene %q: %w", id, err)
	}
	g.scene = s
	g.logger.Info("scene started", "scene", id)
	return nil
}

// SwitchScene replaces the active scene. Called from inside a step, the
// switch is applied after the step returns so the old scene finishes its
// update (including its input advance) first.
func (g *Game) SwitchScene(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("%w %q", registry.ErrUnknownScene, id)
	}
	if g.stepping {
		g.pending = id
		return nil
	}
	return g.SetScene(id)
}

// Report records a finished run.
func (g *Game) Report(res core.RunResult) {
	g.results = append(g.results, res)
	g.logger.Info("run finished",
		"scene", res.SceneID,
		"outcome", res.Outcome,
		"elapsed", res.Elapsed.Round(time.Millisecond),
		"score", res.Score,
	)
	if g.recorder == nil {
		return
	}
	if err := g.recorder.RecordRun(res); err != nil {
		g.logger.Warn("failed to record run", "scene", res.SceneID, "err", err)
	}
}

// Results returns every run reported during this session.
func (g *Game) Results() []core.RunResult {
	return g.results
}

// Quit stops the loop and marks the game as done.
func (g *Game) Quit() {
	g.quit = true
	g.loop.Stop()
	g.logger.Debug("quit requested")
}

// Done reports whether a scene asked to quit.
func (g *Game) Done() bool {
	return g.quit
}

// Start starts the loop at now.
func (g *Game) Start(now time.Time) {
	if g.loop.Running() {
		return
	}
	g.loop.Start(now)
	g.logger.Debug("loop started", "tick", g.loop.Step())
}

// Stop halts the loop.
func (g *Game) Stop() {
	g.loop.Stop()
	g.logger.Debug("loop stopped")
}

// Resize updates the logical surface size scenes see through Config.
func (g *Game) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	g.cfg.Width = width
	g.cfg.Height = height
}

// Frame runs one host callback: fixed updates followed by one render.
// Returns the number of updates performed.
func (g *Game) Frame(now time.Time, dst core.Surface) int {
	return g.loop.Frame(now, g, dst)
}

// Update steps the active scene once and applies a pending scene switch.
func (g *Game) Update(dt float64) {
	if g.scene == nil {
		g.in.Advance()
		return
	}

	g.stepping = true
	g.scene.Update(dt)
	g.stepping = false

	if g.pending != "" {
		id := g.pending
		g.pending = ""
		if err := g.SetScene(id); err != nil {
			g.logger.Error("scene switch failed", "scene", id, "err", err)
		}
	}
}

// Render draws the active scene.
func (g *Game) Render(dst core.Surface) {
	if g.scene == nil {
		dst.Clear(core.ColorBlack)
		return
	}
	g.scene.Render(dst)
}
