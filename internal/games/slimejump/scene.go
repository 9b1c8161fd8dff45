// Package slimejump implements a side-scrolling platformer. The camera
// scrolls on its own; the slime has to jump the traps and reach the
// treasure at the end of the level.
package slimejump

import (
	"fmt"
	"time"

	"github.com/vovakirdan/treasure-arcade/internal/config"
	"github.com/vovakirdan/treasure-arcade/internal/core"
	"github.com/vovakirdan/treasure-arcade/internal/registry"
)

// ID is the registry identifier of the scene.
const ID = "slime-jump"

// MenuID is where Escape leads.
const MenuID = "menu"

// BackButton is the on-screen return-to-menu button shown with touch controls.
var BackButton = core.NewRect(10, 30, 100, 40)

// Keys that restart a finished run.
var retryKeys = []core.Key{core.KeySpace, core.KeyUp, core.KeyR, core.KeyTouchRetry}

// State is the level state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
	StateCleared
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config's own difficulty block.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register(ID, func() registry.Scene { return New() })
}

// Scene is the slime jump level and its state machine.
type Scene struct {
	host       registry.Host
	cfg        config.SlimeJumpConfig
	configured bool // cfg was injected, skip loading
	layout     Layout
	difficulty *config.DifficultyManager

	player   *Player
	entities []Entity
	groundY  float64
	state    State
	cameraX  float64

	clock         float64 // simulated seconds since the run started
	endTime       float64
	retryReleased bool
}

// New creates a scene that loads its config on Init.
func New() *Scene {
	return &Scene{layout: DefaultLayout()}
}

// NewWithConfig creates a scene with an explicit config and layout.
func NewWithConfig(cfg config.SlimeJumpConfig, layout Layout) *Scene {
	return &Scene{cfg: cfg, configured: true, layout: layout}
}

func (s *Scene) ID() string          { return ID }
func (s *Scene) Title() string       { return "Slime Jump" }
func (s *Scene) Description() string { return "Hop over the traps and grab the treasure" }

// Init binds the scene to its host and builds the level.
func (s *Scene) Init(host registry.Host) error {
	rc := host.Config()
	if rc.Width <= 0 || rc.Height <= 0 {
		return fmt.Errorf("slimejump: unusable surface %dx%d", rc.Width, rc.Height)
	}
	if host.Input() == nil {
		return fmt.Errorf("slimejump: host has no input")
	}

	if !s.configured {
		cfg, err := config.LoadSlimeJump(configPath)
		if err != nil {
			cfg = config.DefaultSlimeJumpConfig()
		}
		config.ApplySlimeJumpPreset(&cfg, difficultyPreset)
		s.cfg = cfg
	}

	if float64(rc.Height)-s.cfg.Player.GroundOffset < s.cfg.Player.Height {
		return fmt.Errorf("slimejump: surface height %d too small", rc.Height)
	}

	s.host = host
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)
	s.Reset()
	return nil
}

// Reset rebuilds the whole level from its layout and starts a new run.
func (s *Scene) Reset() {
	rc := s.host.Config()
	pc := s.cfg.Player

	s.groundY = float64(rc.Height) - pc.GroundOffset
	s.entities = s.layout.Build(s.groundY)
	s.player = NewPlayer(pc.X, s.groundY-pc.Height, pc.Width, pc.Height, s.groundY, s.cfg.Physics)
	s.player.SetAutoRun(rc.Touch)

	s.state = StatePlaying
	s.cameraX = 0
	s.clock = 0
	s.endTime = 0
	s.retryReleased = true
}

// Update advances the level by one fixed step.
func (s *Scene) Update(dt float64) {
	in := s.host.Input()
	defer in.Advance()

	s.clock += dt

	if in.JustPressed(core.KeyEscape) || s.backTapped(in) {
		if err := s.host.SwitchScene(MenuID); err == nil {
			return
		}
	}

	if s.state != StatePlaying {
		s.updateFinished(in)
		return
	}
	s.updatePlaying(in, dt)
}

func (s *Scene) backTapped(in *core.Input) bool {
	if !s.host.Config().Touch || s.state != StatePlaying {
		return false
	}
	if !in.JustPressed(core.KeyTouchJump) {
		return false
	}
	return BackButton.ContainsPoint(in.TouchPos())
}

func (s *Scene) updateFinished(in *core.Input) {
	if s.retryReleased && in.AnyJustPressed(retryKeys...) {
		s.Reset()
		return
	}
	if in.AnyJustReleased(retryKeys...) {
		s.retryReleased = true
	}
}

func (s *Scene) updatePlaying(in *core.Input, dt float64) {
	p := s.player
	clamped := p.Update(in, dt)

	// Landing window: first matching platform in declaration order wins
	landed := false
	for _, e := range s.entities {
		if e.Solid() && s.inLandingWindow(e.Rect) {
			p.Land(e.Rect.Y)
			landed = true
			break
		}
	}
	if !landed && !clamped {
		p.OnGround = false
	}

	for _, e := range s.entities {
		if e.Lethal() && p.Rect.Overlaps(e.Rect) {
			s.finish(StateGameOver)
			return
		}
	}
	for _, e := range s.entities {
		if e.Goal() && p.Rect.Overlaps(e.Rect) {
			s.finish(StateCleared)
			return
		}
	}

	rc := s.host.Config()
	if p.Rect.Y > float64(rc.Height) {
		s.finish(StateGameOver)
		return
	}

	scroll := s.difficulty.Speed(s.cfg.Camera.ScrollSpeed, s.clock)
	s.cameraX += scroll * dt
	if s.cameraX < 0 {
		s.cameraX = 0
	}

	if minX := s.cameraX + s.cfg.Camera.LeashMargin; p.Rect.X < minX {
		p.Rect.X = minX
	}

	lv := s.cfg.Level
	if s.cameraX > lv.Width-float64(rc.Width)-lv.AutoAdvanceDistance {
		p.Rect.X += lv.AutoMoveSpeed * dt
	}
}

// inLandingWindow reports whether a falling player is close enough to the
// top of r to be snapped onto it.
func (s *Scene) inLandingWindow(r core.Rect) bool {
	p := s.player
	if p.Vel.Y <= 0 {
		return false
	}
	bottom := p.Rect.Bottom()
	return bottom >= r.Y-s.cfg.Landing.Above &&
		bottom <= r.Y+s.cfg.Landing.Below &&
		p.Rect.OverlapsX(r)
}

func (s *Scene) finish(state State) {
	s.state = state
	s.endTime = s.clock
	// A retry key still held from play has to be let go first
	s.retryReleased = !s.host.Input().AnyDown(retryKeys...)

	outcome := core.OutcomeGameOver
	if state == StateCleared {
		outcome = core.OutcomeCleared
	}
	s.host.Report(core.RunResult{
		SceneID: ID,
		Outcome: outcome,
		Elapsed: s.EndTime(),
		Score:   s.Progress(),
	})
}

// State returns the level state.
func (s *Scene) State() State { return s.state }

// CameraX returns the camera offset.
func (s *Scene) CameraX() float64 { return s.cameraX }

// GroundY returns the baseline ground line.
func (s *Scene) GroundY() float64 { return s.groundY }

// Player returns the player.
func (s *Scene) Player() *Player { return s.player }

// Entities returns a copy of the static level entities.
func (s *Scene) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Elapsed returns the simulated time of the current run.
func (s *Scene) Elapsed() time.Duration {
	return seconds(s.clock)
}

// EndTime returns when the run ended, or zero while playing.
func (s *Scene) EndTime() time.Duration {
	return seconds(s.endTime)
}

// Progress is the distance covered in tens of pixels.
func (s *Scene) Progress() int {
	return int(s.player.Rect.X / 10)
}

// RetryArmed reports whether a retry press would be honored now.
func (s *Scene) RetryArmed() bool {
	return s.state != StatePlaying && s.retryReleased
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
