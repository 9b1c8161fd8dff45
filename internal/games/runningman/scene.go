// Package runningman implements a top-down crowd runner. The player runs
// along a narrow bridge, gathers followers and opens the treasure at the
// far end; the bigger the crowd, the bigger the reward.
package runningman

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/treasure-arcade/internal/config"
	"github.com/vovakirdan/treasure-arcade/internal/core"
	"github.com/vovakirdan/treasure-arcade/internal/registry"
)

// ID is the registry identifier of the scene.
const ID = "running-man"

// MenuID is where Escape leads.
const MenuID = "menu"

// BackButton is the on-screen return-to-menu button shown with touch controls.
var BackButton = core.NewRect(10, 30, 100, 40)

var retryKeys = []core.Key{core.KeySpace, core.KeyR, core.KeyTouchRetry}

// State is the run state.
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

// SetDifficultyPreset sets the difficulty preset.
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

// Scene is one bridge run plus the money carried between runs.
type Scene struct {
	host       registry.Host
	cfg        config.RunningManConfig
	configured bool
	difficulty *config.DifficultyManager
	field      *FollowerField

	pos       core.Vec2 // X across the bridge, Y along it
	followers int
	score     int
	state     State

	money            int
	initialFollowers int

	clock         float64
	endTime       float64
	retryReleased bool
}

// New creates a scene that loads its config on Init.
func New() *Scene {
	return &Scene{}
}

// NewWithConfig creates a scene with an explicit config.
func NewWithConfig(cfg config.RunningManConfig) *Scene {
	return &Scene{cfg: cfg, configured: true}
}

func (s *Scene) ID() string          { return ID }
func (s *Scene) Title() string       { return "Running Man" }
func (s *Scene) Description() string { return "Gather a crowd and open the treasure" }

// Init binds the scene to its host and starts the first run.
func (s *Scene) Init(host registry.Host) error {
	rc := host.Config()
	if rc.Width <= 0 || rc.Height <= 0 {
		return fmt.Errorf("runningman: unusable surface %dx%d", rc.Width, rc.Height)
	}
	if host.Input() == nil {
		return fmt.Errorf("runningman: host has no input")
	}

	if !s.configured {
		cfg, err := config.LoadRunningMan(configPath)
		if err != nil {
			cfg = config.DefaultRunningManConfig()
		}
		config.ApplyRunningManPreset(&cfg, difficultyPreset)
		s.cfg = cfg
	}

	s.host = host
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)
	s.field = NewFollowerField(rc.Seed, &s.cfg.Followers, s.difficulty)
	s.initialFollowers = max(s.cfg.Player.InitialFollowers, 1)
	s.money = 0
	s.Reset()
	return nil
}

// Reset starts a new run on a freshly populated bridge. Money and the
// initial crowd size carry over.
func (s *Scene) Reset() {
	s.pos = core.Vec2{}
	s.followers = s.initialFollowers
	s.score = 0
	s.state = StatePlaying
	s.clock = 0
	s.endTime = 0
	s.retryReleased = true
	s.field.Spawn()
}

// Update advances the run by one fixed step.
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
	return in.JustPressed(core.KeyTouchJump) && BackButton.ContainsPoint(in.TouchPos())
}

func (s *Scene) updateFinished(in *core.Input) {
	if s.retryReleased && in.AnyJustPressed(retryKeys...) {
		if s.state == StateCleared && s.money >= s.cfg.Economy.UpgradeCost {
			s.money -= s.cfg.Economy.UpgradeCost
			s.initialFollowers++
		}
		s.Reset()
		return
	}
	if in.AnyJustReleased(retryKeys...) {
		s.retryReleased = true
	}
}

func (s *Scene) updatePlaying(in *core.Input, dt float64) {
	s.move(in, dt)

	if math.Abs(s.pos.X) > s.cfg.Bridge.Width/2 {
		s.finish(StateGameOver)
		return
	}

	for _, f := range s.field.Collect(s.pos) {
		s.followers, s.score = f.Apply(s.followers, s.score)
	}
	s.field.Update(s.pos, dt)

	if s.pos.Dist(s.TreasurePos()) < s.cfg.Followers.CollectRadius+1 {
		reward := Reward(s.cfg.Treasure.Value, s.followers)
		s.money += reward
		s.score += reward
		s.finish(StateCleared)
	}
}

// move applies one step of player movement. Touch play runs forward on
// its own and steers toward a held touch.
func (s *Scene) move(in *core.Input, dt float64) {
	step := s.cfg.Player.Speed * dt
	touch := s.host.Config().Touch

	forward := in.IsDown(core.KeyUp)
	back := in.IsDown(core.KeyDown)
	if forward {
		s.pos.Y += step
	}
	if back {
		s.pos.Y -= step
	}
	if touch && !forward && !back {
		s.pos.Y += step
	}

	if in.IsDown(core.KeyLeft) {
		s.pos.X -= step
	}
	if in.IsDown(core.KeyRight) {
		s.pos.X += step
	}
	if touch && in.IsDown(core.KeyTouchJump) {
		tx, _ := in.TouchPos()
		target := s.screenToWorldX(tx)
		if d := target - s.pos.X; math.Abs(d) <= step {
			s.pos.X = target
		} else {
			s.pos.X += math.Copysign(step, d)
		}
	}

	s.pos.Y = core.ClampF(s.pos.Y, 0, s.cfg.Bridge.Length)
}

func (s *Scene) finish(state State) {
	s.state = state
	s.endTime = s.clock
	s.retryReleased = !s.host.Input().AnyDown(retryKeys...)

	outcome := core.OutcomeGameOver
	if state == StateCleared {
		outcome = core.OutcomeCleared
	}
	s.host.Report(core.RunResult{
		SceneID: ID,
		Outcome: outcome,
		Elapsed: seconds(s.endTime),
		Score:   s.score,
	})
}

// Reward is the treasure payout for a crowd of the given size.
func Reward(value, followers int) int {
	return int(math.Floor(float64(value) * (1 + float64(followers)/10)))
}

// State returns the run state.
func (s *Scene) State() State { return s.state }

// Pos returns the player position.
func (s *Scene) Pos() core.Vec2 { return s.pos }

// TreasurePos returns where the treasure stands.
func (s *Scene) TreasurePos() core.Vec2 {
	return core.Vec2{X: 0, Y: s.cfg.Treasure.Distance}
}

// FollowerCount returns the size of the crowd.
func (s *Scene) FollowerCount() int { return s.followers }

// InitialFollowers returns the crowd size a new run starts with.
func (s *Scene) InitialFollowers() int { return s.initialFollowers }

// Score returns the run score.
func (s *Scene) Score() int { return s.score }

// Money returns the money banked by cleared runs.
func (s *Scene) Money() int { return s.money }

// Followers returns a copy of the followers on the bridge.
func (s *Scene) Followers() []Follower {
	src := s.field.Followers()
	out := make([]Follower, len(src))
	copy(out, src)
	return out
}

// EndTime returns when the run ended, or zero while playing.
func (s *Scene) EndTime() time.Duration {
	return seconds(s.endTime)
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
