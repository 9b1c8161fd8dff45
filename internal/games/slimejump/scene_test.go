package slimejump

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/treasure-arcade/internal/config"
	"github.com/vovakirdan/treasure-arcade/internal/core"
)

const dt = 1.0 / 60

type fakeHost struct {
	cfg      core.RuntimeConfig
	in       *core.Input
	switches []string
	reports  []core.RunResult
	quit     bool
}

func newFakeHost(touch bool) *fakeHost {
	cfg := core.DefaultConfig()
	cfg.Touch = touch
	return &fakeHost{cfg: cfg, in: core.NewInput()}
}

func (h *fakeHost) Config() core.RuntimeConfig { return h.cfg }
func (h *fakeHost) Input() *core.Input         { return h.in }
func (h *fakeHost) Report(r core.RunResult)    { h.reports = append(h.reports, r) }
func (h *fakeHost) Quit()                      { h.quit = true }

func (h *fakeHost) SwitchScene(id string) error {
	h.switches = append(h.switches, id)
	return nil
}

// flatLayout is a single floor under the spawn with a trap right after it.
func flatLayout() Layout {
	return Layout{
		Grounds:  []core.Rect{{X: 0, Y: 0, W: 500, H: 50}},
		Traps:    []core.Rect{{X: 500, Y: -10, W: 100, H: 10}},
		Treasure: core.Rect{X: 2800, Y: -50, W: 50, H: 50},
	}
}

func startScene(t *testing.T, h *fakeHost, cfg config.SlimeJumpConfig, layout Layout) *Scene {
	t.Helper()
	s := NewWithConfig(cfg, layout)
	require.NoError(t, s.Init(h))
	return s
}

func step(s *Scene, n int) {
	for i := 0; i < n; i++ {
		s.Update(dt)
	}
}

func TestInitRejectsUnusableSurface(t *testing.T) {
	h := newFakeHost(false)
	h.cfg.Width = 0
	assert.Error(t, NewWithConfig(config.DefaultSlimeJumpConfig(), DefaultLayout()).Init(h))

	h = newFakeHost(false)
	h.cfg.Height = 60 // ground line at 10px, below the player height
	assert.Error(t, NewWithConfig(config.DefaultSlimeJumpConfig(), DefaultLayout()).Init(h))

	h = newFakeHost(false)
	h.in = nil
	assert.Error(t, NewWithConfig(config.DefaultSlimeJumpConfig(), DefaultLayout()).Init(h))
}

func TestInitialState(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), DefaultLayout())

	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 0.0, s.CameraX())
	assert.Equal(t, 550.0, s.GroundY())

	p := s.Player()
	assert.Equal(t, core.NewRect(50, 510, 30, 40), p.Rect)
	assert.True(t, p.OnGround)
	assert.False(t, p.Jumping)
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), DefaultLayout())

	h.in.Press(core.KeySpace)
	jumps := 0
	wasJumping := false
	for i := 0; i < 150; i++ {
		s.Update(dt)
		if s.Player().Jumping && !wasJumping {
			jumps++
		}
		wasJumping = s.Player().Jumping
	}

	require.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 1, jumps, "holding jump must not repeat the impulse")
	assert.True(t, s.Player().OnGround, "player should have landed while still holding jump")
}

func TestJumpAndLand(t *testing.T) {
	h := newFakeHost(false)
	cfg := config.DefaultSlimeJumpConfig()
	s := startScene(t, h, cfg, DefaultLayout())

	h.in.Press(core.KeyUp)
	s.Update(dt)
	h.in.Release(core.KeyUp)

	p := s.Player()
	assert.InDelta(t, cfg.Physics.JumpForce+cfg.Physics.Gravity*dt, p.Vel.Y, 1e-9)
	assert.True(t, p.Jumping)
	assert.False(t, p.OnGround)

	landed := false
	for i := 0; i < 200 && !landed; i++ {
		s.Update(dt)
		landed = p.OnGround
	}

	require.True(t, landed)
	assert.Equal(t, 0.0, p.Vel.Y)
	assert.False(t, p.Jumping)
	assert.InDelta(t, s.GroundY(), p.Rect.Bottom(), 1e-9)
}

func TestPlayerJumpImpulse(t *testing.T) {
	in := core.NewInput()
	phys := config.DefaultSlimeJumpConfig().Physics
	p := NewPlayer(50, 510, 30, 40, 550, phys)

	in.Press(core.KeySpace)
	p.Update(in, 0)
	assert.Equal(t, phys.JumpForce, p.Vel.Y)

	// Airborne: a second press does nothing
	in.Advance()
	in.Release(core.KeySpace)
	in.Press(core.KeySpace)
	p.Update(in, 0)
	assert.Equal(t, phys.JumpForce, p.Vel.Y)
}

func TestPlayerHorizontalInput(t *testing.T) {
	in := core.NewInput()
	phys := config.DefaultSlimeJumpConfig().Physics
	p := NewPlayer(100, 510, 30, 40, 550, phys)

	in.Press(core.KeyLeft)
	p.Update(in, dt)
	assert.Equal(t, -phys.MoveSpeed, p.Vel.X)

	in.Press(core.KeyRight)
	p.Update(in, dt)
	assert.Equal(t, phys.MoveSpeed, p.Vel.X, "right wins when both are held")

	in.Reset()
	p.Update(in, dt)
	assert.Equal(t, 0.0, p.Vel.X)

	p.SetAutoRun(true)
	p.Update(in, dt)
	assert.InDelta(t, phys.MoveSpeed*phys.AutoRunFactor, p.Vel.X, 1e-9)

	in.Press(core.KeyLeft)
	p.Update(in, dt)
	assert.Equal(t, -phys.MoveSpeed, p.Vel.X, "held keys override auto-run")
}

func TestPlayerClampsLeftEdge(t *testing.T) {
	in := core.NewInput()
	p := NewPlayer(1, 510, 30, 40, 550, config.DefaultSlimeJumpConfig().Physics)
	in.Press(core.KeyLeft)
	p.Update(in, dt)
	assert.Equal(t, 0.0, p.Rect.X)
}

func platformLayout() Layout {
	return Layout{
		Grounds: []core.Rect{
			{X: 0, Y: 0, W: 3000, H: 50},
			{X: 100, Y: -150, W: 200, H: 20}, // top at 400
		},
		Treasure: core.Rect{X: 2800, Y: -50, W: 50, H: 50},
	}
}

func TestLandingWindowSnapsNearPlatform(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), platformLayout())

	p := s.Player()
	p.Rect.X = 150
	p.Rect.Y = 400 - p.Rect.H - 3
	p.Vel.Y = 1
	p.OnGround = false

	s.Update(dt)

	assert.True(t, p.OnGround)
	assert.Equal(t, 0.0, p.Vel.Y)
	assert.Equal(t, 400.0, p.Rect.Bottom())
}

func TestLandingWindowIgnoresFarAbove(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), platformLayout())

	p := s.Player()
	p.Rect.X = 150
	p.Rect.Y = 400 - p.Rect.H - 20
	p.Vel.Y = 1
	p.OnGround = false

	s.Update(dt)

	assert.False(t, p.OnGround)
	assert.Greater(t, p.Vel.Y, 0.0)
	assert.Less(t, p.Rect.Bottom(), 400.0)
}

func TestLandingWindowIgnoresRisingPlayer(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), platformLayout())

	p := s.Player()
	p.Rect.X = 150
	p.Rect.Y = 400 - p.Rect.H + 5
	p.Vel.Y = -300
	p.OnGround = false

	s.Update(dt)

	assert.False(t, p.OnGround, "jumping up through a platform does not land on it")
}

func TestLandingWindowConfigurable(t *testing.T) {
	h := newFakeHost(false)
	cfg := config.DefaultSlimeJumpConfig()
	cfg.Landing.Above = 25
	s := startScene(t, h, cfg, platformLayout())

	p := s.Player()
	p.Rect.X = 150
	p.Rect.Y = 400 - p.Rect.H - 20
	p.Vel.Y = 1
	p.OnGround = false

	s.Update(dt)

	assert.True(t, p.OnGround, "a wider band catches the 20px case")
}

func TestWalkingOffPlatformFalls(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), platformLayout())

	p := s.Player()
	p.Land(400)
	p.Rect.X = 150
	s.Update(dt)
	require.True(t, p.OnGround, "standing on the platform")

	// Past the right edge nothing catches the player
	p.Rect.X = 320
	s.Update(dt)
	assert.False(t, p.OnGround)
}

func TestTrapBeatsTreasure(t *testing.T) {
	h := newFakeHost(false)
	layout := Layout{
		Grounds:  []core.Rect{{X: 0, Y: 0, W: 3000, H: 50}},
		Traps:    []core.Rect{{X: 40, Y: -10, W: 100, H: 10}},
		Treasure: core.Rect{X: 40, Y: -50, W: 50, H: 50},
	}
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), layout)

	s.Update(dt)

	assert.Equal(t, StateGameOver, s.State())
	require.Len(t, h.reports, 1)
	assert.Equal(t, core.OutcomeGameOver, h.reports[0].Outcome)
}

func TestTreasureClears(t *testing.T) {
	h := newFakeHost(false)
	layout := Layout{
		Grounds:  []core.Rect{{X: 0, Y: 0, W: 3000, H: 50}},
		Treasure: core.Rect{X: 60, Y: -50, W: 50, H: 50},
	}
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), layout)

	s.Update(dt)

	assert.Equal(t, StateCleared, s.State())
	require.Len(t, h.reports, 1)
	assert.Equal(t, ID, h.reports[0].SceneID)
	assert.Equal(t, core.OutcomeCleared, h.reports[0].Outcome)
	assert.Equal(t, s.EndTime(), h.reports[0].Elapsed)
}

func TestAutoScrollPushesIntoTrap(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), flatLayout())

	endStep := -1
	for i := 1; i <= 400; i++ {
		s.Update(dt)
		assert.GreaterOrEqual(t, s.Player().Rect.X, s.CameraX()+50-1e-9, "leash")
		if s.State() != StatePlaying {
			endStep = i
			break
		}
	}

	require.Equal(t, StateGameOver, s.State())
	// Trap starts at x=500; the leash reaches it once the camera passes 420
	assert.InDelta(t, 170, endStep, 2)

	end := s.EndTime()
	assert.InDelta(t, float64(endStep)/60, end.Seconds(), 1e-6)

	cam := s.CameraX()
	step(s, 120)
	assert.Equal(t, end, s.EndTime(), "end time is recorded once")
	assert.Equal(t, cam, s.CameraX(), "camera does not scroll after the run ends")
	assert.Len(t, h.reports, 1, "one result per run")
	assert.Greater(t, s.Elapsed(), end)
}

func TestCameraIsMonotonic(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), DefaultLayout())

	prev := s.CameraX()
	for i := 0; i < 100; i++ {
		s.Update(dt)
		require.GreaterOrEqual(t, s.CameraX(), prev)
		prev = s.CameraX()
	}
	assert.InDelta(t, 150*100*dt, s.CameraX(), 1e-6)
}

func TestFallOutOfSurface(t *testing.T) {
	h := newFakeHost(false)
	cfg := config.DefaultSlimeJumpConfig()
	cfg.Player.GroundOffset = -100 // ground line below the bottom edge
	s := startScene(t, h, cfg, Layout{Treasure: core.Rect{X: 2800, Y: -50, W: 50, H: 50}})

	s.Update(dt)
	assert.Equal(t, StateGameOver, s.State())
}

func TestAutoAdvanceNearLevelEnd(t *testing.T) {
	h := newFakeHost(false)
	cfg := config.DefaultSlimeJumpConfig()
	cfg.Level.Width = 900 // threshold is crossed on the first scroll
	s := startScene(t, h, cfg, Layout{
		Grounds:  []core.Rect{{X: 0, Y: 0, W: 3000, H: 50}},
		Treasure: core.Rect{X: 2800, Y: -50, W: 50, H: 50},
	})

	s.Update(dt)

	leashed := s.CameraX() + cfg.Camera.LeashMargin
	assert.InDelta(t, leashed+cfg.Level.AutoMoveSpeed*dt, s.Player().Rect.X, 1e-9)
}

func TestEscapeReturnsToMenu(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), DefaultLayout())

	before := s.Player().Rect
	h.in.Press(core.KeyEscape)
	s.Update(dt)

	assert.Equal(t, []string{MenuID}, h.switches)
	assert.Equal(t, before, s.Player().Rect, "no simulation after leaving")
	assert.False(t, h.in.JustPressed(core.KeyEscape), "input advanced even on early return")
}

func TestEscapeFromGameOver(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), flatLayout())
	step(s, 200)
	require.Equal(t, StateGameOver, s.State())

	h.in.Press(core.KeyEscape)
	s.Update(dt)
	assert.Equal(t, []string{MenuID}, h.switches)
}

func TestTouchBackButton(t *testing.T) {
	h := newFakeHost(true)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), DefaultLayout())

	h.in.TouchStart(BackButton.X+5, BackButton.Y+5)
	s.Update(dt)
	assert.Equal(t, []string{MenuID}, h.switches)

	// Touching elsewhere jumps instead
	h2 := newFakeHost(true)
	s2 := startScene(t, h2, config.DefaultSlimeJumpConfig(), DefaultLayout())
	h2.in.TouchStart(400, 300)
	s2.Update(dt)
	assert.Empty(t, h2.switches)
	assert.True(t, s2.Player().Jumping)
}

func TestResetRestoresInitialLevel(t *testing.T) {
	h := newFakeHost(false)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), flatLayout())

	fresh := startScene(t, newFakeHost(false), config.DefaultSlimeJumpConfig(), flatLayout())

	step(s, 200)
	require.Equal(t, StateGameOver, s.State())
	require.True(t, s.RetryArmed(), "nothing was held when the run ended")

	h.in.Press(core.KeyR)
	s.Update(dt)

	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 0.0, s.CameraX())
	assert.Equal(t, time.Duration(0), s.EndTime())
	assert.Equal(t, fresh.Entities(), s.Entities())
	assert.Equal(t, fresh.Player().Rect, s.Player().Rect)
	assert.Equal(t, fresh.Player().Vel, s.Player().Vel)
	assert.Equal(t, fresh.Player().OnGround, s.Player().OnGround)

	// A second run reports again
	step(s, 200)
	assert.Len(t, h.reports, 2)
}

func TestRetryNeedsReleaseOfHeldKey(t *testing.T) {
	h := newFakeHost(false)
	layout := Layout{
		Grounds:  []core.Rect{{X: 0, Y: 0, W: 3000, H: 50}},
		Traps:    []core.Rect{{X: 40, Y: -10, W: 100, H: 10}},
		Treasure: core.Rect{X: 2800, Y: -50, W: 50, H: 50},
	}
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), layout)

	// The jump press that ends the run is still held
	h.in.Press(core.KeySpace)
	s.Update(dt)
	require.Equal(t, StateGameOver, s.State())
	assert.False(t, s.RetryArmed())

	step(s, 10)
	assert.Equal(t, StateGameOver, s.State(), "holding the key does not retry")

	h.in.Release(core.KeySpace)
	s.Update(dt)
	assert.True(t, s.RetryArmed())

	h.in.Press(core.KeySpace)
	s.Update(dt)
	assert.Equal(t, StatePlaying, s.State())
}

func TestTouchRetryIsSingleShot(t *testing.T) {
	h := newFakeHost(true)
	layout := Layout{
		Grounds:  []core.Rect{{X: 0, Y: 0, W: 3000, H: 50}},
		Traps:    []core.Rect{{X: 40, Y: -10, W: 100, H: 10}},
		Treasure: core.Rect{X: 2800, Y: -50, W: 50, H: 50},
	}
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), layout)

	h.in.TouchStart(400, 300)
	s.Update(dt)
	require.Equal(t, StateGameOver, s.State())
	assert.False(t, s.RetryArmed(), "the tap that ended the run cannot retry")

	h.in.TouchEnd()
	s.Update(dt)
	assert.True(t, s.RetryArmed())
	assert.Equal(t, StateGameOver, s.State())

	h.in.TouchStart(400, 300)
	s.Update(dt)
	assert.Equal(t, StatePlaying, s.State())
}

func TestRenderSmoke(t *testing.T) {
	h := newFakeHost(true)
	s := startScene(t, h, config.DefaultSlimeJumpConfig(), flatLayout())

	dst := core.NewDrawList(800, 600)
	s.Render(dst)
	ops := dst.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, core.OpClear, ops[0].Kind)
	assert.Equal(t, core.ColorSky, ops[0].Color)

	step(s, 200)
	s.Render(dst)
	found := false
	for _, op := range dst.Ops() {
		if op.Kind == core.OpText && op.Text == "GAME OVER" {
			found = true
		}
	}
	assert.True(t, found, "game over panel is drawn")
}
