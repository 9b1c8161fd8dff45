package slimejump

import (
	"github.com/vovakirdan/treasure-arcade/internal/config"
	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// Keys that start a jump.
var jumpKeys = []core.Key{core.KeyUp, core.KeySpace, core.KeyTouchJump}

// Player is the slime. Velocity is in px/s and is only changed by the
// player itself or by the level's ground resolution.
type Player struct {
	Entity
	Vel      core.Vec2
	OnGround bool
	Jumping  bool

	physics config.SlimeJumpPhysics
	groundY float64
	autoRun bool // touch controls: run right when no direction is held
}

// NewPlayer creates a grounded player with its top-left at (x, y).
func NewPlayer(x, y, w, h, groundY float64, physics config.SlimeJumpPhysics) *Player {
	return &Player{
		Entity:   Entity{Kind: KindPlayer, Rect: core.NewRect(x, y, w, h)},
		OnGround: true,
		physics:  physics,
		groundY:  groundY,
	}
}

// SetAutoRun enables the touch auto-run.
func (p *Player) SetAutoRun(on bool) {
	p.autoRun = on
}

// Update advances the player by dt seconds. It reports whether the baseline
// ground clamp fired this step.
func (p *Player) Update(in *core.Input, dt float64) bool {
	// Right is checked last and wins when both are held
	p.Vel.X = 0
	if in.IsDown(core.KeyLeft) {
		p.Vel.X = -p.physics.MoveSpeed
	}
	if in.IsDown(core.KeyRight) {
		p.Vel.X = p.physics.MoveSpeed
	}
	if p.autoRun && !in.AnyDown(core.KeyLeft, core.KeyRight) {
		p.Vel.X = p.physics.MoveSpeed * p.physics.AutoRunFactor
	}

	if in.AnyJustPressed(jumpKeys...) && p.OnGround {
		p.Vel.Y = p.physics.JumpForce
		p.Jumping = true
		p.OnGround = false
	}

	p.Vel = core.ApplyGravity(p.Vel, p.physics.Gravity, dt)

	p.Rect.X += p.Vel.X * dt
	p.Rect.Y += p.Vel.Y * dt

	clamped := false
	if p.Rect.Bottom() > p.groundY {
		p.Rect.Y = p.groundY - p.Rect.H
		p.Vel.Y = 0
		p.OnGround = true
		p.Jumping = false
		clamped = true
	}

	if p.Rect.X < 0 {
		p.Rect.X = 0
	}

	return clamped
}

// Land snaps the player's bottom onto top and grounds it.
func (p *Player) Land(top float64) {
	p.Rect.Y = top - p.Rect.H
	p.Vel.Y = 0
	p.OnGround = true
	p.Jumping = false
}

// render draws the slime body, eyes looking where it moves.
func (p *Player) render(dst core.Surface, camX float64) {
	r := p.Rect.Translate(-camX, 0)

	// Stretch while rising
	if p.Jumping {
		r = core.NewRect(r.X+2, r.Y-2, r.W-4, r.H+2)
	}
	dst.FillRect(r, p.Color())

	look := 0.0
	switch {
	case p.Vel.X > 0:
		look = 2
	case p.Vel.X < 0:
		look = -2
	}
	eyeY := r.Y + r.H/3
	cx := r.X + r.W/2
	dst.FillRect(core.NewRect(cx-9, eyeY, 6, 6), core.ColorWhite)
	dst.FillRect(core.NewRect(cx+3, eyeY, 6, 6), core.ColorWhite)
	dst.FillRect(core.NewRect(cx-7+look, eyeY+2, 2, 3), core.ColorBlack)
	dst.FillRect(core.NewRect(cx+5+look, eyeY+2, 2, 3), core.ColorBlack)
}
