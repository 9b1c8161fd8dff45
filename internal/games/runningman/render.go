package runningman

import (
	"fmt"
	"math"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// pixelsPerUnit is the top-down zoom.
const pixelsPerUnit = 40.0

// The player is drawn this far above the bottom edge.
const playerAnchor = 140.0

func (s *Scene) worldToScreen(p core.Vec2) (float64, float64) {
	rc := s.host.Config()
	x := float64(rc.Width)/2 + p.X*pixelsPerUnit
	y := float64(rc.Height) - playerAnchor - (p.Y-s.pos.Y)*pixelsPerUnit
	return x, y
}

func (s *Scene) screenToWorldX(x float64) float64 {
	return (x - float64(s.host.Config().Width)/2) / pixelsPerUnit
}

// square returns a size×size box centered on p, in screen space.
func (s *Scene) square(p core.Vec2, size float64) core.Rect {
	x, y := s.worldToScreen(p)
	px := size * pixelsPerUnit
	return core.NewRect(x-px/2, y-px/2, px, px)
}

// Render draws the bridge, followers, treasure, player and HUD.
func (s *Scene) Render(dst core.Surface) {
	dst.Clear(core.ColorBlue)
	if s.field == nil {
		return
	}

	s.renderBridge(dst)

	t := s.square(s.TreasurePos(), 1.5)
	dst.FillRect(t, core.ColorGold)

	for _, f := range s.field.Followers() {
		r := s.square(f.Pos, 0.6)
		dst.FillRect(r, f.Color())
		if label := f.Label(); label != "" && !f.Collected {
			dst.DrawText(r.X+r.W/2-core.TextWidth(label)/2, r.Y-core.GlyphHeight, label, core.ColorWhite)
		}
	}

	dst.FillRect(s.square(s.pos, 0.8), core.ColorBrightYellow)

	s.renderHUD(dst)
}

func (s *Scene) renderBridge(dst core.Surface) {
	h := float64(dst.Height())
	left, _ := s.worldToScreen(core.Vec2{X: -s.cfg.Bridge.Width / 2})
	_, far := s.worldToScreen(core.Vec2{Y: s.cfg.Bridge.Length})
	_, near := s.worldToScreen(core.Vec2{})

	top := math.Max(far, 0)
	bottom := math.Min(near, h)
	if bottom <= top {
		return
	}
	dst.FillRect(core.NewRect(left, top, s.cfg.Bridge.Width*pixelsPerUnit, bottom-top), core.ColorBrown)
}

func (s *Scene) renderHUD(dst core.Surface) {
	w := dst.Width()

	switch s.state {
	case StatePlaying:
		dst.DrawText(10, 5, fmt.Sprintf("FOLLOWERS %d", s.followers), core.ColorWhite)
		dst.DrawText(10, 5+core.GlyphHeight, fmt.Sprintf("SCORE %d", s.score), core.ColorWhite)
		dist := fmt.Sprintf("%3.0f/%.0f", s.pos.Y, s.cfg.Treasure.Distance)
		dst.DrawText(float64(w)-core.TextWidth(dist)-10, 5, dist, core.ColorWhite)
		if s.host.Config().Touch {
			dst.FillRect(BackButton, core.ColorBrightRed)
			dst.DrawText(BackButton.X+30, BackButton.Y+10, "BACK", core.ColorWhite)
		}

	case StateGameOver:
		s.renderPanel(dst, "GAME OVER", core.ColorBrightRed,
			fmt.Sprintf("Score: %d", s.score),
			fmt.Sprintf("Money: %d", s.money))

	case StateCleared:
		s.renderPanel(dst, "GAME CLEAR!", core.ColorBrightYellow,
			fmt.Sprintf("Score: %d", s.score),
			fmt.Sprintf("Money: %d", s.money),
			fmt.Sprintf("Start crowd: %d (+1 for %d)", s.initialFollowers, s.cfg.Economy.UpgradeCost))
	}
}

func (s *Scene) renderPanel(dst core.Surface, title string, titleColor core.Color, lines ...string) {
	w, h := dst.Width(), dst.Height()
	panel := core.NewRect(float64(w)/2-200, float64(h)/2-100, 400, 220)
	dst.FillRect(panel, core.ColorBlack)

	y := panel.Y + 20
	dst.DrawText(core.CenterX(w, title), y, title, titleColor)
	y += 2 * core.GlyphHeight
	for _, l := range lines {
		dst.DrawText(core.CenterX(w, l), y, l, core.ColorWhite)
		y += core.GlyphHeight
	}

	retry := "R or SPACE to retry"
	if s.host.Config().Touch {
		retry = "Tap to retry"
	}
	y += core.GlyphHeight / 2
	dst.DrawText(core.CenterX(w, retry), y, retry, core.ColorWhite)
	y += core.GlyphHeight
	dst.DrawText(core.CenterX(w, "ESC for menu"), y, "ESC for menu", core.ColorGray)
}
