package slimejump

import (
	"fmt"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// Render draws the level, the player and the HUD.
func (s *Scene) Render(dst core.Surface) {
	dst.Clear(core.ColorSky)
	if s.player == nil {
		return
	}

	for _, e := range s.entities {
		renderEntity(dst, e, s.cameraX)
	}
	s.player.render(dst, s.cameraX)

	s.renderHUD(dst)
}

func (s *Scene) renderHUD(dst core.Surface) {
	w := dst.Width()

	switch s.state {
	case StatePlaying:
		dst.DrawText(10, 5, "ESC: menu", core.ColorBlack)
		t := fmt.Sprintf("TIME %6.2f", s.clock)
		dst.DrawText(float64(w)-core.TextWidth(t)-10, 5, t, core.ColorBlack)
		if s.host != nil && s.host.Config().Touch {
			dst.FillRect(BackButton, core.ColorBrightRed)
			dst.DrawText(BackButton.X+30, BackButton.Y+10, "BACK", core.ColorWhite)
		}

	case StateGameOver:
		s.renderPanel(dst, "GAME OVER", "", core.ColorBrightRed)

	case StateCleared:
		line := fmt.Sprintf("Clear time: %.2fs", s.endTime)
		s.renderPanel(dst, "STAGE CLEAR!", line, core.ColorBrightYellow)
	}
}

func (s *Scene) renderPanel(dst core.Surface, title, detail string, titleColor core.Color) {
	w, h := dst.Width(), dst.Height()
	panel := core.NewRect(float64(w)/2-200, float64(h)/2-80, 400, 180)
	dst.FillRect(panel, core.ColorBlack)

	y := panel.Y + 20
	dst.DrawText(core.CenterX(w, title), y, title, titleColor)
	y += 2 * core.GlyphHeight
	if detail != "" {
		dst.DrawText(core.CenterX(w, detail), y, detail, core.ColorWhite)
		y += core.GlyphHeight
	}

	retry := "SPACE to retry"
	if s.host != nil && s.host.Config().Touch {
		retry = "Tap to retry"
	}
	dst.DrawText(core.CenterX(w, retry), y, retry, core.ColorWhite)
	y += core.GlyphHeight
	dst.DrawText(core.CenterX(w, "ESC for menu"), y, "ESC for menu", core.ColorGray)
}
