package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// keyBindings maps game keys to the physical keys that drive them.
var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.KeyRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
	core.KeyUp:     {ebiten.KeyArrowUp, ebiten.KeyW},
	core.KeyDown:   {ebiten.KeyArrowDown, ebiten.KeyS},
	core.KeySpace:  {ebiten.KeySpace},
	core.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.KeyR:      {ebiten.KeyR},
	core.KeyEscape: {ebiten.KeyEscape},
}

// pollInput copies the physical key and pointer state into in. Press and
// Release only produce edges on a change, so polling levels is enough.
func pollInput(in *core.Input, touchIDs []ebiten.TouchID) []ebiten.TouchID {
	for k, phys := range keyBindings {
		if anyPressed(phys) {
			in.Press(k)
		} else {
			in.Release(k)
		}
	}

	// The first finger or the left mouse button acts as the touch contact
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	var (
		active bool
		x, y   int
	)
	switch {
	case len(touchIDs) > 0:
		active = true
		x, y = ebiten.TouchPosition(touchIDs[0])
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		active = true
		x, y = ebiten.CursorPosition()
	}

	touching := in.IsDown(core.KeyTouchJump)
	switch {
	case active && !touching:
		in.TouchStart(float64(x), float64(y))
	case active:
		in.TouchMove(float64(x), float64(y))
	case touching:
		in.TouchEnd()
	}
	return touchIDs
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
