package slimejump

import "github.com/vovakirdan/treasure-arcade/internal/core"

// Kind tags an entity variant.
type Kind uint8

const (
	KindGround Kind = iota
	KindTrap
	KindTreasure
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindTrap:
		return "trap"
	case KindTreasure:
		return "treasure"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Entity is a positioned rectangle with per-kind behaviour.
// Ground, trap and treasure entities are static; the player is driven by
// Player.Update.
type Entity struct {
	Kind Kind
	Rect core.Rect
}

// Solid reports whether the player can stand on the entity.
func (e Entity) Solid() bool {
	return e.Kind == KindGround
}

// Lethal reports whether touching the entity ends the run.
func (e Entity) Lethal() bool {
	return e.Kind == KindTrap
}

// Goal reports whether touching the entity clears the level.
func (e Entity) Goal() bool {
	return e.Kind == KindTreasure
}

// Color returns the fill color used for the entity body.
func (e Entity) Color() core.Color {
	switch e.Kind {
	case KindGround:
		return core.ColorBrown
	case KindTrap:
		return core.ColorRed
	case KindTreasure:
		return core.ColorGold
	case KindPlayer:
		return core.ColorMint
	default:
		return core.ColorWhite
	}
}

// renderEntity draws one entity shifted left by camX.
func renderEntity(dst core.Surface, e Entity, camX float64) {
	r := e.Rect.Translate(-camX, 0)
	if r.Right() < 0 || r.X > float64(dst.Width()) {
		return
	}

	dst.FillRect(r, e.Color())

	switch e.Kind {
	case KindGround:
		// Grass strip on top
		dst.FillRect(core.NewRect(r.X, r.Y, r.W, 5), core.ColorGreen)
	case KindTrap:
		// Spikes as alternating teeth
		for x := r.X; x+10 <= r.Right(); x += 20 {
			dst.FillRect(core.NewRect(x, r.Y-5, 10, 5), core.ColorBrightRed)
		}
	case KindTreasure:
		// Lid band and lock
		dst.FillRect(core.NewRect(r.X, r.Y+r.H/3, r.W, 4), core.ColorBrown)
		dst.FillRect(core.NewRect(r.X+r.W/2-4, r.Y+r.H/3-4, 8, 12), core.ColorYellow)
	}
}
