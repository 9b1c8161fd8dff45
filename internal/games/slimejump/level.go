package slimejump

import "github.com/vovakirdan/treasure-arcade/internal/core"

// Layout declares a level. Rectangle Y values are offsets from the ground
// line, so the same layout fits any surface height.
type Layout struct {
	Grounds  []core.Rect
	Traps    []core.Rect
	Treasure core.Rect
}

// DefaultLayout is the stock slime jump level.
func DefaultLayout() Layout {
	return Layout{
		Grounds: []core.Rect{
			// Main floor with gaps
			{X: 0, Y: 0, W: 500, H: 50},
			{X: 600, Y: 0, W: 400, H: 50},
			{X: 1100, Y: 0, W: 300, H: 50},
			{X: 1500, Y: 0, W: 200, H: 50},
			{X: 1800, Y: 0, W: 400, H: 50},
			{X: 2300, Y: 0, W: 700, H: 50},

			// Floating steps
			{X: 550, Y: -100, W: 100, H: 20},
			{X: 1050, Y: -120, W: 80, H: 20},
			{X: 1450, Y: -150, W: 70, H: 20},
			{X: 1750, Y: -180, W: 60, H: 20},
		},
		Traps: []core.Rect{
			{X: 500, Y: -10, W: 100, H: 10},
			{X: 1000, Y: -10, W: 100, H: 10},
			{X: 1400, Y: -10, W: 100, H: 10},
			{X: 1700, Y: -10, W: 100, H: 10},
			{X: 2200, Y: -10, W: 100, H: 10},
		},
		Treasure: core.Rect{X: 2800, Y: -50, W: 50, H: 50},
	}
}

// Build places the layout on the given ground line. Entities come out in
// declaration order: grounds, traps, then the treasure.
func (l Layout) Build(groundY float64) []Entity {
	out := make([]Entity, 0, len(l.Grounds)+len(l.Traps)+1)
	for _, r := range l.Grounds {
		out = append(out, Entity{Kind: KindGround, Rect: r.Translate(0, groundY)})
	}
	for _, r := range l.Traps {
		out = append(out, Entity{Kind: KindTrap, Rect: r.Translate(0, groundY)})
	}
	out = append(out, Entity{Kind: KindTreasure, Rect: l.Treasure.Translate(0, groundY)})
	return out
}
