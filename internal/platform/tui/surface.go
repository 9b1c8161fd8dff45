package tui

import (
	"math"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// FillRune is drawn for filled rectangles.
const FillRune = '█'

// CellSurface adapts a character Screen to the pixel-space core.Surface.
// One cell covers GlyphWidth×GlyphHeight logical pixels.
type CellSurface struct {
	screen *core.Screen
	bg     core.Color
}

var _ core.Surface = (*CellSurface)(nil)

// NewCellSurface wraps screen.
func NewCellSurface(screen *core.Screen) *CellSurface {
	return &CellSurface{screen: screen}
}

// Width returns the logical width in pixels.
func (s *CellSurface) Width() int { return s.screen.Width() * core.GlyphWidth }

// Height returns the logical height in pixels.
func (s *CellSurface) Height() int { return s.screen.Height() * core.GlyphHeight }

// Clear blanks every cell and sets the background the screen is painted on.
func (s *CellSurface) Clear(c core.Color) {
	s.screen.Clear()
	s.bg = c
}

// Background returns the color of the last Clear.
func (s *CellSurface) Background() core.Color { return s.bg }

// Screen returns the wrapped screen.
func (s *CellSurface) Screen() *core.Screen { return s.screen }

// FillRect fills every cell the rectangle touches.
func (s *CellSurface) FillRect(r core.Rect, c core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := int(math.Floor(r.X / core.GlyphWidth))
	y0 := int(math.Floor(r.Y / core.GlyphHeight))
	x1 := int(math.Ceil(r.Right() / core.GlyphWidth))
	y1 := int(math.Ceil(r.Bottom() / core.GlyphHeight))
	s.screen.FillRect(x0, y0, x1-x0, y1-y0, FillRune, c)
}

// DrawText writes s starting at the cell containing (x, y).
func (s *CellSurface) DrawText(x, y float64, text string, c core.Color) {
	cx := int(math.Floor(x / core.GlyphWidth))
	cy := int(math.Floor(y / core.GlyphHeight))
	s.screen.DrawText(cx, cy, text, c)
}

// CellCenter returns the logical pixel at the center of cell (col, row).
func CellCenter(col, row int) (float64, float64) {
	return float64(col*core.GlyphWidth) + core.GlyphWidth/2,
		float64(row*core.GlyphHeight) + core.GlyphHeight/2
}
