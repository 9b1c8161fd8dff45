package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

func TestCellSurfaceSize(t *testing.T) {
	s := NewCellSurface(core.NewScreen(8, 5))
	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 100, s.Height())
}

func TestCellSurfaceFillRect(t *testing.T) {
	screen := core.NewScreen(8, 5)
	s := NewCellSurface(screen)

	s.FillRect(core.NewRect(5, 10, 10, 20), core.ColorGreen)
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		c := screen.GetCell(p[0], p[1])
		assert.Equal(t, FillRune, c.Rune, "cell %v", p)
		assert.Equal(t, core.ColorGreen, c.Color, "cell %v", p)
	}
	assert.Equal(t, ' ', screen.Get(2, 0))
	assert.Equal(t, ' ', screen.Get(0, 2))

	// Fully off-screen and empty rectangles draw nothing
	s.Clear(core.ColorBlack)
	s.FillRect(core.NewRect(-100, -100, 50, 50), core.ColorRed)
	s.FillRect(core.NewRect(10, 10, 0, 30), core.ColorRed)
	assert.Equal(t, strings.Repeat(" ", 8), screen.Row(0))
	assert.Equal(t, strings.Repeat(" ", 8), screen.Row(1))
}

func TestCellSurfaceDrawText(t *testing.T) {
	screen := core.NewScreen(8, 5)
	s := NewCellSurface(screen)

	s.DrawText(25, 45, "hi", core.ColorWhite)
	assert.Equal(t, 'h', screen.Get(2, 2))
	assert.Equal(t, 'i', screen.Get(3, 2))
}

func TestCellSurfaceClearKeepsBackground(t *testing.T) {
	screen := core.NewScreen(4, 2)
	s := NewCellSurface(screen)
	s.DrawText(0, 0, "xy", core.ColorWhite)

	s.Clear(core.ColorSky)
	assert.Equal(t, core.ColorSky, s.Background())
	assert.Equal(t, "    ", screen.Row(0))
}

func TestCellCenter(t *testing.T) {
	x, y := CellCenter(3, 2)
	assert.Equal(t, 35.0, x)
	assert.Equal(t, 50.0, y)
}

func TestRenderScreen(t *testing.T) {
	screen := core.NewScreen(6, 3)
	screen.DrawText(1, 1, "hi", core.ColorYellow)

	out := RenderScreen(screen, core.ColorDefault)
	assert.Len(t, strings.Split(out, "\n"), 3)
	assert.Contains(t, out, "hi")
}
