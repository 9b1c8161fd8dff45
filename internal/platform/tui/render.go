package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "0",
	core.ColorBrown:         "94",
	core.ColorSky:           "117",
	core.ColorMint:          "121",
	core.ColorGold:          "220",
}

type styleKey struct {
	fg, bg core.Color
}

// styleFor returns the style for a run of cells, caching per color pair.
func styleFor(cache map[styleKey]lipgloss.Style, fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	if st, ok := cache[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if code, ok := palette[fg]; ok {
		st = st.Foreground(lipgloss.Color(code))
	}
	if code, ok := palette[bg]; ok {
		st = st.Background(lipgloss.Color(code))
	}
	cache[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Cells are painted on bg; ColorDefault leaves the terminal background.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, bg core.Color) string {
	cache := make(map[styleKey]lipgloss.Style)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			fg := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != fg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(cache, fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}
