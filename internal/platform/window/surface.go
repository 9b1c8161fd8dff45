package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// palette maps core.Color to screen colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	core.ColorRed:           {R: 0xaa, G: 0x22, B: 0x22, A: 0xff},
	core.ColorGreen:         {R: 0x22, G: 0x99, B: 0x22, A: 0xff},
	core.ColorYellow:        {R: 0xcc, G: 0xaa, B: 0x22, A: 0xff},
	core.ColorBlue:          {R: 0x1e, G: 0x4f, B: 0x9c, A: 0xff},
	core.ColorMagenta:       {R: 0xaa, G: 0x22, B: 0xaa, A: 0xff},
	core.ColorCyan:          {R: 0x22, G: 0xaa, B: 0xaa, A: 0xff},
	core.ColorWhite:         {R: 0xee, G: 0xee, B: 0xee, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x44, B: 0x44, A: 0xff},
	core.ColorBrightGreen:   {R: 0x44, G: 0xee, B: 0x44, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xee, B: 0x55, A: 0xff},
	core.ColorBrightBlue:    {R: 0x00, G: 0xaa, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x66, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x66, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	core.ColorGray:          {R: 0x99, G: 0x99, B: 0x99, A: 0xff},
	core.ColorBlack:         {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	core.ColorBrown:         {R: 0x8b, G: 0x45, B: 0x13, A: 0xff},
	core.ColorSky:           {R: 0x87, G: 0xce, B: 0xeb, A: 0xff},
	core.ColorMint:          {R: 0x66, G: 0xdd, B: 0xaa, A: 0xff},
	core.ColorGold:          {R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// imageSurface draws onto an ebiten image.
type imageSurface struct {
	img  *ebiten.Image
	face text.Face
}

var _ core.Surface = (*imageSurface)(nil)

func (s *imageSurface) Width() int  { return s.img.Bounds().Dx() }
func (s *imageSurface) Height() int { return s.img.Bounds().Dy() }

func (s *imageSurface) Clear(c core.Color) {
	s.img.Fill(rgba(c))
}

func (s *imageSurface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), false)
}

func (s *imageSurface) DrawText(x, y float64, str string, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(c))
	text.Draw(s.img, str, s.face, op)
}
