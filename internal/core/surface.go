package core

import "unicode/utf8"

// Surface is the drawing target scenes render into once per frame.
// Coordinates are logical pixels with the origin at the top-left.
type Surface interface {
	Width() int
	Height() int
	Clear(c Color)
	FillRect(r Rect, c Color)
	DrawText(x, y float64, s string, c Color)
}

// Nominal text cell size in logical pixels. Hosts advance one glyph per
// GlyphWidth so scenes can lay out text without knowing the font.
const (
	GlyphWidth  = 10
	GlyphHeight = 20
)

// TextWidth returns the laid-out width of s in logical pixels.
func TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s) * GlyphWidth)
}

// CenterX returns the x at which s is horizontally centered on a surface
// of the given width.
func CenterX(width int, s string) float64 {
	return (float64(width) - TextWidth(s)) / 2
}

// OpKind identifies a recorded draw operation.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpText
)

// DrawOp is a single recorded draw call.
type DrawOp struct {
	Kind  OpKind
	Rect  Rect // FillRect area; X/Y hold the text origin for OpText
	Text  string
	Color Color
}

// DrawList is a Surface that records draw calls so they can be replayed
// later onto another Surface. The window host renders scenes into one during
// its frame callback and replays it in Draw.
type DrawList struct {
	width, height int
	ops           []DrawOp
}

// NewDrawList creates an empty recording surface of the given size.
func NewDrawList(width, height int) *DrawList {
	return &DrawList{width: width, height: height}
}

func (d *DrawList) Width() int  { return d.width }
func (d *DrawList) Height() int { return d.height }

// Resize changes the reported surface size. Recorded ops are kept.
func (d *DrawList) Resize(width, height int) {
	d.width = width
	d.height = height
}

// Clear drops previously recorded ops and records a full clear.
func (d *DrawList) Clear(c Color) {
	d.ops = append(d.ops[:0], DrawOp{Kind: OpClear, Color: c})
}

func (d *DrawList) FillRect(r Rect, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpFillRect, Rect: r, Color: c})
}

func (d *DrawList) DrawText(x, y float64, s string, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpText, Rect: Rect{X: x, Y: y}, Text: s, Color: c})
}

// Ops returns the recorded operations. The slice is owned by the list.
func (d *DrawList) Ops() []DrawOp {
	return d.ops
}

// Reset drops all recorded operations.
func (d *DrawList) Reset() {
	d.ops = d.ops[:0]
}

// Replay issues every recorded operation against dst in order.
func (d *DrawList) Replay(dst Surface) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear(op.Color)
		case OpFillRect:
			dst.FillRect(op.Rect, op.Color)
		case OpText:
			dst.DrawText(op.Rect.X, op.Rect.Y, op.Text, op.Color)
		}
	}
}
