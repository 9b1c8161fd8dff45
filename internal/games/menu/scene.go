// Package menu implements the start screen. It lists every registered
// scene and switches to the one the player picks.
package menu

import (
	"github.com/vovakirdan/treasure-arcade/internal/core"
	"github.com/vovakirdan/treasure-arcade/internal/registry"
)

// ID is the registry identifier of the menu.
const ID = "menu"

const (
	listTop   = 150.0
	rowHeight = 60.0
	rowWidth  = 400.0
)

var (
	upKeys    = []core.Key{core.KeyUp}
	downKeys  = []core.Key{core.KeyDown}
	startKeys = []core.Key{core.KeySpace, core.KeyEnter}
)

func init() {
	registry.Register(ID, func() registry.Scene { return New() })
}

// Scene is the game selection menu.
type Scene struct {
	host    registry.Host
	options []registry.SceneInfo
	cursor  int
}

// New creates an empty menu; options are collected on Init.
func New() *Scene {
	return &Scene{}
}

func (s *Scene) ID() string          { return ID }
func (s *Scene) Title() string       { return "Menu" }
func (s *Scene) Description() string { return "Pick a game" }

// Init snapshots the registry. Scenes registered later are not shown.
func (s *Scene) Init(host registry.Host) error {
	s.host = host
	s.options = s.options[:0]
	for _, info := range registry.List() {
		if info.ID == ID {
			continue
		}
		s.options = append(s.options, info)
	}
	s.cursor = 0
	return nil
}

// Update handles navigation for one step.
func (s *Scene) Update(float64) {
	in := s.host.Input()
	defer in.Advance()

	if in.JustPressed(core.KeyEscape) {
		s.host.Quit()
		return
	}
	if len(s.options) == 0 {
		return
	}

	switch {
	case in.AnyJustPressed(upKeys...):
		if s.cursor > 0 {
			s.cursor--
		}
	case in.AnyJustPressed(downKeys...):
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case in.AnyJustPressed(startKeys...):
		s.start()
	case in.JustPressed(core.KeyTouchJump):
		// A tap on a row picks that row, anywhere else starts the current one
		if i, ok := s.rowAt(in.TouchPos()); ok {
			s.cursor = i
		}
		s.start()
	}
}

func (s *Scene) start() {
	// An unknown ID keeps the menu up; the host logs it
	_ = s.host.SwitchScene(s.options[s.cursor].ID)
}

// rowRect is the highlight box of option i.
func (s *Scene) rowRect(i int) core.Rect {
	w := float64(s.host.Config().Width)
	return core.NewRect(w/2-rowWidth/2, listTop+float64(i)*rowHeight, rowWidth, rowHeight-10)
}

func (s *Scene) rowAt(x, y float64) (int, bool) {
	for i := range s.options {
		if s.rowRect(i).ContainsPoint(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Render draws the title, the options and the controls hint.
func (s *Scene) Render(dst core.Surface) {
	dst.Clear(core.ColorBlack)
	w, h := dst.Width(), dst.Height()

	title := "TREASURE ARCADE"
	dst.DrawText(core.CenterX(w, title), 60, title, core.ColorBrightYellow)

	if len(s.options) == 0 {
		msg := "No games registered"
		dst.DrawText(core.CenterX(w, msg), listTop, msg, core.ColorGray)
		return
	}

	for i, opt := range s.options {
		r := s.rowRect(i)
		titleColor, descColor := core.ColorWhite, core.ColorGray
		if i == s.cursor {
			dst.FillRect(r, core.ColorBlue)
			titleColor, descColor = core.ColorBrightYellow, core.ColorBrightWhite
		}
		dst.DrawText(core.CenterX(w, opt.Title), r.Y+5, opt.Title, titleColor)
		dst.DrawText(core.CenterX(w, opt.Description), r.Y+5+core.GlyphHeight, opt.Description, descColor)
	}

	hint := "UP/DOWN: select   SPACE: start   ESC: quit"
	if s.host.Config().Touch {
		hint = "Tap a game to start"
	}
	dst.DrawText(core.CenterX(w, hint), float64(h)-30, hint, core.ColorGray)
}

// Options returns the listed scenes in display order.
func (s *Scene) Options() []registry.SceneInfo {
	out := make([]registry.SceneInfo, len(s.options))
	copy(out, s.options)
	return out
}

// Cursor returns the index of the highlighted option.
func (s *Scene) Cursor() int { return s.cursor }
