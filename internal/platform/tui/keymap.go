package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// KeyMap defines the terminal key bindings. Each game binding feeds one
// core.Key of the input snapshot.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Jump    key.Binding
	Confirm key.Binding
	Retry   key.Binding
	Back    key.Binding
	Quit    key.Binding
	Shot    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Jump, k.Retry, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Jump, k.Confirm, k.Retry},
		{k.Back, k.Quit, k.Shot},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "jump"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Lookup translates a key message to the game key it is bound to.
func (k KeyMap) Lookup(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft, true
	case key.Matches(msg, k.Right):
		return core.KeyRight, true
	case key.Matches(msg, k.Up):
		return core.KeyUp, true
	case key.Matches(msg, k.Down):
		return core.KeyDown, true
	case key.Matches(msg, k.Jump):
		return core.KeySpace, true
	case key.Matches(msg, k.Confirm):
		return core.KeyEnter, true
	case key.Matches(msg, k.Retry):
		return core.KeyR, true
	case key.Matches(msg, k.Back):
		return core.KeyEscape, true
	}
	return "", false
}

// DefaultKeyHold is how long a key counts as held after its last press.
const DefaultKeyHold = 150 * time.Millisecond

// KeyLatch turns terminal key presses into held keys. Terminals only
// report presses (and auto-repeats), so a key stays down until no repeat
// arrived for the hold duration.
type KeyLatch struct {
	hold time.Duration
	last map[core.Key]time.Time
}

// NewKeyLatch creates a latch. A non-positive hold uses DefaultKeyHold.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &KeyLatch{hold: hold, last: make(map[core.Key]time.Time)}
}

// Press records a press at now. Repeats of a held key only extend it.
func (l *KeyLatch) Press(in *core.Input, k core.Key, now time.Time) {
	in.Press(k)
	l.last[k] = now
}

// Expire releases every key whose last press is at least hold old.
func (l *KeyLatch) Expire(in *core.Input, now time.Time) {
	for k, t := range l.last {
		if now.Sub(t) >= l.hold {
			in.Release(k)
			delete(l.last, k)
		}
	}
}

// Held reports whether the latch currently holds k.
func (l *KeyLatch) Held(k core.Key) bool {
	_, ok := l.last[k]
	return ok
}
