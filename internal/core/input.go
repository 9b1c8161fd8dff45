package core

// Key is a logical key identifier. Hosts translate their physical keys and
// touch contacts into these before feeding the Input snapshot.
type Key string

const (
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeySpace  Key = "space"
	KeyEnter  Key = "enter"
	KeyR      Key = "r"
	KeyEscape Key = "escape"

	// Synthetic keys driven by touch contacts.
	KeyTouchJump  Key = "touch_jump"
	KeyTouchRetry Key = "touch_retry"
)

// Input is the per-step keyboard/touch snapshot shared by every scene.
// Hosts feed raw events (Press/Release/TouchStart/TouchEnd); scenes only query
// it and call Advance exactly once per simulation step.
//
// Input is not safe for concurrent use. Hosts deliver events on the same
// goroutine that runs simulation steps.
type Input struct {
	down     map[Key]bool
	pressed  map[Key]bool
	released map[Key]bool

	touchX, touchY float64
	retryLatched   bool // touch set the retry key and its release is still owed
}

// NewInput creates an empty input snapshot.
func NewInput() *Input {
	return &Input{
		down:     make(map[Key]bool),
		pressed:  make(map[Key]bool),
		released: make(map[Key]bool),
	}
}

// Press records a raw key-down event. Repeated downs while held (key repeat)
// do not produce a new just-pressed edge.
func (in *Input) Press(k Key) {
	if !in.down[k] {
		in.pressed[k] = true
	}
	in.down[k] = true
}

// Release records a raw key-up event.
func (in *Input) Release(k Key) {
	if in.down[k] {
		in.released[k] = true
	}
	in.down[k] = false
}

// TouchStart records the start of a touch contact at surface coordinates.
// A contact holds both the jump and the retry synthetic keys.
func (in *Input) TouchStart(x, y float64) {
	in.touchX = x
	in.touchY = y
	in.Press(KeyTouchJump)
	in.Press(KeyTouchRetry)
	in.retryLatched = true
}

// TouchEnd records the end of the touch contact. The retry key always
// reports a release here if this contact latched it, even when its level was
// already dropped earlier in the same step.
func (in *Input) TouchEnd() {
	in.Release(KeyTouchJump)
	if in.retryLatched || in.down[KeyTouchRetry] {
		in.released[KeyTouchRetry] = true
	}
	in.down[KeyTouchRetry] = false
	in.retryLatched = false
}

// TouchMove updates the position of a held contact without producing edges.
func (in *Input) TouchMove(x, y float64) {
	if !in.down[KeyTouchJump] {
		return
	}
	in.touchX = x
	in.touchY = y
}

// TouchPos returns the position of the most recent touch contact.
func (in *Input) TouchPos() (float64, float64) {
	return in.touchX, in.touchY
}

// IsDown reports whether the key is currently held.
func (in *Input) IsDown(k Key) bool {
	return in.down[k]
}

// JustPressed reports whether the key went down since the last Advance.
func (in *Input) JustPressed(k Key) bool {
	return in.pressed[k]
}

// JustReleased reports whether the key went up since the last Advance.
func (in *Input) JustReleased(k Key) bool {
	return in.released[k]
}

// AnyJustPressed reports whether any of the keys went down this step.
func (in *Input) AnyJustPressed(keys ...Key) bool {
	for _, k := range keys {
		if in.pressed[k] {
			return true
		}
	}
	return false
}

// AnyJustReleased reports whether any of the keys went up this step.
func (in *Input) AnyJustReleased(keys ...Key) bool {
	for _, k := range keys {
		if in.released[k] {
			return true
		}
	}
	return false
}

// AnyDown reports whether any of the keys is held.
func (in *Input) AnyDown(keys ...Key) bool {
	for _, k := range keys {
		if in.down[k] {
			return true
		}
	}
	return false
}

// Advance clears the just-pressed and just-released edges.
// Must run once per simulation step, after the step consumed them.
func (in *Input) Advance() {
	clear(in.pressed)
	clear(in.released)
}

// Reset drops all held keys and edges (focus loss, scene host restart).
func (in *Input) Reset() {
	clear(in.down)
	clear(in.pressed)
	clear(in.released)
	in.retryLatched = false
}
