package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/treasure-arcade/internal/core"
	"github.com/vovakirdan/treasure-arcade/internal/registry"
)

type stubScene struct{ id string }

func (s *stubScene) ID() string               { return s.id }
func (s *stubScene) Title() string            { return "Stub " + s.id }
func (s *stubScene) Description() string      { return "stub" }
func (s *stubScene) Init(registry.Host) error { return nil }
func (s *stubScene) Update(float64)           {}
func (s *stubScene) Render(core.Surface)      {}

func init() {
	registry.Register("menu-test-b", func() registry.Scene { return &stubScene{id: "menu-test-b"} })
	registry.Register("menu-test-a", func() registry.Scene { return &stubScene{id: "menu-test-a"} })
}

type fakeHost struct {
	cfg      core.RuntimeConfig
	in       *core.Input
	switches []string
	quit     bool
}

func newFakeHost(touch bool) *fakeHost {
	cfg := core.DefaultConfig()
	cfg.Touch = touch
	return &fakeHost{cfg: cfg, in: core.NewInput()}
}

func (h *fakeHost) Config() core.RuntimeConfig { return h.cfg }
func (h *fakeHost) Input() *core.Input         { return h.in }
func (h *fakeHost) Report(core.RunResult)      {}
func (h *fakeHost) Quit()                      { h.quit = true }

func (h *fakeHost) SwitchScene(id string) error {
	h.switches = append(h.switches, id)
	return nil
}

func startMenu(t *testing.T, h *fakeHost) *Scene {
	t.Helper()
	s := New()
	require.NoError(t, s.Init(h))
	return s
}

func tap(s *Scene, h *fakeHost, k core.Key) {
	h.in.Press(k)
	s.Update(1.0 / 60)
	h.in.Release(k)
	s.Update(1.0 / 60)
}

func TestMenuListsOtherScenesSorted(t *testing.T) {
	s := startMenu(t, newFakeHost(false))

	ids := []string{}
	for _, o := range s.Options() {
		ids = append(ids, o.ID)
	}
	assert.NotContains(t, ids, ID)
	assert.Equal(t, []string{"menu-test-a", "menu-test-b"}, ids)
	assert.Equal(t, "Stub menu-test-a", s.Options()[0].Title)
}

func TestMenuCursorStaysInBounds(t *testing.T) {
	h := newFakeHost(false)
	s := startMenu(t, h)

	tap(s, h, core.KeyUp)
	assert.Equal(t, 0, s.Cursor())

	tap(s, h, core.KeyDown)
	assert.Equal(t, 1, s.Cursor())
	tap(s, h, core.KeyDown)
	assert.Equal(t, 1, s.Cursor())

	tap(s, h, core.KeyUp)
	assert.Equal(t, 0, s.Cursor())
}

func TestMenuHeldKeyMovesOnce(t *testing.T) {
	h := newFakeHost(false)
	s := startMenu(t, h)

	h.in.Press(core.KeyDown)
	for i := 0; i < 10; i++ {
		s.Update(1.0 / 60)
	}
	assert.Equal(t, 1, s.Cursor())
}

func TestMenuStartsSelectedScene(t *testing.T) {
	for _, k := range []core.Key{core.KeySpace, core.KeyEnter, core.KeyTouchJump} {
		h := newFakeHost(false)
		s := startMenu(t, h)

		tap(s, h, core.KeyDown)
		tap(s, h, k)
		assert.Equal(t, []string{"menu-test-b"}, h.switches, "key %s", k)
	}
}

func TestMenuTouchPicksRow(t *testing.T) {
	h := newFakeHost(true)
	s := startMenu(t, h)

	r := s.rowRect(1)
	cx, cy := r.Center()
	h.in.TouchStart(cx, cy)
	s.Update(1.0 / 60)
	h.in.TouchEnd()
	s.Update(1.0 / 60)

	assert.Equal(t, 1, s.Cursor())
	assert.Equal(t, []string{"menu-test-b"}, h.switches)
}

func TestMenuEscapeQuits(t *testing.T) {
	h := newFakeHost(false)
	s := startMenu(t, h)

	tap(s, h, core.KeyEscape)
	assert.True(t, h.quit)
	assert.Empty(t, h.switches)
}

func TestMenuRender(t *testing.T) {
	h := newFakeHost(false)
	s := startMenu(t, h)

	dl := core.NewDrawList(h.cfg.Width, h.cfg.Height)
	s.Render(dl)

	ops := dl.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, core.OpClear, ops[0].Kind)

	texts := []string{}
	for _, op := range ops {
		if op.Kind == core.OpText {
			texts = append(texts, op.Text)
		}
	}
	assert.Contains(t, texts, "TREASURE ARCADE")
	assert.Contains(t, texts, "Stub menu-test-a")
	assert.Contains(t, texts, "Stub menu-test-b")
}
