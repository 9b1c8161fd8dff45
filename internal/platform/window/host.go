// Package window hosts the arcade in a desktop window (or a browser tab
// when built for wasm) with Ebitengine.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/treasure-arcade/internal/core"
	"github.com/vovakirdan/treasure-arcade/internal/engine"
)

// fontSize makes one Go Mono glyph about GlyphWidth wide.
const fontSize = 16

// Options configures the window host.
type Options struct {
	Title string
	Scale float64 // Window size multiplier; 0 means 1
}

// host adapts engine.Game to ebiten.Game. Update runs one engine frame
// into a draw list and Draw replays it.
type host struct {
	game     *engine.Game
	list     *core.DrawList
	face     text.Face
	touchIDs []ebiten.TouchID
}

var _ ebiten.Game = (*host)(nil)

func newHost(game *engine.Game) (*host, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: load font: %w", err)
	}
	cfg := game.Config()
	return &host{
		game: game,
		list: core.NewDrawList(cfg.Width, cfg.Height),
		face: &text.GoTextFace{Source: src, Size: fontSize},
	}, nil
}

func (h *host) Update() error {
	if h.game.Done() {
		return ebiten.Termination
	}

	h.touchIDs = pollInput(h.game.Input(), h.touchIDs)

	now := time.Now()
	h.game.Start(now)
	h.game.Frame(now, h.list)

	if h.game.Done() {
		return ebiten.Termination
	}
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	h.list.Replay(&imageSurface{img: screen, face: h.face})
}

// Layout keeps the logical surface at the configured size; Ebitengine
// scales it to the window.
func (h *host) Layout(int, int) (int, int) {
	cfg := h.game.Config()
	return cfg.Width, cfg.Height
}

// Run opens a window and hosts game until a scene quits or the window
// is closed.
func Run(game *engine.Game, opts Options) error {
	h, err := newHost(game)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	cfg := game.Config()
	ebiten.SetWindowSize(int(float64(cfg.Width)*scale), int(float64(cfg.Height)*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// The engine keeps its own fixed timestep
	ebiten.SetTPS(ebiten.SyncWithFPS)

	err = ebiten.RunGame(h)
	game.Stop()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
