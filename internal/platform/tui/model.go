package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treasure-arcade/internal/core"
	"github.com/vovakirdan/treasure-arcade/internal/engine"
)

// Options configures the terminal host.
type Options struct {
	FPS     int           // Frame callbacks per second; 0 uses the game's tick rate
	KeyHold time.Duration // See KeyLatch; 0 uses DefaultKeyHold
}

// Model is the Bubble Tea model hosting an engine.Game. Every tick is
// one engine frame; the resulting screen is what View shows.
type Model struct {
	game     *engine.Game
	screen   *core.Screen
	surface  *CellSurface
	keys     KeyMap
	latch    *KeyLatch
	help     help.Model
	fps      int
	now      func() time.Time
	quitting bool
}

// NewModel creates a model for game. The screen starts at the game's
// configured size.
func NewModel(game *engine.Game, opts Options) Model {
	cfg := game.Config()
	fps := opts.FPS
	if fps <= 0 {
		fps = cfg.TickRate
	}

	screen := core.NewScreen(cfg.Width/core.GlyphWidth, cfg.Height/core.GlyphHeight)
	return Model{
		game:    game,
		screen:  screen,
		surface: NewCellSurface(screen),
		keys:    DefaultKeyMap(),
		latch:   NewKeyLatch(opts.KeyHold),
		help:    help.New(),
		fps:     fps,
		now:     time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Quit()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	if k, ok := m.keys.Lookup(msg); ok {
		m.latch.Press(m.game.Input(), k, m.now())
	}
	return m, nil
}

// handleMouse maps the left button to touch.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	in := m.game.Input()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			in.TouchStart(CellCenter(msg.X, msg.Y))
		}
	case tea.MouseActionMotion:
		in.TouchMove(CellCenter(msg.X, msg.Y))
	case tea.MouseActionRelease:
		in.TouchEnd()
	}
	return m, nil
}

// handleResize keeps the last row for the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := max(msg.Height-1, 1)
	m.screen.Resize(msg.Width, rows)
	m.game.Resize(m.surface.Width(), m.surface.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one engine frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.game.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	m.latch.Expire(m.game.Input(), now)
	m.game.Start(now)
	m.game.Frame(now, m.surface)

	if m.game.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	id := "arcade"
	if s := m.game.Scene(); s != nil {
		id = s.ID()
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", id, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the last frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen, m.surface.Background()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run hosts game in the terminal until a scene quits or the user presses q.
func Run(game *engine.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	game.Stop()
	return err
}
