package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treasure-arcade/internal/config"
	"github.com/vovakirdan/treasure-arcade/internal/core"
	"github.com/vovakirdan/treasure-arcade/internal/engine"
	"github.com/vovakirdan/treasure-arcade/internal/games/menu"
	"github.com/vovakirdan/treasure-arcade/internal/games/runningman"
	"github.com/vovakirdan/treasure-arcade/internal/games/slimejump"
	"github.com/vovakirdan/treasure-arcade/internal/platform/tui"
	"github.com/vovakirdan/treasure-arcade/internal/platform/window"
	"github.com/vovakirdan/treasure-arcade/internal/registry"
	"github.com/vovakirdan/treasure-arcade/internal/storage"
)

// Hosts
const (
	hostTUI    = "tui"
	hostWindow = "window"
)

var (
	flagHost       string
	flagConfig     string
	flagDifficulty string
	flagTouch      bool
	flagKeyHold    time.Duration
	flagScale      float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game, or the menu when none is given.

Controls:
  Left/Right     - Move
  Up/Space       - Jump (slime-jump), run forward with Up (running-man)
  R/Space        - Retry after the run ends
  Esc            - Back to the menu (quits from the menu)
  Q/Ctrl+C       - Quit (terminal)
  Mouse / touch  - Tap to jump or retry; BACK button with --touch

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression

Examples:
  arcade play
  arcade play slime-jump
  arcade play running-man --difficulty hard
  arcade play slime-jump --host window --touch
  arcade play slime-jump --config ./my-level.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagHost, "host", hostTUI, "Where to run: tui or window")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagTouch, "touch", false, "Touch controls: auto-run and on-screen BACK button")
	cmd.Flags().DurationVar(&flagKeyHold, "key-hold", tui.DefaultKeyHold, "How long a terminal key press counts as held")
	cmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier (window host)")
}

func runPlay(_ *cobra.Command, args []string) {
	sceneID := menu.ID
	if len(args) > 0 {
		sceneID = args[0]
	}

	if err := play(sceneID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(sceneID string) error {
	if !registry.Exists(sceneID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", sceneID)
	}
	if flagHost != hostTUI && flagHost != hostWindow {
		return fmt.Errorf("unknown host %q, use %s or %s", flagHost, hostTUI, hostWindow)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
	}

	// Set config path and difficulty for games before creation
	switch sceneID {
	case slimejump.ID:
		slimejump.SetConfigPath(flagConfig)
	case runningman.ID:
		runningman.SetConfigPath(flagConfig)
	}
	slimejump.SetDifficultyPreset(flagDifficulty)
	runningman.SetDifficultyPreset(flagDifficulty)

	logger, closer, err := newLogger(flagHost == hostTUI)
	if err != nil {
		return err
	}
	defer closer.Close()

	if flagConfig != "" && sceneID == menu.ID {
		logger.Warn("--config applies to a single game and is ignored from the menu", "config", flagConfig)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := surfaceSize()
	opts := engine.Options{
		Width:    width,
		Height:   height,
		TickRate: flagFPS,
		Seed:     seed,
		Touch:    flagTouch,
		Logger:   logger,
	}

	// Run history is best-effort
	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run history", "path", flagDBPath, "err", err)
		} else {
			defer store.Close()
			opts.Recorder = store
		}
	}

	game, err := engine.New(opts, core.NewInput())
	if err != nil {
		return err
	}
	if err := game.SetScene(sceneID); err != nil {
		return err
	}
	logger.Info("arcade started", "host", flagHost, "scene", sceneID, "seed", seed, "size", fmt.Sprintf("%dx%d", width, height))

	if flagHost == hostWindow {
		err = window.Run(game, window.Options{Title: "Treasure Arcade", Scale: flagScale})
	} else {
		err = tui.Run(game, tui.Options{FPS: flagFPS, KeyHold: flagKeyHold})
	}
	logger.Info("arcade stopped", "runs", len(game.Results()))
	return err
}

// surfaceSize returns the logical surface for the chosen host. The
// terminal surface is the terminal minus the help line, in glyph cells.
func surfaceSize() (int, int) {
	def := core.DefaultConfig()
	if flagHost == hostWindow {
		return def.Width, def.Height
	}

	cols, rows := def.Width/core.GlyphWidth, def.Height/core.GlyphHeight+1
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}
	return cols * core.GlyphWidth, max(rows-1, 1) * core.GlyphHeight
}
