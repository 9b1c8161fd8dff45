package core

import "time"

// RuntimeConfig contains configuration passed to scenes through the host.
// Width and Height are the logical pixel size of the render surface.
type RuntimeConfig struct {
	Width    int   // Surface width in logical pixels
	Height   int   // Surface height in logical pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Touch    bool  // Touch controls (auto-run, on-screen back button)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeGameOver Outcome = "game_over"
	OutcomeCleared  Outcome = "cleared"
)

// RunResult is reported by a scene once per finished run.
type RunResult struct {
	SceneID string
	Outcome Outcome
	Elapsed time.Duration // Simulated time from scene init to the end of the run
	Score   int
}
