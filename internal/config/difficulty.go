package config

import "math"

// DifficultyManager calculates dynamic game parameters from run progress.
// Progress is whatever the progression type measures: elapsed seconds for
// "time", distance travelled for "distance".
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(progress float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	switch d.cfg.Progression.Type {
	case ProgressionTime, ProgressionDistance:
	default:
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	p := clampF(progress/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + p*(1.0-d.initialLevel)
}

// Speed returns baseSpeed scaled by the current level.
// Speed increases from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) Speed(baseSpeed, progress float64) float64 {
	return baseSpeed * (1.0 + d.Level(progress)*d.cfg.Scaling.SpeedMultiplier)
}

// Chance returns a hazard probability raised by the current level,
// clamped to [0, 1].
func (d *DifficultyManager) Chance(base, progress float64) float64 {
	return clampF(base+d.Level(progress)*d.cfg.Scaling.ChanceBoost, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
