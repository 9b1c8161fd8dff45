// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade scenes.
package config

// SlimeJumpConfig contains all configuration for the Slime Jump platformer.
type SlimeJumpConfig struct {
	Physics    SlimeJumpPhysics `yaml:"physics"`
	Player     SlimeJumpPlayer  `yaml:"player"`
	Level      SlimeJumpLevel   `yaml:"level"`
	Camera     SlimeJumpCamera  `yaml:"camera"`
	Landing    LandingWindow    `yaml:"landing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SlimeJumpPhysics defines player physics. Units are px and px/s.
type SlimeJumpPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpForce     float64 `yaml:"jump_force"` // Negative is up
	MoveSpeed     float64 `yaml:"move_speed"`
	AutoRunFactor float64 `yaml:"auto_run_factor"` // Fraction of move_speed used by touch auto-run
}

// SlimeJumpPlayer defines the player body and spawn point.
type SlimeJumpPlayer struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Baseline distance from the surface bottom
}

// SlimeJumpLevel defines the scrolling level extent.
type SlimeJumpLevel struct {
	Width               float64 `yaml:"width"`
	AutoAdvanceDistance float64 `yaml:"auto_advance_distance"`
	AutoMoveSpeed       float64 `yaml:"auto_move_speed"`
}

// SlimeJumpCamera defines the auto-scrolling camera.
type SlimeJumpCamera struct {
	ScrollSpeed float64 `yaml:"scroll_speed"`
	LeashMargin float64 `yaml:"leash_margin"`
}

// LandingWindow is the vertical band around a platform top in which a
// falling player snaps onto it.
type LandingWindow struct {
	Above float64 `yaml:"above"`
	Below float64 `yaml:"below"`
}

// RunningManConfig contains all configuration for the Running Man runner.
type RunningManConfig struct {
	Bridge     RunningManBridge    `yaml:"bridge"`
	Player     RunningManPlayer    `yaml:"player"`
	Followers  RunningManFollowers `yaml:"followers"`
	Treasure   RunningManTreasure  `yaml:"treasure"`
	Economy    RunningManEconomy   `yaml:"economy"`
	Difficulty DifficultyConfig    `yaml:"difficulty"`
}

// RunningManBridge defines the walkable area in world units.
type RunningManBridge struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
}

// RunningManPlayer defines player movement.
type RunningManPlayer struct {
	Speed            float64 `yaml:"speed"`
	InitialFollowers int     `yaml:"initial_followers"`
}

// RunningManFollowers defines follower placement and behaviour.
type RunningManFollowers struct {
	Count         int     `yaml:"count"`
	MinX          float64 `yaml:"min_x"`
	MaxX          float64 `yaml:"max_x"`
	MinDistance   float64 `yaml:"min_distance"`
	MaxDistance   float64 `yaml:"max_distance"`
	CollectRadius float64 `yaml:"collect_radius"`
	TrailSpeed    float64 `yaml:"trail_speed"`
	TrailGap      float64 `yaml:"trail_gap"`
	Chances       Chances `yaml:"chances"`
}

// Chances are the base spawn weights of each follower kind.
type Chances struct {
	Normal   float64 `yaml:"normal"`
	Plus     float64 `yaml:"plus"`
	Multiply float64 `yaml:"multiply"`
	Enemy    float64 `yaml:"enemy"`
}

// RunningManTreasure defines the goal at the end of the bridge.
type RunningManTreasure struct {
	Distance float64 `yaml:"distance"`
	Value    int     `yaml:"value"`
}

// RunningManEconomy defines the between-run upgrade.
type RunningManEconomy struct {
	UpgradeCost int `yaml:"upgrade_cost"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "time", "distance", or "none"
	MaxAt float64 `yaml:"max_at"` // Seconds or distance at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
	ChanceBoost     float64 `yaml:"chance_boost"`     // Added to a hazard chance at max difficulty
}

// Progression types.
const (
	ProgressionTime     = "time"
	ProgressionDistance = "distance"
	ProgressionNone     = "none"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// applyPreset updates a difficulty block. An empty preset leaves it alone.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		d.Enabled = false
		d.InitialLevel = 0
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
