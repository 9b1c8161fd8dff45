package config

import (
	_ "embed"
)

//go:embed defaults/slimejump.yaml
var defaultSlimeJumpYAML []byte

//go:embed defaults/runningman.yaml
var defaultRunningManYAML []byte

// DefaultSlimeJumpConfig returns the default Slime Jump configuration.
func DefaultSlimeJumpConfig() SlimeJumpConfig {
	return SlimeJumpConfig{
		Physics: SlimeJumpPhysics{
			Gravity:       980,
			JumpForce:     -550,
			MoveSpeed:     250,
			AutoRunFactor: 0.7,
		},
		Player: SlimeJumpPlayer{
			X:            50,
			Width:        30,
			Height:       40,
			GroundOffset: 50,
		},
		Level: SlimeJumpLevel{
			Width:               3000,
			AutoAdvanceDistance: 100,
			AutoMoveSpeed:       200,
		},
		Camera: SlimeJumpCamera{
			ScrollSpeed: 150,
			LeashMargin: 50,
		},
		Landing: LandingWindow{
			Above: 5,
			Below: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionTime,
				MaxAt: 60, // seconds
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultRunningManConfig returns the default Running Man configuration.
func DefaultRunningManConfig() RunningManConfig {
	return RunningManConfig{
		Bridge: RunningManBridge{
			Length: 200,
			Width:  5,
		},
		Player: RunningManPlayer{
			Speed:            5,
			InitialFollowers: 1,
		},
		Followers: RunningManFollowers{
			Count:         50,
			MinX:          -2,
			MaxX:          2,
			MinDistance:   10,
			MaxDistance:   170,
			CollectRadius: 1.0,
			TrailSpeed:    6,
			TrailGap:      0.5,
			Chances: Chances{
				Normal:   0.6,
				Plus:     0.15,
				Multiply: 0.15,
				Enemy:    0.1,
			},
		},
		Treasure: RunningManTreasure{
			Distance: 180,
			Value:    100,
		},
		Economy: RunningManEconomy{
			UpgradeCost: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionDistance,
				MaxAt: 170,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0,
				ChanceBoost:     0.2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a scene.
func GetDefaultYAML(sceneID string) []byte {
	switch sceneID {
	case "slime-jump":
		return defaultSlimeJumpYAML
	case "running-man":
		return defaultRunningManYAML
	default:
		return nil
	}
}
