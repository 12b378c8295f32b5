package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/climb.yaml
var defaultClimbYAML []byte

// DefaultClimbConfig returns the built-in configuration. It mirrors
// defaults/climb.yaml and is used when the embedded file cannot be parsed.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		Viewport: ViewportConfig{
			Width:  600,
			Height: 700,
		},
		Character: CharacterConfig{
			Width:           45,
			Height:          45,
			Speed:           6,
			JumpPower:       -11,
			Gravity:         0.3,
			MaxFallSpeed:    10,
			Damping:         0.8,
			Lean:            0.2,
			Easing:          0.1,
			SuperJumpFactor: 1.5,
			StartOffset:     150,
			BlinkChance:     0.01,
			BlinkTicks:      10,
		},
		Platforms: PlatformsConfig{
			Width:       85,
			Height:      18,
			LandingBand: 10,
			MoveRange:   50,
			MoveSpeed:   1,
			Normal:      PlatformKindConfig{Bounce: 1, Weight: 0.6},
			Bouncy:      PlatformKindConfig{Bounce: 1.5, Weight: 0.16},
			Breaking:    PlatformKindConfig{Bounce: 1, Weight: 0.12},
			Moving:      PlatformKindConfig{Bounce: 1, Weight: 0.12},
		},
		Enemies: EnemiesConfig{
			Width:       30,
			Amplitude:   30,
			PhaseStep:   0.05,
			SpawnChance: 0.1,
			SpawnOffset: 40,
		},
		PowerUps: PowerUpsConfig{
			Width:         30,
			FloatStep:     0.1,
			SpawnChance:   0.05,
			SpawnOffset:   40,
			SuperJump:     PowerUpKindConfig{Duration: 3 * time.Second, Weight: 0.5},
			Invincibility: PowerUpKindConfig{Duration: 5 * time.Second, Weight: 0.5},
		},
		Particles: ParticlesConfig{
			Count:   10,
			Speed:   5,
			Gravity: 0.2,
			Life:    30,
		},
		World: WorldConfig{
			InitialPlatforms: 24,
			SafePlatforms:    3,
			Spacing:          45,
			BatchSize:        4,
			Lookahead:        300,
			PruneMargin:      100,
			FallMargin:       50,
			MarginX:          75,
			SpawnMarginX:     25,
			BaseOffset:       100,
		},
		Camera: CameraConfig{Lead: 200},
		Score: ScoreConfig{
			BaselineOffset: 150,
			UnitsPerPoint:  10,
		},
		Timing: TimingConfig{
			Clock:        "fixed",
			TickDuration: 16 * time.Millisecond,
			MaxElapsed:   100 * time.Millisecond,
		},
		Input: InputConfig{Hold: 500 * time.Millisecond},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				EnemyMultiplier:  1.5,
				PowerUpReduction: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultClimbYAML
}
