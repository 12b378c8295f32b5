// Package config provides YAML-based game configuration loading and
// difficulty management for Goat Climb.
package config

import "time"

// ClimbConfig contains all tunables of the simulation. Distances are in
// world units (the playfield is Viewport.Width by Viewport.Height), speeds in
// units per tick.
type ClimbConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Character  CharacterConfig  `yaml:"character"`
	Platforms  PlatformsConfig  `yaml:"platforms"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Particles  ParticlesConfig  `yaml:"particles"`
	World      WorldConfig      `yaml:"world"`
	Camera     CameraConfig     `yaml:"camera"`
	Score      ScoreConfig      `yaml:"score"`
	Timing     TimingConfig     `yaml:"timing"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig is the visible playfield size.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CharacterConfig defines the goat's body and motion.
type CharacterConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	JumpPower       float64 `yaml:"jump_power"` // Negative = up
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	Damping         float64 `yaml:"damping"`           // Horizontal decay factor per tick without input
	Lean            float64 `yaml:"lean"`              // Target rotation while steering (radians)
	Easing          float64 `yaml:"easing"`            // Fraction of the gap closed per tick for lean and squash
	SuperJumpFactor float64 `yaml:"super_jump_factor"` // Jump scalar while super jump is active
	StartOffset     float64 `yaml:"start_offset"`      // Start height above the viewport bottom
	BlinkChance     float64 `yaml:"blink_chance"`
	BlinkTicks      int     `yaml:"blink_ticks"`
}

// PlatformsConfig defines platform geometry and per-kind behavior.
type PlatformsConfig struct {
	Width       float64            `yaml:"width"`
	Height      float64            `yaml:"height"`
	LandingBand float64            `yaml:"landing_band"` // Extra depth below the top surface that still counts as landing
	MoveRange   float64            `yaml:"move_range"`
	MoveSpeed   float64            `yaml:"move_speed"`
	Normal      PlatformKindConfig `yaml:"normal"`
	Bouncy      PlatformKindConfig `yaml:"bouncy"`
	Breaking    PlatformKindConfig `yaml:"breaking"`
	Moving      PlatformKindConfig `yaml:"moving"`
}

// PlatformKindConfig holds the tunables of one platform kind.
type PlatformKindConfig struct {
	Bounce float64 `yaml:"bounce"` // Multiplier on the jump impulse
	Weight float64 `yaml:"weight"` // Relative spawn weight
}

// EnemiesConfig defines enemy geometry, motion and spawning.
type EnemiesConfig struct {
	Width       float64 `yaml:"width"`
	Amplitude   float64 `yaml:"amplitude"`
	PhaseStep   float64 `yaml:"phase_step"`
	SpawnChance float64 `yaml:"spawn_chance"` // Per generated platform
	SpawnOffset float64 `yaml:"spawn_offset"` // Height above the platform
}

// PowerUpsConfig defines power-up geometry, spawning and effects.
type PowerUpsConfig struct {
	Width         float64           `yaml:"width"`
	FloatStep     float64           `yaml:"float_step"`
	SpawnChance   float64           `yaml:"spawn_chance"`
	SpawnOffset   float64           `yaml:"spawn_offset"`
	SuperJump     PowerUpKindConfig `yaml:"super_jump"`
	Invincibility PowerUpKindConfig `yaml:"invincibility"`
}

// PowerUpKindConfig holds the tunables of one power-up kind.
type PowerUpKindConfig struct {
	Duration time.Duration `yaml:"duration"`
	Weight   float64       `yaml:"weight"`
}

// ParticlesConfig defines the burst emitted on breakage and bouncy contact.
type ParticlesConfig struct {
	Count   int     `yaml:"count"`
	Speed   float64 `yaml:"speed"`
	Gravity float64 `yaml:"gravity"`
	Life    int     `yaml:"life"`
}

// WorldConfig defines procedural generation and pruning.
type WorldConfig struct {
	InitialPlatforms int     `yaml:"initial_platforms"`
	SafePlatforms    int     `yaml:"safe_platforms"` // Leading platforms forced to Normal
	Spacing          float64 `yaml:"spacing"`
	BatchSize        int     `yaml:"batch_size"`
	Lookahead        float64 `yaml:"lookahead"`
	PruneMargin      float64 `yaml:"prune_margin"`
	FallMargin       float64 `yaml:"fall_margin"`
	MarginX          float64 `yaml:"margin_x"`       // Platform placement margin
	SpawnMarginX     float64 `yaml:"spawn_margin_x"` // Enemy and power-up placement margin
	BaseOffset       float64 `yaml:"base_offset"`    // Starting platform height above the viewport bottom
}

// CameraConfig defines how far the camera trails the climbing goat.
type CameraConfig struct {
	Lead float64 `yaml:"lead"`
}

// ScoreConfig maps height to points.
type ScoreConfig struct {
	BaselineOffset float64 `yaml:"baseline_offset"`
	UnitsPerPoint  float64 `yaml:"units_per_point"`
}

// TimingConfig defines how status timers advance.
type TimingConfig struct {
	Clock        string        `yaml:"clock"`         // "fixed" or "wall"
	TickDuration time.Duration `yaml:"tick_duration"` // Step of the fixed clock
	MaxElapsed   time.Duration `yaml:"max_elapsed"`   // Upper bound for one wall clock step
}

// InputConfig defines held-key emulation. Hold should outlast the terminal's
// key-repeat delay, or a held key flickers between steering and coasting.
type InputConfig struct {
	Hold time.Duration `yaml:"hold"`
}

// HoldTicks converts Hold to ticks at the given tick rate, rounding up.
// A rate of 0 or less means 60 ticks per second.
func (c InputConfig) HoldTicks(rate int) int {
	if rate <= 0 {
		rate = 60
	}
	ticks := (c.Hold*time.Duration(rate) + time.Second - 1) / time.Second
	return max(1, int(ticks))
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemyMultiplier  float64 `yaml:"enemy_multiplier"`  // Added to the enemy chance factor at max difficulty
	PowerUpReduction float64 `yaml:"powerup_reduction"` // Fraction of power-up chance removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
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
