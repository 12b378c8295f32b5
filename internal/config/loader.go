package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// ErrEmptyConfig is returned for a file without any YAML content. Editors
// truncate before writing, so a reload may briefly see an empty file.
var ErrEmptyConfig = errors.New("empty config")

// FileName is the configuration file name looked up in the search paths.
const FileName = "climb.yaml"

// LoadClimb loads the game configuration.
// Search order: customPath -> ~/.goatclimb/configs/climb.yaml -> ./configs/climb.yaml -> embedded default
//
// Only a failing customPath is reported as an error; broken files found on
// the search path are skipped.
func LoadClimb(customPath string) (ClimbConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultClimbConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultClimbYAML)
	if err != nil {
		return DefaultClimbConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Resolve returns the file LoadClimb would read for customPath, or "" when
// the embedded default would be used.
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override the keys they mention, and validates the result. A document
// with no content is rejected with ErrEmptyConfig.
func Parse(data []byte) (ClimbConfig, error) {
	cfg := DefaultClimbConfig()
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if len(doc.Content) == 0 {
		return cfg, ErrEmptyConfig
	}
	if err := doc.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (ClimbConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ClimbConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".goatclimb", "configs", filename)
}

// Validate rejects values the simulation cannot run with.
func (c ClimbConfig) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport must be positive", ErrInvalidConfig)
	case c.Character.Width <= 0 || c.Character.Height <= 0:
		return fmt.Errorf("%w: character size must be positive", ErrInvalidConfig)
	case c.Character.Width >= c.Viewport.Width:
		return fmt.Errorf("%w: character wider than viewport", ErrInvalidConfig)
	case c.Character.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: max_fall_speed must be positive", ErrInvalidConfig)
	case c.Character.Gravity < 0:
		return fmt.Errorf("%w: gravity must not be negative", ErrInvalidConfig)
	case c.Character.JumpPower >= 0:
		return fmt.Errorf("%w: jump_power must be negative (up)", ErrInvalidConfig)
	case c.Platforms.Width <= 0 || c.Platforms.Height <= 0:
		return fmt.Errorf("%w: platform size must be positive", ErrInvalidConfig)
	case c.Platforms.Normal.Weight+c.Platforms.Bouncy.Weight+c.Platforms.Breaking.Weight+c.Platforms.Moving.Weight <= 0:
		return fmt.Errorf("%w: platform weights must sum to a positive value", ErrInvalidConfig)
	case c.Platforms.Normal.Weight < 0 || c.Platforms.Bouncy.Weight < 0 || c.Platforms.Breaking.Weight < 0 || c.Platforms.Moving.Weight < 0:
		return fmt.Errorf("%w: platform weights must not be negative", ErrInvalidConfig)
	case c.PowerUps.SuperJump.Duration <= 0 || c.PowerUps.Invincibility.Duration <= 0:
		return fmt.Errorf("%w: power-up durations must be positive", ErrInvalidConfig)
	case !isChance(c.Enemies.SpawnChance) || !isChance(c.PowerUps.SpawnChance):
		return fmt.Errorf("%w: spawn chances must be within [0, 1]", ErrInvalidConfig)
	case c.World.Spacing <= 0 || c.World.BatchSize < 1:
		return fmt.Errorf("%w: world spacing and batch size must be positive", ErrInvalidConfig)
	case 2*c.World.MarginX >= c.Viewport.Width || 2*c.World.SpawnMarginX >= c.Viewport.Width:
		return fmt.Errorf("%w: placement margins leave no room", ErrInvalidConfig)
	case c.Score.UnitsPerPoint <= 0:
		return fmt.Errorf("%w: units_per_point must be positive", ErrInvalidConfig)
	case c.Timing.TickDuration <= 0:
		return fmt.Errorf("%w: tick_duration must be positive", ErrInvalidConfig)
	case c.Timing.Clock != "fixed" && c.Timing.Clock != "wall":
		return fmt.Errorf("%w: clock must be \"fixed\" or \"wall\", got %q", ErrInvalidConfig, c.Timing.Clock)
	case c.Input.Hold <= 0:
		return fmt.Errorf("%w: input hold must be positive", ErrInvalidConfig)
	}
	return nil
}

func isChance(p float64) bool {
	return p >= 0 && p <= 1
}

// ApplyClimbPreset modifies the config based on a difficulty preset.
func ApplyClimbPreset(cfg *ClimbConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
