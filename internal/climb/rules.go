package climb

import (
	"time"

	"github.com/vovakirdan/goat-climb/internal/config"
	"github.com/vovakirdan/goat-climb/internal/core"
)

// PlatformKind enumerates platform variants.
type PlatformKind uint8

const (
	PlatformNormal PlatformKind = iota
	PlatformBouncy
	PlatformBreaking
	PlatformMoving
	platformKindCount
)

// String returns the name of the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformNormal:
		return "normal"
	case PlatformBouncy:
		return "bouncy"
	case PlatformBreaking:
		return "breaking"
	case PlatformMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// PlatformSpec is the fixed payload of a platform kind.
type PlatformSpec struct {
	Width       float64
	Height      float64
	Bounce      float64 // Multiplier on the jump impulse
	Weight      float64 // Relative spawn weight
	Breaks      bool
	Moves       bool
	MoveRange   float64
	MoveSpeed   float64
	LandingBand float64
	Color       core.Color
	Glyph       rune
}

// PowerUpKind enumerates power-up variants.
type PowerUpKind uint8

const (
	PowerUpSuperJump PowerUpKind = iota
	PowerUpInvincibility
	powerUpKindCount
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSuperJump:
		return "super-jump"
	case PowerUpInvincibility:
		return "invincibility"
	default:
		return "unknown"
	}
}

// PowerUpSpec is the fixed payload of a power-up kind.
type PowerUpSpec struct {
	Duration time.Duration
	Weight   float64
	Color    core.Color
	Glyph    rune
}

// Rules is the immutable view of a configuration the simulation runs with.
// Kind payloads are stored in arrays indexed by kind, so every kind has one.
type Rules struct {
	Config    config.ClimbConfig
	platforms [platformKindCount]PlatformSpec
	powerUps  [powerUpKindCount]PowerUpSpec
}

// NewRules derives kind payloads from cfg.
func NewRules(cfg config.ClimbConfig) *Rules {
	pc := cfg.Platforms
	base := PlatformSpec{
		Width:       pc.Width,
		Height:      pc.Height,
		MoveRange:   pc.MoveRange,
		MoveSpeed:   pc.MoveSpeed,
		LandingBand: pc.LandingBand,
	}

	r := &Rules{Config: cfg}

	r.platforms[PlatformNormal] = base
	r.platforms[PlatformNormal].Bounce = pc.Normal.Bounce
	r.platforms[PlatformNormal].Weight = pc.Normal.Weight
	r.platforms[PlatformNormal].Color = core.ColorBrown
	r.platforms[PlatformNormal].Glyph = '▬'

	r.platforms[PlatformBouncy] = base
	r.platforms[PlatformBouncy].Bounce = pc.Bouncy.Bounce
	r.platforms[PlatformBouncy].Weight = pc.Bouncy.Weight
	r.platforms[PlatformBouncy].Color = core.ColorBrightGreen
	r.platforms[PlatformBouncy].Glyph = '≋'

	r.platforms[PlatformBreaking] = base
	r.platforms[PlatformBreaking].Bounce = pc.Breaking.Bounce
	r.platforms[PlatformBreaking].Weight = pc.Breaking.Weight
	r.platforms[PlatformBreaking].Breaks = true
	r.platforms[PlatformBreaking].Color = core.ColorBrightRed
	r.platforms[PlatformBreaking].Glyph = '╍'

	r.platforms[PlatformMoving] = base
	r.platforms[PlatformMoving].Bounce = pc.Moving.Bounce
	r.platforms[PlatformMoving].Weight = pc.Moving.Weight
	r.platforms[PlatformMoving].Moves = true
	r.platforms[PlatformMoving].Color = core.ColorGold
	r.platforms[PlatformMoving].Glyph = '═'

	r.powerUps[PowerUpSuperJump] = PowerUpSpec{
		Duration: cfg.PowerUps.SuperJump.Duration,
		Weight:   cfg.PowerUps.SuperJump.Weight,
		Color:    core.ColorBrightMagenta,
		Glyph:    '↑',
	}
	r.powerUps[PowerUpInvincibility] = PowerUpSpec{
		Duration: cfg.PowerUps.Invincibility.Duration,
		Weight:   cfg.PowerUps.Invincibility.Weight,
		Color:    core.ColorBrightCyan,
		Glyph:    '◆',
	}

	return r
}

// Platform returns the payload of a platform kind.
func (r *Rules) Platform(k PlatformKind) PlatformSpec {
	if k >= platformKindCount {
		k = PlatformNormal
	}
	return r.platforms[k]
}

// PowerUp returns the payload of a power-up kind.
func (r *Rules) PowerUp(k PowerUpKind) PowerUpSpec {
	if k >= powerUpKindCount {
		k = PowerUpSuperJump
	}
	return r.powerUps[k]
}
