package climb

import "time"

// StatusEffect is a flag with a countdown.
type StatusEffect struct {
	Active    bool
	Remaining time.Duration
	Duration  time.Duration // Length of the current activation, for display
}

// Activate turns the effect on for d. Re-activating restarts the countdown
// instead of adding to it.
func (s *StatusEffect) Activate(d time.Duration) {
	s.Active = true
	s.Remaining = d
	s.Duration = d
}

// Tick counts the effect down by dt and clears it once time runs out.
func (s *StatusEffect) Tick(dt time.Duration) {
	if s.Remaining <= 0 {
		return
	}
	s.Remaining -= dt
	if s.Remaining <= 0 {
		s.Active = false
	}
}

// Fraction returns the share of the activation that is left, in [0, 1].
func (s StatusEffect) Fraction() float64 {
	if !s.Active || s.Duration <= 0 || s.Remaining <= 0 {
		return 0
	}
	return float64(s.Remaining) / float64(s.Duration)
}

// Character is the goat. X, Y is the center of its body; up is -Y.
type Character struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	SuperJump  StatusEffect
	Invincible StatusEffect

	// Presentation only
	Rotation       float64
	TargetRotation float64
	Squash         float64
	Blink          int
}

// Bottom returns the y-coordinate of the goat's feet.
func (c *Character) Bottom() float64 {
	return c.Y + c.H/2
}
