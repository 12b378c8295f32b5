package climb

import (
	"math"

	"github.com/vovakirdan/goat-climb/internal/core"
)

// Platform is a ledge the goat bounces off. X is the horizontal center,
// Y the top surface.
type Platform struct {
	Kind    PlatformKind
	X, Y    float64
	Broken  bool    // Breaking kind only, never reverts
	VX      float64 // Moving kind only
	OriginX float64
	Spec    PlatformSpec
}

// NewPlatform creates a platform of the given kind. vx is only used by
// kinds that move.
func NewPlatform(spec PlatformSpec, kind PlatformKind, x, y, vx float64) Platform {
	p := Platform{
		Kind:    kind,
		X:       x,
		Y:       y,
		OriginX: x,
		Spec:    spec,
	}
	if spec.Moves {
		p.VX = vx
	}
	return p
}

// Update oscillates moving platforms around their origin.
func (p *Platform) Update() {
	if !p.Spec.Moves || p.Broken {
		return
	}
	p.X += p.VX
	if math.Abs(p.X-p.OriginX) > p.Spec.MoveRange {
		p.VX = -p.VX
	}
}

// CheckCollision reports whether the falling character lands on the
// platform this tick. A breaking platform breaks on its first landing and
// bursts into particles. The caller applies the bounce.
func (p *Platform) CheckCollision(c *Character, particles *ParticlePool) bool {
	if p.Broken {
		return false
	}
	if c.VY <= 0 {
		return false
	}

	halfW := p.Spec.Width / 2
	if c.X <= p.X-halfW || c.X >= p.X+halfW {
		return false
	}

	feet := c.Bottom()
	if feet <= p.Y || feet >= p.Y+p.Spec.Height+p.Spec.LandingBand {
		return false
	}

	if p.Spec.Breaks {
		p.Broken = true
		if particles != nil {
			particles.Emit(p.X, p.Y, p.Spec.Color)
		}
	}
	return true
}

// Enemy sways horizontally around its origin and is lethal on contact.
type Enemy struct {
	X, Y      float64
	Width     float64
	OriginX   float64
	Phase     float64
	Amplitude float64
	PhaseStep float64
}

// Update advances the sway.
func (e *Enemy) Update() {
	e.Phase += e.PhaseStep
	e.X = e.OriginX + math.Sin(e.Phase)*e.Amplitude
}

// CheckCollision tests the distance between centers against the sum of
// half widths.
func (e *Enemy) CheckCollision(c *Character) bool {
	return core.Distance(e.X, e.Y, c.X, c.Y) < e.Width/2+c.W/2
}

// PowerUp grants a timed status effect when touched.
type PowerUp struct {
	Kind      PowerUpKind
	X, Y      float64
	Width     float64
	Collected bool // Never reverts
	Float     float64
	FloatStep float64
	Spec      PowerUpSpec
}

// Update advances the hover animation.
func (p *PowerUp) Update() {
	p.Float += p.FloatStep
}

// CheckCollision returns true exactly once, on the tick the power-up is
// collected.
func (p *PowerUp) CheckCollision(c *Character) bool {
	if p.Collected {
		return false
	}
	if core.Distance(p.X, p.Y, c.X, c.Y) < p.Width/2+c.W/2 {
		p.Collected = true
		return true
	}
	return false
}
