package climb

import (
	"time"

	"github.com/vovakirdan/goat-climb/internal/core"
)

// squashThreshold is the vertical speed beyond which the goat is drawn
// stretched (rising) or squashed (falling).
const squashThreshold = 10

// PhysicsResult summarizes the collisions of one tick.
type PhysicsResult struct {
	Bounces   int           // Platform landings
	Broken    int           // Breaking platforms triggered
	Collected []PowerUpKind // Power-ups picked up, in list order
	EnemyHit  bool          // Unshielded enemy contact
}

// Physics moves the goat and resolves its collisions.
type Physics struct {
	rules *Rules
	rng   Rand
}

// NewPhysics creates the physics engine.
func NewPhysics(rules *Rules, rng Rand) *Physics {
	return &Physics{rules: rules, rng: rng}
}

// Step advances the goat by one tick of dt simulated time.
func (ph *Physics) Step(w *World, in core.InputFrame, dt time.Duration) PhysicsResult {
	c := &w.Character

	ph.steer(c, in)
	ph.move(c)
	ph.integrate(c)
	ph.animate(c)

	var res PhysicsResult
	ph.resolvePlatforms(w, &res)
	ph.resolveEnemies(w, &res)
	ph.resolvePowerUps(w, &res)

	c.SuperJump.Tick(dt)
	c.Invincible.Tick(dt)

	return res
}

// steer applies held keys. Left wins when both directions are held.
func (ph *Physics) steer(c *Character, in core.InputFrame) {
	cc := ph.rules.Config.Character
	switch {
	case in.Has(core.ActionLeft):
		c.VX = -cc.Speed
		c.TargetRotation = -cc.Lean
	case in.Has(core.ActionRight):
		c.VX = cc.Speed
		c.TargetRotation = cc.Lean
	default:
		c.VX *= cc.Damping
		c.TargetRotation = 0
	}
	c.Rotation = core.Approach(c.Rotation, c.TargetRotation, cc.Easing)
}

// move applies horizontal velocity and wraps around the playfield edges.
func (ph *Physics) move(c *Character) {
	width := ph.rules.Config.Viewport.Width
	c.X += c.VX

	half := c.W / 2
	if c.X < half {
		c.X = width - half
	} else if c.X > width-half {
		c.X = half
	}
}

// integrate applies gravity up to the terminal fall speed.
func (ph *Physics) integrate(c *Character) {
	cc := ph.rules.Config.Character
	c.VY += cc.Gravity
	if c.VY > cc.MaxFallSpeed {
		c.VY = cc.MaxFallSpeed
	}
	c.Y += c.VY
}

// animate updates squash and blink. None of it feeds back into motion.
func (ph *Physics) animate(c *Character) {
	cc := ph.rules.Config.Character
	switch {
	case c.VY < -squashThreshold:
		c.Squash = 1.2
	case c.VY > squashThreshold:
		c.Squash = 0.8
	default:
		c.Squash = core.Approach(c.Squash, 1, cc.Easing)
	}

	if ph.rng.Float64() < cc.BlinkChance {
		c.Blink = cc.BlinkTicks
	} else if c.Blink > 0 {
		c.Blink--
	}
}

// JumpVelocity returns the vertical velocity after landing on a platform
// with the given bounce multiplier.
func (ph *Physics) JumpVelocity(c *Character, bounce float64) float64 {
	cc := ph.rules.Config.Character
	jump := cc.JumpPower
	if c.SuperJump.Active {
		jump *= cc.SuperJumpFactor
	}
	return jump * bounce
}

func (ph *Physics) resolvePlatforms(w *World, res *PhysicsResult) {
	c := &w.Character
	for i := range w.Platforms {
		p := &w.Platforms[i]
		if !p.CheckCollision(c, w.Particles) {
			continue
		}
		c.VY = ph.JumpVelocity(c, p.Spec.Bounce)
		res.Bounces++
		if p.Broken {
			res.Broken++
		}
		if p.Kind == PlatformBouncy {
			w.Particles.Emit(p.X, p.Y, p.Spec.Color)
		}
	}
}

func (ph *Physics) resolveEnemies(w *World, res *PhysicsResult) {
	c := &w.Character
	if c.Invincible.Active {
		return
	}
	for i := range w.Enemies {
		if w.Enemies[i].CheckCollision(c) {
			res.EnemyHit = true
		}
	}
}

func (ph *Physics) resolvePowerUps(w *World, res *PhysicsResult) {
	c := &w.Character
	for i := range w.PowerUps {
		p := &w.PowerUps[i]
		if !p.CheckCollision(c) {
			continue
		}
		d := ph.rules.PowerUp(p.Kind).Duration
		switch p.Kind {
		case PowerUpSuperJump:
			c.SuperJump.Activate(d)
		case PowerUpInvincibility:
			c.Invincible.Activate(d)
		}
		res.Collected = append(res.Collected, p.Kind)
	}
}
