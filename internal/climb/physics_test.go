package climb

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/goat-climb/internal/config"
	"github.com/vovakirdan/goat-climb/internal/core"
)

func TestJumpVelocity(t *testing.T) {
	rules, w, ph := newTestWorld(t)

	tests := []struct {
		name      string
		kind      PlatformKind
		superJump bool
		want      float64
	}{
		{"normal", PlatformNormal, false, -11},
		{"normal super jump", PlatformNormal, true, -16.5},
		{"bouncy", PlatformBouncy, false, -16.5},
		{"bouncy super jump", PlatformBouncy, true, -24.75},
		{"breaking", PlatformBreaking, false, -11},
		{"moving", PlatformMoving, false, -11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := w.Character
			if tt.superJump {
				c.SuperJump.Activate(rules.PowerUp(PowerUpSuperJump).Duration)
			}
			got := ph.JumpVelocity(&c, rules.Platform(tt.kind).Bounce)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("JumpVelocity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBouncyOutjumpsNormal(t *testing.T) {
	rules, w, ph := newTestWorld(t)

	for _, super := range []bool{false, true} {
		c := w.Character
		if super {
			c.SuperJump.Activate(rules.PowerUp(PowerUpSuperJump).Duration)
		}
		normal := ph.JumpVelocity(&c, rules.Platform(PlatformNormal).Bounce)
		bouncy := ph.JumpVelocity(&c, rules.Platform(PlatformBouncy).Bounce)
		if bouncy >= normal {
			t.Errorf("superJump=%v: bouncy %v should be more negative than normal %v", super, bouncy, normal)
		}
	}
}

func TestLandingOnNormalPlatform(t *testing.T) {
	rules, w, ph := newTestWorld(t)
	p := NewPlatform(rules.Platform(PlatformNormal), PlatformNormal, 300, 600, 0)
	w.Platforms = append(w.Platforms, p)
	placeAbove(rules, &w.Character, p)

	res := ph.Step(w, core.NewInputFrame(), testTick)

	if res.Bounces != 1 {
		t.Fatalf("Bounces = %d, want 1", res.Bounces)
	}
	if w.Character.VY != -11 {
		t.Errorf("VY = %v, want -11", w.Character.VY)
	}
	if w.Particles.Len() != 0 {
		t.Errorf("normal platform emitted %d particles", w.Particles.Len())
	}
}

func TestLandingWithSuperJump(t *testing.T) {
	rules, w, ph := newTestWorld(t)
	p := NewPlatform(rules.Platform(PlatformNormal), PlatformNormal, 300, 600, 0)
	w.Platforms = append(w.Platforms, p)
	placeAbove(rules, &w.Character, p)
	w.Character.SuperJump.Activate(rules.PowerUp(PowerUpSuperJump).Duration)

	ph.Step(w, core.NewInputFrame(), testTick)

	if w.Character.VY != -16.5 {
		t.Errorf("VY = %v, want -16.5", w.Character.VY)
	}
}

func TestRisingGoatPassesThroughPlatform(t *testing.T) {
	rules, w, ph := newTestWorld(t)
	p := NewPlatform(rules.Platform(PlatformNormal), PlatformNormal, 300, 600, 0)
	w.Platforms = append(w.Platforms, p)
	placeAbove(rules, &w.Character, p)
	w.Character.VY = -5

	res := ph.Step(w, core.NewInputFrame(), testTick)

	if res.Bounces != 0 {
		t.Errorf("rising goat bounced %d times", res.Bounces)
	}
}

func TestBouncyPlatformEmitsParticles(t *testing.T) {
	rules, w, ph := newTestWorld(t)
	p := NewPlatform(rules.Platform(PlatformBouncy), PlatformBouncy, 300, 600, 0)
	w.Platforms = append(w.Platforms, p)
	placeAbove(rules, &w.Character, p)

	ph.Step(w, core.NewInputFrame(), testTick)

	if got, want := w.Particles.Len(), rules.Config.Particles.Count; got != want {
		t.Errorf("particles = %d, want %d", got, want)
	}
	if w.Character.VY != -16.5 {
		t.Errorf("VY = %v, want -16.5", w.Character.VY)
	}
}

func TestBreakingPlatformTriggersOnce(t *testing.T) {
	rules, w, ph := newTestWorld(t)
	p := NewPlatform(rules.Platform(PlatformBreaking), PlatformBreaking, 300, 600, 0)
	w.Platforms = append(w.Platforms, p)
	placeAbove(rules, &w.Character, p)

	res := ph.Step(w, core.NewInputFrame(), testTick)
	if res.Bounces != 1 || res.Broken != 1 {
		t.Fatalf("first landing: bounces=%d broken=%d, want 1 and 1", res.Bounces, res.Broken)
	}
	if !w.Platforms[0].Broken {
		t.Fatal("platform should be broken after landing")
	}
	emitted := w.Particles.Len()
	if emitted != rules.Config.Particles.Count {
		t.Fatalf("particles = %d, want %d", emitted, rules.Config.Particles.Count)
	}

	placeAbove(rules, &w.Character, w.Platforms[0])
	res = ph.Step(w, core.NewInputFrame(), testTick)
	if res.Bounces != 0 || res.Broken != 0 {
		t.Errorf("second landing: bounces=%d broken=%d, want 0 and 0", res.Bounces, res.Broken)
	}
	if w.Particles.Len() != emitted {
		t.Errorf("broken platform emitted again: %d particles", w.Particles.Len())
	}
	if !w.Platforms[0].Broken {
		t.Error("broken platform reverted")
	}
}

func TestFallSpeedIsCapped(t *testing.T) {
	rules, w, ph := newTestWorld(t)
	limit := rules.Config.Character.MaxFallSpeed

	for i := 0; i < 200; i++ {
		ph.Step(w, core.NewInputFrame(), testTick)
		if w.Character.VY > limit {
			t.Fatalf("tick %d: VY = %v exceeds %v", i, w.Character.VY, limit)
		}
	}
	if w.Character.VY != limit {
		t.Errorf("terminal VY = %v, want %v", w.Character.VY, limit)
	}
}

func TestHorizontalWrap(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		action core.Action
		want   float64
	}{
		{"left edge wraps right", 24.5, core.ActionLeft, 600 - 22.5},
		{"right edge wraps left", 600 - 24.5, core.ActionRight, 22.5},
		{"inside stays", 300, core.ActionLeft, 294},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w, ph := newTestWorld(t)
			w.Character.X = tt.x
			in := core.NewInputFrame()
			in.Set(tt.action)

			ph.Step(w, in, testTick)

			if math.Abs(w.Character.X-tt.want) > 1e-9 {
				t.Errorf("X = %v, want %v", w.Character.X, tt.want)
			}
		})
	}
}

func TestSteering(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		startVX float64
		wantVX  float64
	}{
		{"left", []core.Action{core.ActionLeft}, 0, -6},
		{"right", []core.Action{core.ActionRight}, 0, 6},
		{"left wins over right", []core.Action{core.ActionLeft, core.ActionRight}, 0, -6},
		{"damping without input", nil, 6, 4.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w, ph := newTestWorld(t)
			w.Character.VX = tt.startVX
			in := core.NewInputFrame()
			for _, a := range tt.actions {
				in.Set(a)
			}

			ph.Step(w, in, testTick)

			if math.Abs(w.Character.VX-tt.wantVX) > 1e-9 {
				t.Errorf("VX = %v, want %v", w.Character.VX, tt.wantVX)
			}
		})
	}
}

func TestLeanEasesTowardTarget(t *testing.T) {
	_, w, ph := newTestWorld(t)
	in := core.NewInputFrame()
	in.Set(core.ActionRight)

	ph.Step(w, in, testTick)

	c := w.Character
	if c.TargetRotation != 0.2 {
		t.Errorf("TargetRotation = %v, want 0.2", c.TargetRotation)
	}
	if math.Abs(c.Rotation-0.02) > 1e-9 {
		t.Errorf("Rotation = %v, want 0.02", c.Rotation)
	}
}

func TestSquash(t *testing.T) {
	tests := []struct {
		name    string
		vy      float64
		maxFall float64
		squash  float64
		want    float64
	}{
		{"rising fast stretches", -12, 10, 1, 1.2},
		{"falling fast squashes", 11, 20, 1, 0.8},
		{"slow eases back", 0, 10, 1.2, 1.18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultClimbConfig()
			cfg.Character.MaxFallSpeed = tt.maxFall
			rules := NewRules(cfg)
			rng := constRand(0.5)
			w := NewWorld(rules, rng)
			ph := NewPhysics(rules, rng)
			w.Character.VY = tt.vy
			w.Character.Squash = tt.squash

			ph.Step(w, core.NewInputFrame(), testTick)

			if math.Abs(w.Character.Squash-tt.want) > 1e-9 {
				t.Errorf("Squash = %v, want %v", w.Character.Squash, tt.want)
			}
		})
	}
}

func TestBlink(t *testing.T) {
	rules := NewRules(config.DefaultClimbConfig())
	rng := constRand(0)
	w := NewWorld(rules, rng)
	ph := NewPhysics(rules, rng)

	ph.Step(w, core.NewInputFrame(), testTick)
	if w.Character.Blink != rules.Config.Character.BlinkTicks {
		t.Errorf("Blink = %d, want %d", w.Character.Blink, rules.Config.Character.BlinkTicks)
	}

	rng.values[0] = 0.5
	ph.Step(w, core.NewInputFrame(), testTick)
	if w.Character.Blink != rules.Config.Character.BlinkTicks-1 {
		t.Errorf("Blink = %d, want countdown", w.Character.Blink)
	}
}

func TestPowerUpCollectedOnce(t *testing.T) {
	rules, w, ph := newTestWorld(t)
	c := &w.Character
	w.PowerUps = append(w.PowerUps, PowerUp{
		Kind:  PowerUpSuperJump,
		X:     c.X,
		Y:     c.Y,
		Width: rules.Config.PowerUps.Width,
		Spec:  rules.PowerUp(PowerUpSuperJump),
	})

	res := ph.Step(w, core.NewInputFrame(), testTick)
	if len(res.Collected) != 1 || res.Collected[0] != PowerUpSuperJump {
		t.Fatalf("Collected = %v, want [super-jump]", res.Collected)
	}
	if !c.SuperJump.Active {
		t.Fatal("super jump should be active")
	}
	remaining := c.SuperJump.Remaining

	res = ph.Step(w, core.NewInputFrame(), testTick)
	if len(res.Collected) != 0 {
		t.Errorf("power-up collected twice: %v", res.Collected)
	}
	if c.SuperJump.Remaining != remaining-testTick {
		t.Errorf("Remaining = %v, want %v", c.SuperJump.Remaining, remaining-testTick)
	}
}

func TestInvincibilityIgnoresEnemies(t *testing.T) {
	tests := []struct {
		name       string
		invincible bool
		wantHit    bool
	}{
		{"unshielded", false, true},
		{"invincible", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, w, ph := newTestWorld(t)
			c := &w.Character
			if tt.invincible {
				c.Invincible.Activate(rules.PowerUp(PowerUpInvincibility).Duration)
			}
			w.Enemies = append(w.Enemies, Enemy{X: c.X, Y: c.Y, Width: rules.Config.Enemies.Width})

			res := ph.Step(w, core.NewInputFrame(), testTick)

			if res.EnemyHit != tt.wantHit {
				t.Errorf("EnemyHit = %v, want %v", res.EnemyHit, tt.wantHit)
			}
		})
	}
}

func TestEffectExpiresAfterDuration(t *testing.T) {
	_, w, ph := newTestWorld(t)
	c := &w.Character
	c.SuperJump.Activate(3 * time.Second)

	ticks := 0
	for c.SuperJump.Active && ticks < 1000 {
		ph.Step(w, core.NewInputFrame(), testTick)
		ticks++
	}

	// 3s at 16ms per tick
	if ticks != 188 {
		t.Errorf("super jump lasted %d ticks, want 188", ticks)
	}
	if c.SuperJump.Remaining > 0 {
		t.Errorf("Remaining = %v after expiry", c.SuperJump.Remaining)
	}
}
