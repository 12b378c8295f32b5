package climb

import (
	"math"

	"github.com/vovakirdan/goat-climb/internal/config"
)

// Generator keeps terrain ahead of the camera and discards what scrolled
// off the bottom.
type Generator struct {
	rules      *Rules
	rng        Rand
	difficulty *config.DifficultyManager
}

// NewGenerator creates a generator. A nil difficulty manager uses the
// configured spawn chances unchanged.
func NewGenerator(rules *Rules, rng Rand, difficulty *config.DifficultyManager) *Generator {
	if difficulty == nil {
		difficulty = config.NewDifficultyManager(config.DifficultyConfig{})
	}
	return &Generator{
		rules:      rules,
		rng:        rng,
		difficulty: difficulty,
	}
}

// Seed replaces the terrain with the opening layout: a Normal platform
// under the start position, then a column of platforms above it whose
// first few are forced Normal.
func (g *Generator) Seed(w *World) {
	cfg := g.rules.Config
	w.Platforms = w.Platforms[:0]
	w.Enemies = w.Enemies[:0]
	w.PowerUps = w.PowerUps[:0]

	w.Platforms = append(w.Platforms, g.newPlatform(
		PlatformNormal,
		cfg.Viewport.Width/2,
		cfg.Viewport.Height-cfg.World.BaseOffset,
	))

	for i := 1; i <= cfg.World.InitialPlatforms; i++ {
		kind := PlatformNormal
		if i > cfg.World.SafePlatforms {
			kind = g.pickPlatformKind()
		}
		w.Platforms = append(w.Platforms, g.newPlatform(
			kind,
			g.platformX(),
			cfg.Viewport.Height-float64(i)*cfg.World.Spacing,
		))
	}
}

// Generate appends a batch of platforms above the highest one once it is
// within the lookahead margin of the camera. It returns the number of
// platforms added.
func (g *Generator) Generate(w *World) int {
	cfg := g.rules.Config
	top := w.HighestPlatform()
	if math.IsInf(top, 1) {
		top = w.Camera.Y + cfg.Viewport.Height
	}
	if top <= w.Camera.Y-cfg.World.Lookahead {
		return 0
	}

	enemyChance := g.difficulty.EnemyChance(cfg.Enemies.SpawnChance, w.Score.Value, w.Ticks)
	powerUpChance := g.difficulty.PowerUpChance(cfg.PowerUps.SpawnChance, w.Score.Value, w.Ticks)

	for i := 0; i < cfg.World.BatchSize; i++ {
		y := top - float64(i+1)*cfg.World.Spacing
		w.Platforms = append(w.Platforms, g.newPlatform(g.pickPlatformKind(), g.platformX(), y))

		if g.rng.Float64() < enemyChance {
			x := g.spawnX()
			w.Enemies = append(w.Enemies, Enemy{
				X:         x,
				Y:         y - cfg.Enemies.SpawnOffset,
				Width:     cfg.Enemies.Width,
				OriginX:   x,
				Amplitude: cfg.Enemies.Amplitude,
				PhaseStep: cfg.Enemies.PhaseStep,
			})
		}

		if g.rng.Float64() < powerUpChance {
			kind := g.pickPowerUpKind()
			w.PowerUps = append(w.PowerUps, PowerUp{
				Kind:      kind,
				X:         g.spawnX(),
				Y:         y - cfg.PowerUps.SpawnOffset,
				Width:     cfg.PowerUps.Width,
				FloatStep: cfg.PowerUps.FloatStep,
				Spec:      g.rules.PowerUp(kind),
			})
		}
	}
	return cfg.World.BatchSize
}

// Prune drops entities that fell more than the prune margin below the
// viewport. Relative order of survivors is kept.
func (g *Generator) Prune(w *World) {
	cfg := g.rules.Config
	limit := w.Camera.Y + cfg.Viewport.Height + cfg.World.PruneMargin

	platforms := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.Y < limit {
			platforms = append(platforms, p)
		}
	}
	w.Platforms = platforms

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Y < limit {
			enemies = append(enemies, e)
		}
	}
	w.Enemies = enemies

	powerUps := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if p.Y < limit {
			powerUps = append(powerUps, p)
		}
	}
	w.PowerUps = powerUps
}

func (g *Generator) newPlatform(kind PlatformKind, x, y float64) Platform {
	spec := g.rules.Platform(kind)
	var vx float64
	if spec.Moves {
		vx = spec.MoveSpeed
		if g.rng.Float64() < 0.5 {
			vx = -vx
		}
	}
	return NewPlatform(spec, kind, x, y, vx)
}

// pickPlatformKind draws a kind from the configured weights.
func (g *Generator) pickPlatformKind() PlatformKind {
	var total float64
	for k := PlatformKind(0); k < platformKindCount; k++ {
		total += g.rules.Platform(k).Weight
	}

	r := g.rng.Float64() * total
	for k := PlatformKind(0); k < platformKindCount; k++ {
		w := g.rules.Platform(k).Weight
		if r < w {
			return k
		}
		r -= w
	}
	return PlatformNormal
}

// pickPowerUpKind draws a kind from the configured weights.
func (g *Generator) pickPowerUpKind() PowerUpKind {
	var total float64
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		total += g.rules.PowerUp(k).Weight
	}
	if total <= 0 {
		return PowerUpSuperJump
	}

	r := g.rng.Float64() * total
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		w := g.rules.PowerUp(k).Weight
		if r < w {
			return k
		}
		r -= w
	}
	return PowerUpSuperJump
}

func (g *Generator) platformX() float64 {
	cfg := g.rules.Config
	return between(g.rng, cfg.World.MarginX, cfg.Viewport.Width-cfg.World.MarginX)
}

func (g *Generator) spawnX() float64 {
	cfg := g.rules.Config
	return between(g.rng, cfg.World.SpawnMarginX, cfg.Viewport.Width-cfg.World.SpawnMarginX)
}
