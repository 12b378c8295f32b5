package climb

import "math"

// World is the complete simulation state of one run. It is built by Start,
// mutated in place every tick and thrown away on restart.
type World struct {
	Character Character
	Platforms []Platform
	Enemies   []Enemy
	PowerUps  []PowerUp
	Particles *ParticlePool
	Camera    Camera
	Score     Score
	Ticks     int
}

// NewWorld places the goat at its start position. Terrain is added by the
// generator.
func NewWorld(rules *Rules, rng Rand) *World {
	cfg := rules.Config
	return &World{
		Character: Character{
			X:      cfg.Viewport.Width / 2,
			Y:      cfg.Viewport.Height - cfg.Character.StartOffset,
			W:      cfg.Character.Width,
			H:      cfg.Character.Height,
			Squash: 1,
		},
		Platforms: make([]Platform, 0, cfg.World.InitialPlatforms+cfg.World.BatchSize*4),
		Particles: NewParticlePool(cfg.Particles, rng),
	}
}

// HighestPlatform returns the smallest platform Y, or +Inf when there are
// no platforms.
func (w *World) HighestPlatform() float64 {
	top := math.Inf(1)
	for i := range w.Platforms {
		if w.Platforms[i].Y < top {
			top = w.Platforms[i].Y
		}
	}
	return top
}
