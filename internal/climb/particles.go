package climb

import (
	"github.com/vovakirdan/goat-climb/internal/config"
	"github.com/vovakirdan/goat-climb/internal/core"
)

// Particle is a short-lived visual fragment.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Color  core.Color
}

// ParticlePool owns every live particle. Gameplay never reads it.
type ParticlePool struct {
	items []Particle
	cfg   config.ParticlesConfig
	rng   Rand
}

// NewParticlePool creates an empty pool.
func NewParticlePool(cfg config.ParticlesConfig, rng Rand) *ParticlePool {
	return &ParticlePool{
		items: make([]Particle, 0, cfg.Count*4),
		cfg:   cfg,
		rng:   rng,
	}
}

// Emit spawns a burst at (x, y).
func (pp *ParticlePool) Emit(x, y float64, color core.Color) {
	half := pp.cfg.Speed / 2
	for i := 0; i < pp.cfg.Count; i++ {
		pp.items = append(pp.items, Particle{
			X:     x,
			Y:     y,
			VX:    between(pp.rng, -half, half),
			VY:    between(pp.rng, -half, half),
			Life:  pp.cfg.Life,
			Color: color,
		})
	}
}

// Update moves every particle and drops the ones that expired.
func (pp *ParticlePool) Update() {
	alive := pp.items[:0]
	for _, p := range pp.items {
		p.X += p.VX
		p.Y += p.VY
		p.VY += pp.cfg.Gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	pp.items = alive
}

// Particles returns the live particles. The slice is owned by the pool.
func (pp *ParticlePool) Particles() []Particle {
	return pp.items
}

// Len returns the number of live particles.
func (pp *ParticlePool) Len() int {
	return len(pp.items)
}

// Reset removes every particle.
func (pp *ParticlePool) Reset() {
	pp.items = pp.items[:0]
}
