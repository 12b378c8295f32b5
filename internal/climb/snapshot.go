package climb

import "github.com/vovakirdan/goat-climb/internal/core"

// Snapshot is a read-only copy of everything a renderer needs.
// Slices are copies and may be kept after the next Step.
type Snapshot struct {
	Mode    core.Mode
	Paused  bool
	Reason  GameOverReason
	Score   int
	Best    int
	Final   int
	NewBest bool // Final beat the previous best
	Ticks   int
	CameraY float64
	ViewW   float64
	ViewH   float64

	Goat      Character
	SuperJump float64 // Remaining fraction of super jump, 0 when inactive
	Shield    float64 // Remaining fraction of invincibility, 0 when inactive

	Platforms []Platform
	Enemies   []Enemy
	PowerUps  []PowerUp
	Particles []Particle
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:    g.mode,
		Paused:  g.paused,
		Reason:  g.reason,
		Best:    g.best,
		Final:   g.finalScore,
		NewBest: g.newBest,
		ViewW:   g.cfg.Viewport.Width,
		ViewH:   g.cfg.Viewport.Height,
	}
	w := g.world
	if w == nil {
		return snap
	}

	snap.Score = w.Score.Value
	snap.Ticks = w.Ticks
	snap.CameraY = w.Camera.Y
	snap.Goat = w.Character
	snap.SuperJump = w.Character.SuperJump.Fraction()
	snap.Shield = w.Character.Invincible.Fraction()
	snap.Platforms = append([]Platform(nil), w.Platforms...)
	snap.Enemies = append([]Enemy(nil), w.Enemies...)
	snap.PowerUps = make([]PowerUp, 0, len(w.PowerUps))
	for _, p := range w.PowerUps {
		if !p.Collected {
			snap.PowerUps = append(snap.PowerUps, p)
		}
	}
	snap.Particles = append([]Particle(nil), w.Particles.Particles()...)
	return snap
}
