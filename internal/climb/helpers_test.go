package climb

import (
	"testing"
	"time"

	"github.com/vovakirdan/goat-climb/internal/config"
)

// seqRand replays a fixed sequence of values, then repeats the last one.
type seqRand struct {
	values []float64
	i      int
}

func constRand(v float64) *seqRand {
	return &seqRand{values: []float64{v}}
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.i]
	if r.i < len(r.values)-1 {
		r.i++
	}
	return v
}

const testTick = 16 * time.Millisecond

// newTestWorld returns default rules and an empty world whose random source
// never triggers blinks or spawns.
func newTestWorld(t *testing.T) (*Rules, *World, *Physics) {
	t.Helper()
	rules := NewRules(config.DefaultClimbConfig())
	rng := constRand(0.5)
	return rules, NewWorld(rules, rng), NewPhysics(rules, rng)
}

// placeAbove positions the goat so that it falls onto p during the next
// physics step.
func placeAbove(rules *Rules, c *Character, p Platform) {
	g := rules.Config.Character.Gravity
	c.X = p.X
	c.VX = 0
	c.VY = 5
	c.Y = p.Y + 5 - c.H/2 - (5 + g)
}
