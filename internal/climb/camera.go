package climb

import (
	"math"

	"github.com/vovakirdan/goat-climb/internal/config"
)

// Camera is the world Y shown at the top of the viewport. It only moves up
// (toward smaller Y), trailing the goat by a fixed lead.
type Camera struct {
	Y float64
}

// Track pulls the camera up when y climbs above Camera.Y + lead.
// Falling never moves it back down.
func (c *Camera) Track(y, lead float64) {
	if y < c.Y+lead {
		c.Y = y - lead
	}
}

// FellBelow reports whether y dropped past the bottom of the viewport plus
// margin.
func (c Camera) FellBelow(y, viewportH, margin float64) bool {
	return y > c.Y+viewportH+margin
}

// Score is the best height reached during a run, in points.
type Score struct {
	Value int
}

// HeightScore converts a goat Y into points. Heights below the start
// baseline score zero.
func HeightScore(y, viewportH float64, cfg config.ScoreConfig) int {
	points := math.Floor(-(y - viewportH + cfg.BaselineOffset) / cfg.UnitsPerPoint)
	if points < 0 {
		return 0
	}
	return int(points)
}

// Observe records the height y and keeps the best score so far.
func (s *Score) Observe(y, viewportH float64, cfg config.ScoreConfig) {
	if p := HeightScore(y, viewportH, cfg); p > s.Value {
		s.Value = p
	}
}
