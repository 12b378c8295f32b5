package climb

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/goat-climb/internal/core"
)

// Display characters
const (
	EnemyChar    = '◉'
	ParticleChar = '·'
	HornChar     = '^'
	barLen       = 8
	hudRows      = 1
	floatAmp     = 5.0 // Power-up hover amplitude in world units
)

// viewport maps world coordinates onto screen cells below the HUD row.
type viewport struct {
	camY   float64
	sx, sy float64
	top    int
	cols   int
	rows   int
}

func newViewport(dst *core.Screen, s Snapshot) viewport {
	cols := dst.Width()
	rows := dst.Height() - hudRows
	v := viewport{camY: s.CameraY, top: hudRows, cols: cols, rows: rows}
	if s.ViewW > 0 {
		v.sx = float64(cols) / s.ViewW
	}
	if s.ViewH > 0 {
		v.sy = float64(rows) / s.ViewH
	}
	return v
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor((y-v.camY)*v.sy))
}

// visible reports whether row r lies inside the playfield.
func (v viewport) visible(r int) bool {
	return r >= v.top && r < v.top+v.rows
}

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot())
}

// Render draws a snapshot into dst. The playfield is scaled to fill the
// screen below a one-row HUD.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()

	if s.Mode == core.ModeNotStarted {
		drawTitle(dst, s)
		return
	}

	v := newViewport(dst, s)
	for _, p := range s.Platforms {
		drawPlatform(dst, v, p)
	}
	for _, p := range s.PowerUps {
		drawPowerUp(dst, v, p)
	}
	for _, e := range s.Enemies {
		r := v.row(e.Y)
		if v.visible(r) {
			dst.SetColored(v.col(e.X), r, EnemyChar, core.ColorBrightRed)
		}
	}
	for _, p := range s.Particles {
		r := v.row(p.Y)
		if v.visible(r) {
			dst.SetColored(v.col(p.X), r, ParticleChar, p.Color)
		}
	}
	drawGoat(dst, v, s.Goat)
	drawHUD(dst, s)

	switch {
	case s.Mode == core.ModeEnded:
		drawGameOver(dst, s)
	case s.Paused:
		drawMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawPlatform(dst *core.Screen, v viewport, p Platform) {
	if p.Broken {
		return
	}
	r := v.row(p.Y)
	if !v.visible(r) {
		return
	}
	x0 := v.col(p.X - p.Spec.Width/2)
	x1 := v.col(p.X + p.Spec.Width/2)
	dst.DrawHLine(x0, r, core.Max(1, x1-x0), p.Spec.Glyph, p.Spec.Color)
}

func drawPowerUp(dst *core.Screen, v viewport, p PowerUp) {
	r := v.row(p.Y + math.Sin(p.Float)*floatAmp)
	if !v.visible(r) {
		return
	}
	dst.SetColored(v.col(p.X), r, p.Spec.Glyph, p.Spec.Color)
}

// drawGoat draws a two-row sprite: horns above the face. Lean shifts the
// horns, a stretched body lifts them one extra row.
func drawGoat(dst *core.Screen, v viewport, c Character) {
	color := core.ColorWheat
	if c.Invincible.Active {
		color = core.ColorBrightCyan
	}

	face := "(oo)"
	if c.Blink > 0 {
		face = "(--)"
	}
	if c.SuperJump.Active {
		face = "(OO)"
	}

	r := v.row(c.Y)
	x := v.col(c.X) - len(face)/2
	if v.visible(r) {
		dst.DrawTextColored(x, r, face, color)
	}

	shift := 0
	switch {
	case c.Rotation < -0.05:
		shift = -1
	case c.Rotation > 0.05:
		shift = 1
	}
	hr := r - 1
	if c.Squash > 1.1 {
		hr--
	}
	if v.visible(hr) {
		dst.SetColored(x+shift, hr, HornChar, color)
		dst.SetColored(x+len(face)-1+shift, hr, HornChar, color)
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
	best := fmt.Sprintf("Best: %d", s.Best)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorGold)

	x := 16
	if s.SuperJump > 0 {
		text := "↑" + bar(s.SuperJump)
		dst.DrawTextColored(x, 0, text, core.ColorBrightMagenta)
		x += len([]rune(text)) + 2
	}
	if s.Shield > 0 {
		dst.DrawTextColored(x, 0, "◆"+bar(s.Shield), core.ColorBrightCyan)
	}
}

// bar renders a fraction in [0, 1] as a fixed-width gauge.
func bar(fraction float64) string {
	n := int(math.Ceil(core.ClampF(fraction, 0, 1) * barLen))
	return strings.Repeat("█", n) + strings.Repeat("░", barLen-n)
}

func drawTitle(dst *core.Screen, s Snapshot) {
	h := dst.Height()
	y := h/2 - 4
	dst.DrawTextCentered(y, "G O A T   C L I M B")
	dst.DrawTextCentered(y+2, "^    ^")
	dst.DrawTextCentered(y+3, "(oo)")
	dst.DrawTextCentered(y+5, "←/→ or A/D to steer  •  P to pause")
	dst.DrawTextCentered(y+6, "Press Enter or Space to start")
	if s.Best > 0 {
		dst.DrawTextCentered(y+8, fmt.Sprintf("Best: %d", s.Best))
	}
}

func drawGameOver(dst *core.Screen, s Snapshot) {
	cause := "You fell!"
	if s.Reason == ReasonEnemy {
		cause = "Caught by an enemy!"
	}
	line := fmt.Sprintf("Score: %d  |  Best: %d", s.Final, s.Best)
	if s.NewBest {
		line += "  NEW BEST"
	}
	drawMessage(dst, "GAME OVER", cause, line, "Press R to restart")
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
