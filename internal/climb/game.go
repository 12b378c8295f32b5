// Package climb implements Goat Climb, an endless vertical platformer.
// The goat bounces up a procedurally generated column of platforms,
// dodging enemies and picking up timed power-ups. Score is the best height
// reached.
package climb

import (
	"time"

	"github.com/vovakirdan/goat-climb/internal/config"
	"github.com/vovakirdan/goat-climb/internal/core"
)

// ID is the identifier used for score storage.
const ID = "goatclimb"

// GameOverReason tells why a run ended.
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonFell
	ReasonEnemy
)

// String returns a short description of the reason.
func (r GameOverReason) String() string {
	switch r {
	case ReasonFell:
		return "fell"
	case ReasonEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// BestScoreStore persists the best score between sessions.
type BestScoreStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// Game drives the simulation one tick at a time and owns the World.
type Game struct {
	cfg     config.ClimbConfig
	rules   *Rules
	runtime core.RuntimeConfig

	rng        Rand
	clock      Clock
	store      BestScoreStore
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager
	gen        *Generator
	physics    *Physics

	next       *config.ClimbConfig
	world      *World
	mode       core.Mode
	paused     bool
	best       int
	finalScore int
	newBest    bool
	reason     GameOverReason
	pending    []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the configuration. The default is config.DefaultClimbConfig.
func WithConfig(cfg config.ClimbConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithRand sets the random source. It takes precedence over runtime seeds.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithClock sets the tick clock.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithDifficulty applies a difficulty preset on top of the configuration.
func WithDifficulty(preset config.DifficultyPreset) Option {
	return func(g *Game) {
		g.preset = preset
	}
}

// WithStore sets the best score persistence.
func WithStore(s BestScoreStore) Option {
	return func(g *Game) {
		g.store = s
	}
}

// New creates a game in the not-started mode and loads the stored best
// score. A failed load leaves the best at zero for this session.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:     config.DefaultClimbConfig(),
		runtime: core.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	config.ApplyClimbPreset(&g.cfg, g.preset)
	if g.rng == nil {
		g.rng = NewRand(time.Now().UnixNano())
	}
	if g.clock == nil {
		g.clock = clockFor(g.cfg.Timing)
	}
	g.setup()

	if g.store != nil {
		best, err := g.store.LoadBest()
		if err != nil {
			g.pending = append(g.pending, core.Event{Kind: core.EventPersistFailed, Err: err})
		} else if best > 0 {
			g.best = best
		}
	}
	return g
}

// clockFor builds the clock selected by the timing config.
func clockFor(t config.TimingConfig) Clock {
	if t.Clock == "wall" {
		return NewWallClock(nil, t.MaxElapsed)
	}
	return FixedClock{Step: t.TickDuration}
}

// setup derives the per-config collaborators.
func (g *Game) setup() {
	g.rules = NewRules(g.cfg)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.gen = NewGenerator(g.rules, g.rng, g.difficulty)
	g.physics = NewPhysics(g.rules, g.rng)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Goat Climb"
}

// Configure swaps the configuration. It takes effect on the next Start.
func (g *Game) Configure(cfg config.ClimbConfig) {
	config.ApplyClimbPreset(&cfg, g.preset)
	g.next = &cfg
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.ClimbConfig {
	return g.cfg
}

// Reset applies runtime settings and starts a fresh run. A non-zero seed
// reseeds the random source.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if runtime.Seed != 0 {
		g.rng = NewRand(runtime.Seed)
		g.setup()
	}
	g.Start()
}

// Start builds a new world and enters the running mode.
func (g *Game) Start() {
	if g.next != nil {
		g.cfg = *g.next
		g.next = nil
		g.setup()
	}
	g.world = NewWorld(g.rules, g.rng)
	g.gen.Seed(g.world)
	g.mode = core.ModeRunning
	g.paused = false
	g.finalScore = 0
	g.newBest = false
	g.reason = ReasonNone
	g.clock.Reset()
}

// Restart is Start after a finished run.
func (g *Game) Restart() {
	g.Start()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.pending
	g.pending = nil

	if g.mode != core.ModeRunning {
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	cfg := g.cfg
	w := g.world
	w.Ticks++

	for i := range w.Platforms {
		w.Platforms[i].Update()
	}
	for i := range w.Enemies {
		w.Enemies[i].Update()
	}
	for i := range w.PowerUps {
		w.PowerUps[i].Update()
	}
	w.Particles.Update()

	res := g.physics.Step(w, in, g.clock.Elapsed())
	for i := 0; i < res.Bounces; i++ {
		events = append(events, core.Event{Kind: core.EventBounce})
	}
	for i := 0; i < res.Broken; i++ {
		events = append(events, core.Event{Kind: core.EventPlatformBroken})
	}
	for _, k := range res.Collected {
		events = append(events, core.Event{Kind: core.EventPowerUp, Detail: k.String()})
	}

	w.Camera.Track(w.Character.Y, cfg.Camera.Lead)
	w.Score.Observe(w.Character.Y, cfg.Viewport.Height, cfg.Score)

	if res.EnemyHit {
		events = g.gameOver(ReasonEnemy, events)
	}
	if w.Camera.FellBelow(w.Character.Y, cfg.Viewport.Height, cfg.World.FallMargin) {
		events = g.gameOver(ReasonFell, events)
	}

	g.gen.Generate(w)
	g.gen.Prune(w)

	return core.StepResult{State: g.State(), Events: events}
}

// gameOver ends the run once and persists the best score if it improved.
func (g *Game) gameOver(reason GameOverReason, events []core.Event) []core.Event {
	if g.mode == core.ModeEnded {
		return events
	}
	g.mode = core.ModeEnded
	g.reason = reason
	g.finalScore = g.world.Score.Value

	if g.finalScore > g.best {
		g.best = g.finalScore
		g.newBest = true
		events = append(events, core.Event{Kind: core.EventNewBest, Value: g.best})
		if g.store != nil {
			if err := g.store.SaveBest(g.best); err != nil {
				events = append(events, core.Event{Kind: core.EventPersistFailed, Err: err})
			}
		}
	}

	return append(events, core.Event{
		Kind:   core.EventGameOver,
		Value:  g.finalScore,
		Detail: reason.String(),
	})
}

// Mode returns the lifecycle stage.
func (g *Game) Mode() core.Mode {
	return g.mode
}

// Best returns the best score known to this session.
func (g *Game) Best() int {
	return g.best
}

// FinalScore returns the score of the last finished run.
func (g *Game) FinalScore() int {
	return g.finalScore
}

// Reason returns why the last run ended.
func (g *Game) Reason() GameOverReason {
	return g.reason
}

// World exposes the live world. It is nil before the first Start.
func (g *Game) World() *World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Score.Value
	}
	return core.GameState{
		Mode:     g.mode,
		Score:    score,
		Best:     g.best,
		GameOver: g.mode == core.ModeEnded,
		Paused:   g.paused,
	}
}
