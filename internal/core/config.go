package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Mode is the lifecycle stage of a game session.
type Mode int

const (
	ModeNotStarted Mode = iota
	ModeRunning
	ModeEnded
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNotStarted:
		return "not-started"
	case ModeRunning:
		return "running"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Mode     Mode // Lifecycle stage
	Score    int  // Current score
	Best     int  // Best score known to this session
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventBounce EventKind = iota
	EventPlatformBroken
	EventPowerUp
	EventGameOver
	EventNewBest
	EventPersistFailed
)

// Event is emitted by a game step for the platform to log or react to.
type Event struct {
	Kind   EventKind
	Value  int    // Score for game-over/new-best events
	Detail string // Power-up kind or game-over reason
	Err    error  // Set for EventPersistFailed
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
