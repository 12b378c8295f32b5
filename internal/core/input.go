package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer left while held
	ActionRight          // D, Right arrow - steer right while held
	ActionConfirm        // Enter, Space - start from the title screen
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Steering actions are present while held; the others are one-shot.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HeldKeys emulates key-up events for terminals, which only report presses.
// A press holds the action for a number of ticks; key auto-repeat keeps
// refreshing it while the physical key stays down.
type HeldKeys struct {
	holdTicks int
	remaining map[Action]int
}

// NewHeldKeys creates a held-key tracker. holdTicks below 1 is raised to 1.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldKeys{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// Press marks a steering action as held. Pressing one direction releases
// the opposite one. Non-steering actions are ignored.
func (h *HeldKeys) Press(a Action) {
	switch a {
	case ActionLeft:
		delete(h.remaining, ActionRight)
	case ActionRight:
		delete(h.remaining, ActionLeft)
	default:
		return
	}
	h.remaining[a] = h.holdTicks
}

// Held reports whether the action is currently held.
func (h *HeldKeys) Held(a Action) bool {
	return h.remaining[a] > 0
}

// Apply copies held actions into the frame and ages every hold by one tick.
func (h *HeldKeys) Apply(frame *InputFrame) {
	for a, n := range h.remaining {
		if n > 0 {
			frame.Set(a)
		}
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
