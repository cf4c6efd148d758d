package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, k - head up
	ActionDown           // S, Down arrow, j - head down
	ActionLeft           // A, Left arrow, h - head left
	ActionRight          // D, Right arrow, l - head right
	ActionPause          // P, Esc - pause/unpause game
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
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

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame collects the actions triggered between two frames.
// Directional actions are kept in arrival order because each one is
// re-validated by the snake against its last applied step.
type InputFrame struct {
	Actions map[Action]bool
	Turns   []Action
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
	if a.IsDirectional() {
		f.Turns = append(f.Turns, a)
	}
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
	f.Turns = f.Turns[:0]
}
