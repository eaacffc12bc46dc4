package core

// Action represents a semantic command, abstracted from physical key presses.
// The platform maps keys to actions; the piece only ever sees actions.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveUp             // W, Up arrow - one block up
	ActionMoveDown           // S, Down arrow - one block down
	ActionRotateLeft         // A, Left arrow - quarter turn counter-clockwise
	ActionRotateRight        // D, Right arrow - quarter turn clockwise
	ActionNextShape          // N - replace the piece with the next catalog shape
	ActionToggleDebug        // X - bounding box overlay
	ActionPause              // P - pause/unpause
	ActionRestart            // R - respawn the current shape
	ActionQuit               // Q, Ctrl+C - exit
)

// CommandActions lists the actions that move the piece, in the priority
// order used when several arrive in the same frame.
var CommandActions = []Action{
	ActionMoveUp,
	ActionMoveDown,
	ActionRotateLeft,
	ActionRotateRight,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionNextShape:
		return "NextShape"
	case ActionToggleDebug:
		return "ToggleDebug"
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

// IsCommand reports whether the action moves the piece.
func (a Action) IsCommand() bool {
	for _, c := range CommandActions {
		if a == c {
			return true
		}
	}
	return false
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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

// Command returns the highest-priority piece command in the frame.
// At most one command is consumed per frame.
func (f InputFrame) Command() (Action, bool) {
	for _, a := range CommandActions {
		if f.Has(a) {
			return a, true
		}
	}
	return ActionNone, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
