package core

// Action represents a semantic game action, abstracted from physical key presses,
// mouse buttons and gamepad buttons. Frontends translate raw input into actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, D-pad up, hat up
	ActionDown           // Down arrow, D-pad down, hat down
	ActionLeft           // Left arrow, D-pad left, hat left
	ActionRight          // Right arrow, D-pad right, hat right
	ActionConfirm        // Enter/Space, gamepad A - activate focused menu button
	ActionBack           // Escape - back to menu, or exit from the menu
	ActionStart          // G key, gamepad Start - start a game from the menu
	ActionPause          // P key - pause/unpause
	ActionQuit           // Window close, Ctrl+C - exit immediately
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// directionOrder fixes the priority used when several directions arrive in one frame.
var directionOrder = []Action{ActionUp, ActionDown, ActionLeft, ActionRight}

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
	if a == ActionNone {
		return
	}
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

// Direction returns the first directional action in the frame, or ActionNone.
func (f InputFrame) Direction() Action {
	for _, a := range directionOrder {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
