package core

// Action is a decoded logical input, abstracted from physical key presses.
// The simulation only ever sees one Action per tick.
type Action int

const (
	ActionNone Action = iota
	ActionJump        // Space, Up, W, K - flap / start / play again
	ActionQuit        // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Merge combines two actions observed during the same tick.
// Quit always wins, then Jump; repeated presses collapse into one.
func Merge(a, b Action) Action {
	if a == ActionQuit || b == ActionQuit {
		return ActionQuit
	}
	if a == ActionJump || b == ActionJump {
		return ActionJump
	}
	return ActionNone
}
