package snake

// State is the game lifecycle state.
type State int

const (
	StateGameOn State = iota
	StatePaused
	StateGameOver
	StateRestarting
)

func (s State) String() string {
	switch s {
	case StateGameOn:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	case StateRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// Trigger is an input or simulation outcome that can move the game between
// states.
type Trigger int

const (
	TriggerPause         Trigger = iota // pause toggle key
	TriggerSelfCollision                // the snake ran into itself
	TriggerConfirm                      // "play again" answer
	TriggerDecline                      // "quit" answer
	TriggerTick                         // a scheduled simulation tick
)

// Transition returns the state reached from s on trigger t.
// ok is false when the trigger means nothing in s; next is then s itself.
func Transition(s State, t Trigger) (next State, ok bool) {
	switch s {
	case StateGameOn:
		switch t {
		case TriggerPause:
			return StatePaused, true
		case TriggerSelfCollision:
			return StateGameOver, true
		case TriggerTick:
			return StateGameOn, true
		}
	case StatePaused:
		if t == TriggerPause {
			return StateGameOn, true
		}
	case StateGameOver:
		switch t {
		case TriggerConfirm:
			return StateRestarting, true
		case TriggerDecline:
			// Stays put; the caller emits quit.
			return StateGameOver, true
		}
	case StateRestarting:
		if t == TriggerTick {
			return StateGameOn, true
		}
	}
	return s, false
}
