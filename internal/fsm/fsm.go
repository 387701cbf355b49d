// Package fsm defines the assistant lifecycle transitions.
package fsm

import "fmt"

type State string

type Event string

const (
	StateAsleep State = "asleep"
	StateAwake  State = "awake"
)

const (
	EventWake       Event = "wake"
	EventExit       Event = "exit"
	EventInactivity Event = "inactivity"
	EventFailures   Event = "failures"
	EventSleep      Event = "sleep"
)

// Transition applies one event to the lifecycle state.
func Transition(current State, event Event) (State, error) {
	switch current {
	case StateAsleep:
		switch event {
		case EventWake:
			return StateAwake, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateAwake:
		switch event {
		case EventExit, EventInactivity, EventFailures, EventSleep:
			return StateAsleep, nil
		default:
			return current, invalidTransition(current, event)
		}
	default:
		return current, fmt.Errorf("unknown state %q", current)
	}
}

func invalidTransition(state State, event Event) error {
	return fmt.Errorf("invalid transition: %s --(%s)--> ?", state, event)
}
