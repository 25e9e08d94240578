package statemachine

import (
	"context"
	"fmt"
)

// State is anything with a stable name; machines compare states by name.
type State interface {
	Name() string
}

// Event is anything with a stable name; transitions are keyed by it.
type Event interface {
	Name() string
}

// Guard decides whether a candidate transition may be taken for the given payload.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Action runs while a transition is taken. A non-nil error leaves the
// machine in its previous state.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Transition is one candidate edge of the machine.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// String renders the edge as "from --event--> to".
func (t Transition) String() string {
	return fmt.Sprintf("%s --%s--> %s", nameOf(t.From), nameOf(t.Event), nameOf(t.To))
}

// admits reports whether every guard accepts data.
func (t Transition) admits(ctx context.Context, event Event, data any) bool {
	for _, guard := range t.Guards {
		if !guard(ctx, t.From, event, data) {
			return false
		}
	}
	return true
}

// run executes the actions in registration order, stopping at the first error.
func (t Transition) run(ctx context.Context, event Event, data any) error {
	for _, action := range t.Actions {
		if err := action(ctx, t.From, t.To, event, data); err != nil {
			return fmt.Errorf("action failed on %s: %w", t, err)
		}
	}
	return nil
}

func nameOf(v interface{ Name() string }) string {
	if v == nil {
		return "<nil>"
	}
	return v.Name()
}

// StringState is a State named by its own value.
type StringState string

func (s StringState) Name() string   { return string(s) }
func (s StringState) String() string { return string(s) }

// StringEvent is an Event named by its own value.
type StringEvent string

func (e StringEvent) Name() string   { return string(e) }
func (e StringEvent) String() string { return string(e) }
