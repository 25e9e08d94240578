package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Machine is a thread-safe in-memory state machine.
// Transitions are indexed as [fromState][event] -> candidates, evaluated in
// registration order; the first candidate whose guards pass wins.
type Machine struct {
	mu          sync.RWMutex
	current     State
	transitions map[string]map[string][]Transition
}

// Option configures a Machine during construction.
type Option func(*Machine) error

// TransitionOption configures a single transition with guards and actions.
type TransitionOption func(*Transition)

// New creates a state machine in the given initial state.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, ErrNilInitialState
	}

	m := &Machine{
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is like New but panics on misconfiguration.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition registers a transition from -> to triggered by event.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		return m.add(t)
	}
}

// WithGuard adds a guard to a transition. Nil guards are ignored.
func WithGuard(guard Guard) TransitionOption {
	return func(t *Transition) {
		if guard != nil {
			t.Guards = append(t.Guards, guard)
		}
	}
}

// WithAction adds an action to a transition. Nil actions are ignored.
func WithAction(action Action) TransitionOption {
	return func(t *Transition) {
		if action != nil {
			t.Actions = append(t.Actions, action)
		}
	}
}

func (m *Machine) add(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}

	byEvent, ok := m.transitions[t.From.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		m.transitions[t.From.Name()] = byEvent
	}
	byEvent[t.Event.Name()] = append(byEvent[t.Event.Name()], t)
	return nil
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is currently in state s.
func (m *Machine) Is(s State) bool {
	return s != nil && m.Current().Name() == s.Name()
}

// Fire triggers event with the given payload. Guards see the payload,
// actions run before the state changes and any action error aborts the
// transition.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	candidates := m.transitions[m.current.Name()][event.Name()]
	if len(candidates) == 0 {
		return NewErrNoTransitionAvailable(m.current.Name(), event.Name())
	}

	for _, t := range candidates {
		if !t.admits(ctx, event, data) {
			continue
		}
		if err := t.run(ctx, event, data); err != nil {
			return err
		}
		m.current = t.To
		return nil
	}

	return NewErrTransitionRejected(m.current.Name(), event.Name())
}

// CanFire reports whether Fire would find an allowed transition for event.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, t := range m.transitions[m.current.Name()][event.Name()] {
		if t.admits(ctx, event, data) {
			return true
		}
	}
	return false
}
