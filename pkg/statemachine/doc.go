// Package statemachine provides a small finite-state machine with guarded
// transitions and transition actions.
//
// States and events are anything with a Name method; StringState and
// StringEvent cover the common case. Several transitions may be registered
// for the same (state, event) pair: Fire evaluates them in registration order
// and takes the first one whose guards all pass. That makes it possible to
// branch on the event payload:
//
//	const (
//	    Idle   = statemachine.StringState("idle")
//	    Armed  = statemachine.StringState("armed")
//	    Set    = statemachine.StringEvent("set")
//	)
//
//	isNil := func(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
//	    return data == nil
//	}
//
//	m := statemachine.MustNew(Idle,
//	    statemachine.WithTransition(Idle, Idle, Set, statemachine.WithGuard(isNil)),
//	    statemachine.WithTransition(Idle, Armed, Set),
//	)
//
// Actions run after the guards pass and before the state changes. An action
// error aborts the transition and is returned wrapped.
//
// # Error Handling
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* ... */ }
//
// Machine guards its state with a RWMutex, so Current and CanFire may be
// called concurrently with Fire.
package statemachine
