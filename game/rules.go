package game

import (
	"fmt"
	"slices"
)

// RequireInProgress fails with ErrPrecondition if state is terminal or has
// no legal actions.
func RequireInProgress[S any, A comparable](g Game[S, A], state S) ([]A, error) {
	if status := g.Status(state); status.Terminal() {
		return nil, fmt.Errorf("%w: %s state is already %s", ErrPrecondition, g.Name(), status)
	}
	actions := g.Actions(state)
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: %s state in progress without legal actions", ErrPrecondition, g.Name())
	}
	return actions, nil
}

// IsLegal reports whether action is one of Actions(state)
func IsLegal[S any, A comparable](g Game[S, A], state S, action A) bool {
	return slices.Contains(g.Actions(state), action)
}

// PlayChecked applies action after verifying it is legal in state.
func PlayChecked[S any, A comparable](g Game[S, A], action A, state S) (S, error) {
	if !IsLegal(g, state, action) {
		return state, fmt.Errorf("%w: action %v is not legal in %s", ErrPrecondition, action, g.Name())
	}
	return g.Play(action, state), nil
}
