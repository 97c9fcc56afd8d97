package searcher

import "boardgameai/game"

// Random picks a legal action uniformly at random. It is the baseline
// opponent and the rollout policy of MCTS.
type Random[S any, A comparable] struct {
	base
}

func NewRandom[S any, A comparable](options ...Option) *Random[S, A] {
	return &Random[S, A]{base: newBase(options)}
}

func (r *Random[S, A]) Name() string {
	return "Random"
}

func (r *Random[S, A]) SelectAction(g game.Game[S, A], state S) (A, error) {
	actions, err := game.RequireInProgress(g, state)
	if err != nil {
		var zero A
		return zero, err
	}

	r.begin(r.Name())
	defer r.finish()

	return actions[r.intn(len(actions))], nil
}
