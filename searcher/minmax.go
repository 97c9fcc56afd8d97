package searcher

import (
	"math"

	"boardgameai/game"
)

// MinMax is a depth-limited minimax search with optional alpha-beta pruning.
// Pruning never changes the chosen action, only the number of visited nodes.
type MinMax[S any, A comparable] struct {
	base
	heuristic Heuristic[S, A]
}

// window holds the alpha-beta bounds. It is passed by value so that every
// child starts from its parent's current bounds.
type window struct {
	alpha float64
	beta  float64
}

func fullWindow() window {
	return window{alpha: math.Inf(-1), beta: math.Inf(1)}
}

func NewMinMax[S any, A comparable](heuristic Heuristic[S, A], options ...Option) *MinMax[S, A] {
	return &MinMax[S, A]{
		base:      newBase(options),
		heuristic: heuristic,
	}
}

func (m *MinMax[S, A]) Name() string {
	if m.alphaBeta {
		return "MinMaxAB"
	}
	return "MinMax"
}

// SelectAction scores every root action on the state after playing it, with
// the full depth budget, and returns the first action with the best score.
func (m *MinMax[S, A]) SelectAction(g game.Game[S, A], state S) (A, error) {
	actions, err := game.RequireInProgress(g, state)
	if err != nil {
		var zero A
		return zero, err
	}

	m.begin(m.Name())
	defer m.finish()

	me := g.Player(state)
	best := actions[0]
	bestScore := math.Inf(-1)
	for _, action := range actions {
		score := m.evaluate(g, g.Play(action, state), m.depth, fullWindow(), me)
		if greater(score, bestScore) {
			best = action
			bestScore = score
		}
	}
	return best, nil
}

func (m *MinMax[S, A]) evaluate(g game.Game[S, A], state S, depth int, w window, maxPlayer game.Player) float64 {
	m.collector.AddNode()

	if depth == 0 || g.Status(state).Terminal() {
		return m.heuristic.Evaluate(g, state, maxPlayer)
	}

	actions := g.Actions(state)

	if g.Player(state) == maxPlayer {
		value := math.Inf(-1)
		for _, action := range actions {
			score := m.evaluate(g, g.Play(action, state), depth-1, w, maxPlayer)
			if greater(score, value) {
				value = score
			}
			if m.alphaBeta {
				if greater(value, w.alpha) {
					w.alpha = value
				}
				if w.alpha >= w.beta {
					break
				}
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, action := range actions {
		score := m.evaluate(g, g.Play(action, state), depth-1, w, maxPlayer)
		if less(score, value) {
			value = score
		}
		if m.alphaBeta {
			if less(value, w.beta) {
				w.beta = value
			}
			if w.beta <= w.alpha {
				break
			}
		}
	}
	return value
}
