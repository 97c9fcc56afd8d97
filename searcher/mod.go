package searcher

import (
	"errors"
	"fmt"
	"math"

	"boardgameai/experiments/metrics"
	"boardgameai/game"
)

// Rewards credited to MCTS nodes during backup
const (
	Win        = 1.0
	Loss       = 0.0
	DrawReward = 0.5
)

// ErrNaNScore is the panic value raised when a heuristic produced NaN
var ErrNaNScore = errors.New("cannot compare NaN score")

// Strategy chooses an action for the player to move. SelectAction must
// return an element of g.Actions(state) and fails with game.ErrPrecondition
// on a terminal state.
type Strategy[S any, A comparable] interface {
	Name() string
	SelectAction(g game.Game[S, A], state S) (A, error)
}

// Configurable strategies accept runtime configuration, e.g. from benchmark
// test definitions.
type Configurable interface {
	Configure(conf Config) error
}

// Reporter strategies expose the metrics of their last search
type Reporter interface {
	LastMetric() metrics.SearchMetric
}

// Heuristic scores a state from the perspective of a player, higher is
// better. It must be a pure function of its inputs.
type Heuristic[S any, A comparable] interface {
	Evaluate(g game.Game[S, A], state S, perspective game.Player) float64
}

type HeuristicFunc[S any, A comparable] func(g game.Game[S, A], state S, perspective game.Player) float64

func (f HeuristicFunc[S, A]) Evaluate(g game.Game[S, A], state S, perspective game.Player) float64 {
	return f(g, state, perspective)
}

// Outcome scores finished games only: +1 for a win, -1 for a loss and 0 for
// draws and unfinished states.
func Outcome[S any, A comparable]() Heuristic[S, A] {
	return HeuristicFunc[S, A](func(g game.Game[S, A], state S, perspective game.Player) float64 {
		winner, ok := g.Status(state).Winner()
		switch {
		case !ok:
			return 0
		case winner == perspective:
			return 1
		default:
			return -1
		}
	})
}

func mustCompare(a, b float64) {
	if math.IsNaN(a) || math.IsNaN(b) {
		panic(fmt.Errorf("%w: %v vs %v", ErrNaNScore, a, b))
	}
}

func greater(a, b float64) bool {
	mustCompare(a, b)
	return a > b
}

func less(a, b float64) bool {
	mustCompare(a, b)
	return a < b
}
