package engine

import (
	"errors"

	"boardgameai/experiments/metrics"
	"boardgameai/game"
)

const MaxMoves = 10000

var ErrMaxMoves = errors.New("move limit reached")

type Engine interface {
	// Run plays a match until the game ends or the move limit is reached
	Run() (Result, error)
}

type Result struct {
	Status       game.Status
	Game         metrics.GameMetric
	Moves        []metrics.MoveMetric // Only for strategies that report metrics
	Player1Moves int
	Player2Moves int
}

// Update is passed to the observer after every move
type Update[S any, A comparable] struct {
	Step   int
	Player game.Player // Player who moved
	Action A
	State  S // State after the move
}
