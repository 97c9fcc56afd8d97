package engine

import (
	"fmt"
	"time"

	"boardgameai/experiments/metrics"
	"boardgameai/game"
	"boardgameai/searcher"

	"github.com/rs/zerolog/log"
)

// Local runs a match between two strategies in the current goroutine
type Local[S any, A comparable] struct {
	Game       game.Game[S, A]
	State      S // Starting state, then the latest state once Run returns
	Strategies [2]searcher.Strategy[S, A]
	MaxMoves   int
	Observer   func(Update[S, A])
}

func LocalEngine[S any, A comparable](g game.Game[S, A], p1, p2 searcher.Strategy[S, A]) *Local[S, A] {
	return &Local[S, A]{
		Game:       g,
		State:      g.Init(),
		Strategies: [2]searcher.Strategy[S, A]{p1, p2},
		MaxMoves:   MaxMoves,
	}
}

// Run executes the game loop. Every action is checked against the legal
// actions before it is played.
func (e *Local[S, A]) Run() (Result, error) {
	g := e.Game
	var (
		result  Result
		elapsed [2]time.Duration
		counts  [2]int
	)
	result.Game = metrics.GameMetric{
		Game:      g.Name(),
		StartTime: time.Now(),
	}

	log.Info().Msgf("starting %s: %s vs %s", g.Name(), e.Strategies[0].Name(), e.Strategies[1].Name())

	status := g.Status(e.State)
	step := 0
	for !status.Terminal() {
		if step >= e.MaxMoves {
			e.complete(&result, status, elapsed, counts)
			return result, fmt.Errorf("%w: %d moves in %s", ErrMaxMoves, step, g.Name())
		}
		step++

		player := g.Player(e.State)
		strategy := e.Strategies[player]

		start := time.Now()
		action, err := strategy.SelectAction(g, e.State)
		duration := time.Since(start)
		if err != nil {
			return result, fmt.Errorf("%s failed to select an action for %s: %w", strategy.Name(), player, err)
		}

		next, err := game.PlayChecked(g, action, e.State)
		if err != nil {
			return result, fmt.Errorf("%s played an illegal action: %w", strategy.Name(), err)
		}

		elapsed[player] += duration
		counts[player]++
		if r, ok := strategy.(searcher.Reporter); ok {
			if metric := r.LastMetric(); metric.Strategy != "" {
				result.Moves = append(result.Moves, metrics.MoveMetric{
					Step:         step,
					Player:       int(player) + 1,
					SearchMetric: metric,
				})
			}
		}

		e.State = next
		status = g.Status(next)
		log.Debug().Msgf("move %d: %s played %v in %s", step, player, action, duration)

		if e.Observer != nil {
			e.Observer(Update[S, A]{Step: step, Player: player, Action: action, State: next})
		}
	}

	e.complete(&result, status, elapsed, counts)
	log.Info().Msgf("%s finished after %d moves: %s", g.Name(), step, status)
	return result, nil
}

func (e *Local[S, A]) complete(result *Result, status game.Status, elapsed [2]time.Duration, counts [2]int) {
	result.Status = status
	result.Player1Moves = counts[game.Player1]
	result.Player2Moves = counts[game.Player2]
	result.Game.Status = status.String()
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
	result.Game.TotalMoves = counts[0] + counts[1]
	result.Game.Player1Time = elapsed[game.Player1]
	result.Game.Player2Time = elapsed[game.Player2]
}
