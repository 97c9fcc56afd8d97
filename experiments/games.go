package experiments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"boardgameai/engine"
	"boardgameai/game"
	"boardgameai/games/chess"
	"boardgameai/games/tictactoe"
	"boardgameai/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownGame = errors.New("unknown game")

// Runner runs the matches of a test for one game
type Runner interface {
	Run(ctx context.Context, test Test, workers int) (Result, error)
}

var games = map[string]Runner{
	"tic-tac-toe": &benchmarkGame[tictactoe.State, tictactoe.Action]{
		game:       tictactoe.New(),
		strategies: tictactoe.Strategies(),
	},
	"chess": &benchmarkGame[chess.State, chess.Action]{
		game:       chess.New(),
		strategies: chess.Strategies(),
	},
}

func Lookup(name string) (Runner, error) {
	runner, ok := games[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %v", ErrUnknownGame, name, GameNames())
	}
	return runner, nil
}

func GameNames() []string {
	names := make([]string, 0, len(games))
	for name := range games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type benchmarkGame[S any, A comparable] struct {
	game       game.Game[S, A]
	strategies searcher.Registry[S, A]
}

// Run plays test.Iterations independent matches on at most workers
// goroutines. Every match builds its own strategies, so no search state is
// shared between goroutines.
func (b *benchmarkGame[S, A]) Run(ctx context.Context, test Test, workers int) (Result, error) {
	// Fail on bad configurations before starting any match
	for _, conf := range []searcher.Config{test.P1Strat, test.P2Strat} {
		if _, err := b.build(conf, 0); err != nil {
			return Result{}, fmt.Errorf("test %s: %w", test.Label, err)
		}
	}

	matches := make([]Match, test.Iterations)
	group, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	start := time.Now()
	for i := range matches {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			match, err := b.play(test, i)
			if err != nil {
				return fmt.Errorf("test %s match %d: %w", test.Label, i+1, err)
			}
			matches[i] = match
			log.Debug().Msgf("test %s match %d of %d: %s", test.Label, i+1, test.Iterations, match.Result.Status)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	log.Info().Msgf("completed test %s: %d matches in %s", test.Label, test.Iterations, time.Since(start))
	return aggregate(test, matches), nil
}

func (b *benchmarkGame[S, A]) play(test Test, index int) (Match, error) {
	p1, err := b.build(test.P1Strat, index)
	if err != nil {
		return Match{}, err
	}
	p2, err := b.build(test.P2Strat, index)
	if err != nil {
		return Match{}, err
	}

	result, err := engine.LocalEngine(b.game, p1, p2).Run()
	if err != nil {
		return Match{}, err
	}
	return Match{
		Index:           index,
		Player1Strategy: p1.Name(),
		Player2Strategy: p2.Name(),
		Result:          result,
	}, nil
}

func (b *benchmarkGame[S, A]) build(conf searcher.Config, index int) (searcher.Strategy[S, A], error) {
	conf, err := conf.WithSeedOffset(index)
	if err != nil {
		return nil, err
	}
	return b.strategies.Build(conf, searcher.WithMetrics())
}
