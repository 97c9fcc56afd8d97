package experiments

import (
	"context"
	"fmt"

	"boardgameai/experiments/metrics"

	"github.com/rs/zerolog/log"
)

const DefaultWorkers = 4

// RunBenchmark runs the tests one after the other, each on a pool of workers
func RunBenchmark(ctx context.Context, tests []Test, workers int) ([]Result, error) {
	results := make([]Result, 0, len(tests))

	log.Info().Msgf("starting benchmark of %d tests with %d workers...", len(tests), workers)

	for i, test := range tests {
		log.Info().Msgf("starting test %d of %d: %s, %v vs %v, %d matches...",
			i+1, len(tests), test.Label, test.P1Strat, test.P2Strat, test.Iterations)

		runner, err := Lookup(test.Game)
		if err != nil {
			return results, err
		}
		result, err := runner.Run(ctx, test, workers)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	log.Info().Msg("completed benchmark")
	return results, nil
}

// WriteResults stores the test, game and move records of a benchmark
func WriteResults(writer *metrics.Writer, results []Result) error {
	tests, games, moves := Records(results)

	err := writer.WriteTestRecords(tests)
	if err != nil {
		return fmt.Errorf("failed to write test records: %w", err)
	}
	log.Info().Msg("stored test records")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return nil
}
