package experiments

import (
	"fmt"
	"strings"
	"time"

	"boardgameai/engine"
	"boardgameai/experiments/metrics"
	"boardgameai/game"

	"gonum.org/v1/gonum/stat"
)

type Match struct {
	Index           int
	Player1Strategy string
	Player2Strategy string
	Result          engine.Result
}

type PlayerStats struct {
	Strategy    string
	Wins        int
	AvgMoveTime time.Duration // Mean over matches of the player's time per move
	AvgWinMoves float64       // Mean length of the matches the player won
}

type Result struct {
	Test    Test
	Matches []Match
	Draws   int
	Player1 PlayerStats
	Player2 PlayerStats
}

func aggregate(test Test, matches []Match) Result {
	result := Result{Test: test, Matches: matches}
	if len(matches) > 0 {
		result.Player1.Strategy = matches[0].Player1Strategy
		result.Player2.Strategy = matches[0].Player2Strategy
	}

	var moveTimes [2][]float64
	var winMoves [2][]float64
	for _, m := range matches {
		r := m.Result
		if r.Player1Moves > 0 {
			moveTimes[game.Player1] = append(moveTimes[game.Player1], float64(r.Game.Player1Time)/float64(r.Player1Moves))
		}
		if r.Player2Moves > 0 {
			moveTimes[game.Player2] = append(moveTimes[game.Player2], float64(r.Game.Player2Time)/float64(r.Player2Moves))
		}

		winner, ok := r.Status.Winner()
		if !ok {
			result.Draws++
			continue
		}
		winMoves[winner] = append(winMoves[winner], float64(r.Game.TotalMoves))
	}

	for p, stats := range []*PlayerStats{&result.Player1, &result.Player2} {
		stats.Wins = len(winMoves[p])
		stats.AvgMoveTime = time.Duration(mean(moveTimes[p]))
		stats.AvgWinMoves = mean(winMoves[p])
	}
	return result
}

// mean is zero for an empty sample
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func (r Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", r.Test.Label, r.Test.Game)
	fmt.Fprintf(&sb, "Match count:\t%d\n", len(r.Matches))
	fmt.Fprintf(&sb, "Draws:\t\t%d\n", r.Draws)
	for i, stats := range []PlayerStats{r.Player1, r.Player2} {
		fmt.Fprintf(&sb, "Player %d (%s):\n", i+1, stats.Strategy)
		fmt.Fprintf(&sb, "\tAvg Move Time:\t%s\n", stats.AvgMoveTime)
		fmt.Fprintf(&sb, "\tAvg Win Moves:\t%.2f\n", stats.AvgWinMoves)
		fmt.Fprintf(&sb, "\tNum Wins:\t%d\n", stats.Wins)
	}
	return sb.String()
}

func (r Result) Record() metrics.TestRecord {
	return metrics.TestRecord{
		Label:           r.Test.Label,
		Game:            r.Test.Game,
		Player1Strategy: r.Player1.Strategy,
		Player2Strategy: r.Player2.Strategy,
		Matches:         len(r.Matches),
		Player1Wins:     r.Player1.Wins,
		Player2Wins:     r.Player2.Wins,
		Draws:           r.Draws,
		Player1MoveTime: r.Player1.AvgMoveTime,
		Player2MoveTime: r.Player2.AvgMoveTime,
		Player1WinMoves: r.Player1.AvgWinMoves,
		Player2WinMoves: r.Player2.AvgWinMoves,
	}
}

// Records flattens the results into CSV records. Game IDs are numbered from 1
// across all results.
func Records(results []Result) ([]metrics.TestRecord, []metrics.GameRecord, []metrics.MoveRecord) {
	tests := []metrics.TestRecord{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	count := 0
	for _, r := range results {
		tests = append(tests, r.Record())
		for _, m := range r.Matches {
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:              count,
				Test:            r.Test.Label,
				Player1Strategy: m.Player1Strategy,
				Player2Strategy: m.Player2Strategy,
				GameMetric:      m.Result.Game,
			})
			for _, mm := range m.Result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
	}
	return tests, gameRecords, moveRecords
}
