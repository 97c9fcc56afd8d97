package experiments

import (
	"fmt"
	"sort"
	"strings"

	"boardgameai/experiments/metrics"

	"gonum.org/v1/gonum/stat"
)

// Throughput is the search speed of one strategy over all its recorded moves
type Throughput struct {
	Strategy       string
	Moves          int
	NodesPerSecond float64
	NodesPerMove   float64
	NodesStdDev    float64
}

// MeasureThroughput groups move records by strategy. Moves that took no
// measurable time are left out of the speed but still counted.
func MeasureThroughput(moves []metrics.MoveRecord) []Throughput {
	nodes := map[string][]float64{}
	speeds := map[string][]float64{}
	for _, m := range moves {
		nodes[m.Strategy] = append(nodes[m.Strategy], float64(m.Nodes))
		if seconds := m.Duration.Seconds(); seconds > 0 {
			speeds[m.Strategy] = append(speeds[m.Strategy], float64(m.Nodes)/seconds)
		}
	}

	throughputs := make([]Throughput, 0, len(nodes))
	for strategy, n := range nodes {
		t := Throughput{
			Strategy:       strategy,
			Moves:          len(n),
			NodesPerSecond: mean(speeds[strategy]),
		}
		t.NodesPerMove, t.NodesStdDev = stat.MeanStdDev(n, nil)
		if len(n) < 2 {
			t.NodesStdDev = 0
		}
		throughputs = append(throughputs, t)
	}
	sort.Slice(throughputs, func(i, j int) bool {
		return throughputs[i].Strategy < throughputs[j].Strategy
	})
	return throughputs
}

func FormatThroughput(throughputs []Throughput) string {
	var sb strings.Builder
	for _, t := range throughputs {
		fmt.Fprintf(&sb, "%s:\t%d moves, %.0f nodes/s, %.1f ± %.1f nodes/move\n",
			t.Strategy, t.Moves, t.NodesPerSecond, t.NodesPerMove, t.NodesStdDev)
	}
	return sb.String()
}
