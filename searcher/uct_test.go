package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCT(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		got := uct(5.0, 9, 99)

		expected := 5.0/10 + math.Sqrt(CSquared*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute w/(n+1) + sqrt(c^2*ln(N+1)/(n+1))")
	})

	t.Run("defined for unvisited children and parents", func(t *testing.T) {
		require.Equal(t, 0.0, uct(0, 0, 0), "Should be zero before the first playout")
		require.False(t, math.IsNaN(uct(0, 0, 1)))
		require.False(t, math.IsInf(uct(0, 0, 1), 0))
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		score1 := uct(5.0, 10, 100)
		score2 := uct(5.0, 10, 1000)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		score1 := uct(5.0, 10, 100)
		score2 := uct(5.0, 20, 100)

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with wins", func(t *testing.T) {
		score1 := uct(5.0, 10, 100)
		score2 := uct(10.0, 10, 100)

		require.Greater(t, score2, score1,
			"More wins should increase exploitation term")
	})
}
