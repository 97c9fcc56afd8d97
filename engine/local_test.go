package engine

import (
	"errors"
	"testing"

	"boardgameai/game"
	"boardgameai/games/tictactoe"
	"boardgameai/searcher"

	"github.com/stretchr/testify/require"
)

type ttt = tictactoe.State

// fixedStrategy always plays the same cell
type fixedStrategy struct {
	cell tictactoe.Action
}

func (f fixedStrategy) Name() string {
	return "Fixed"
}

func (f fixedStrategy) SelectAction(game.Game[ttt, tictactoe.Action], ttt) (tictactoe.Action, error) {
	return f.cell, nil
}

type failingStrategy struct{}

var errBroken = errors.New("broken")

func (failingStrategy) Name() string {
	return "Failing"
}

func (failingStrategy) SelectAction(game.Game[ttt, tictactoe.Action], ttt) (tictactoe.Action, error) {
	return 0, errBroken
}

func TestLocalEngineRun(t *testing.T) {
	g := tictactoe.New()

	t.Run("playing random strategies to the end", func(t *testing.T) {
		e := LocalEngine[ttt, tictactoe.Action](g,
			searcher.NewRandom[ttt, tictactoe.Action](searcher.WithSeed(1)),
			searcher.NewRandom[ttt, tictactoe.Action](searcher.WithSeed(2)),
		)

		result, err := e.Run()

		require.NoError(t, err)
		require.True(t, result.Status.Terminal())
		require.Equal(t, g.Status(e.State), result.Status, "Engine should keep the final state")
		require.Equal(t, result.Status.String(), result.Game.Status)
		require.Equal(t, "Tic-Tac-Toe", result.Game.Game)
		require.Equal(t, result.Player1Moves+result.Player2Moves, result.Game.TotalMoves)
		require.Contains(t, []int{0, 1}, result.Player1Moves-result.Player2Moves, "Player1 moves first")
		require.False(t, result.Game.EndTime.Before(result.Game.StartTime))
		require.Empty(t, result.Moves, "Strategies without metrics should not report moves")
	})

	t.Run("notifying the observer after every move", func(t *testing.T) {
		e := LocalEngine[ttt, tictactoe.Action](g,
			searcher.NewRandom[ttt, tictactoe.Action](searcher.WithSeed(3)),
			searcher.NewRandom[ttt, tictactoe.Action](searcher.WithSeed(4)),
		)
		var updates []Update[ttt, tictactoe.Action]
		e.Observer = func(u Update[ttt, tictactoe.Action]) {
			updates = append(updates, u)
		}

		result, err := e.Run()

		require.NoError(t, err)
		require.Len(t, updates, result.Game.TotalMoves)
		for i, u := range updates {
			require.Equal(t, i+1, u.Step)
			require.Equal(t, game.Player(i%2), u.Player, "Players should alternate")
			require.NotEqual(t, tictactoe.Empty, u.State.Board[u.Action], "Update should carry the state after the move")
		}
		require.Equal(t, e.State, updates[len(updates)-1].State)
	})

	t.Run("collecting search metrics", func(t *testing.T) {
		e := LocalEngine[ttt, tictactoe.Action](g,
			searcher.NewMCTS[ttt, tictactoe.Action](searcher.WithPlayouts(10), searcher.WithSeed(1), searcher.WithMetrics()),
			searcher.NewRandom[ttt, tictactoe.Action](searcher.WithSeed(1)),
		)

		result, err := e.Run()

		require.NoError(t, err)
		require.Len(t, result.Moves, result.Player1Moves)
		for _, m := range result.Moves {
			require.Equal(t, 1, m.Player)
			require.Equal(t, "MCTS", m.Strategy)
			require.Equal(t, 10, m.Episodes)
		}
	})

	t.Run("starting from a given state", func(t *testing.T) {
		start, err := tictactoe.Parse("XX_ OO_ XO_")
		require.NoError(t, err)
		e := LocalEngine[ttt, tictactoe.Action](g, fixedStrategy{cell: 2}, fixedStrategy{cell: 5})
		e.State = start

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Player1Win, result.Status)
		require.Equal(t, 1, result.Game.TotalMoves)
	})

	t.Run("rejecting an illegal action", func(t *testing.T) {
		e := LocalEngine[ttt, tictactoe.Action](g, fixedStrategy{cell: 4}, fixedStrategy{cell: 4})

		_, err := e.Run()

		require.ErrorIs(t, err, game.ErrPrecondition)
	})

	t.Run("propagating strategy errors", func(t *testing.T) {
		e := LocalEngine[ttt, tictactoe.Action](g, failingStrategy{}, fixedStrategy{cell: 0})

		_, err := e.Run()

		require.ErrorIs(t, err, errBroken)
	})

	t.Run("stopping at the move limit", func(t *testing.T) {
		e := LocalEngine[ttt, tictactoe.Action](g,
			searcher.NewRandom[ttt, tictactoe.Action](searcher.WithSeed(1)),
			searcher.NewRandom[ttt, tictactoe.Action](searcher.WithSeed(2)),
		)
		e.MaxMoves = 3

		result, err := e.Run()

		require.ErrorIs(t, err, ErrMaxMoves)
		require.Equal(t, game.InProgress, result.Status)
		require.Equal(t, 3, result.Game.TotalMoves)
	})
}
