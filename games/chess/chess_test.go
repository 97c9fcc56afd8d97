package chess

import (
	"testing"

	"boardgameai/game"
	"boardgameai/searcher"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

// play applies UCI moves from s
func play(t *testing.T, s State, moves ...string) State {
	t.Helper()
	g := New()
	for _, uci := range moves {
		a, err := ParseAction(s, uci)
		require.NoError(t, err, uci)
		s = g.Play(a, s)
	}
	return s
}

func TestRules(t *testing.T) {
	g := New()

	t.Run("starting position", func(t *testing.T) {
		s := g.Init()
		require.Equal(t, game.Player1, g.Player(s), "White should move first")
		require.Len(t, g.Actions(s), 20)
		require.Equal(t, game.InProgress, g.Status(s))
	})

	t.Run("playing leaves the input untouched", func(t *testing.T) {
		s := g.Init()
		before := s.Position.String()

		next := play(t, s, "e2e4")

		require.Equal(t, before, s.Position.String())
		require.Equal(t, game.Player2, g.Player(next))
		require.Equal(t, 0, next.FullMoves, "Full moves count after Black moves")
		require.Equal(t, 1, play(t, next, "e7e5").FullMoves)
	})

	t.Run("fool's mate", func(t *testing.T) {
		s := play(t, g.Init(), "f2f3", "e7e5", "g2g4", "d8h4")
		require.Equal(t, game.Player2Win, g.Status(s))
	})

	t.Run("stalemate is a draw", func(t *testing.T) {
		s, err := FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
		require.NoError(t, err)
		require.Equal(t, game.Draw, g.Status(s))
	})

	t.Run("long games are drawn", func(t *testing.T) {
		s := g.Init()
		s.FullMoves = MaxFullMoves
		require.Equal(t, game.InProgress, g.Status(s))
		s.FullMoves = MaxFullMoves + 1
		require.Equal(t, game.Draw, g.Status(s))
	})

	t.Run("promotion actions are distinct", func(t *testing.T) {
		s, err := FromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
		require.NoError(t, err)
		promotions := 0
		for _, a := range g.Actions(s) {
			if a.From == chess.A7 {
				promotions++
			}
		}
		require.Equal(t, 4, promotions)

		next := play(t, s, "a7a8n")
		require.Equal(t, chess.WhiteKnight, next.Position.Board().Piece(chess.A8))
	})

	t.Run("rejecting invalid moves", func(t *testing.T) {
		_, err := ParseAction(g.Init(), "e2e5")
		require.ErrorIs(t, err, game.ErrPrecondition)

		_, err = game.PlayChecked[State, Action](g, Action{From: chess.E2, To: chess.E5}, g.Init())
		require.ErrorIs(t, err, game.ErrPrecondition)

		require.Panics(t, func() {
			g.Play(Action{From: chess.E2, To: chess.E5}, g.Init())
		})
	})

	t.Run("rejecting invalid FEN", func(t *testing.T) {
		_, err := FromFEN("not a position")
		require.Error(t, err)
	})

	t.Run("actions print as UCI", func(t *testing.T) {
		require.Equal(t, "e2e4", Action{From: chess.E2, To: chess.E4}.String())
		require.Equal(t, "a7a8q", Action{From: chess.A7, To: chess.A8, Promo: chess.Queen}.String())
	})
}

func TestHeuristic(t *testing.T) {
	g := New()
	h := Heuristic()

	t.Run("balanced material at the start", func(t *testing.T) {
		require.Equal(t, 0.0, h.Evaluate(g, g.Init(), game.Player1))
	})

	t.Run("counting a captured pawn", func(t *testing.T) {
		s := play(t, g.Init(), "e2e4", "d7d5", "e4d5")
		require.Equal(t, 1.0, h.Evaluate(g, s, game.Player1))
		require.Equal(t, -1.0, h.Evaluate(g, s, game.Player2))
	})

	t.Run("mate outweighs material", func(t *testing.T) {
		s := play(t, g.Init(), "f2f3", "e7e5", "g2g4", "d8h4")
		require.Equal(t, float64(mateScore), h.Evaluate(g, s, game.Player2))
		require.Equal(t, -float64(mateScore), h.Evaluate(g, s, game.Player1))
	})
}

func TestStrategies(t *testing.T) {
	g := New()
	registry := Strategies()

	t.Run("every strategy returns a valid move", func(t *testing.T) {
		s := play(t, g.Init(), "e2e4", "e7e5")
		for _, name := range registry.Names() {
			strategy, err := registry.New(name, searcher.WithSeed(1), searcher.WithDepth(1), searcher.WithPlayouts(4))
			require.NoError(t, err)
			action, err := strategy.SelectAction(g, s)
			require.NoError(t, err)
			require.True(t, game.IsLegal[State, Action](g, s, action), "%s chose invalid move %s", name, action)
		}
	})

	t.Run("minimax finds mate in one", func(t *testing.T) {
		s := play(t, g.Init(), "f2f3", "e7e5", "g2g4")
		for _, name := range []string{"MinMax", "MinMaxAB", "IterativeMinMax"} {
			strategy, err := registry.New(name, searcher.WithDepth(0))
			require.NoError(t, err)
			action, err := strategy.SelectAction(g, s)
			require.NoError(t, err)
			require.Equal(t, "d8h4", action.String(), name)
		}
	})

	t.Run("minimax takes a hanging queen", func(t *testing.T) {
		s, err := FromFEN("4k3/8/8/3q4/8/8/8/3QK3 w - - 0 1")
		require.NoError(t, err)
		strategy, err := registry.New("MinMaxAB", searcher.WithDepth(1))
		require.NoError(t, err)
		action, err := strategy.SelectAction(g, s)
		require.NoError(t, err)
		require.Equal(t, "d1d5", action.String())
	})

	t.Run("random games end within the move limit", func(t *testing.T) {
		p1 := searcher.NewRandom[State, Action](searcher.WithSeed(1))
		p2 := searcher.NewRandom[State, Action](searcher.WithSeed(2))
		s := g.Init()
		plies := 0
		for !g.Status(s).Terminal() {
			strategy := searcher.Strategy[State, Action](p1)
			if g.Player(s) == game.Player2 {
				strategy = p2
			}
			action, err := strategy.SelectAction(g, s)
			require.NoError(t, err)
			s = g.Play(action, s)
			plies++
		}
		require.LessOrEqual(t, plies, 2*MaxFullMoves+2)
	})
}
