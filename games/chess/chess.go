package chess

import (
	"fmt"

	"boardgameai/game"
	"boardgameai/searcher"

	"github.com/notnil/chess"
)

// MaxFullMoves is the length after which an unfinished game is a draw
const MaxFullMoves = 50

// Action is a move as origin, destination and promotion piece
type Action struct {
	From  chess.Square
	To    chess.Square
	Promo chess.PieceType
}

func actionOf(m *chess.Move) Action {
	return Action{From: m.S1(), To: m.S2(), Promo: m.Promo()}
}

// String returns the action in UCI notation, e.g. e2e4 or a7a8q
func (a Action) String() string {
	s := a.From.String() + a.To.String()
	if a.Promo != chess.NoPieceType {
		s += a.Promo.String()
	}
	return s
}

// State wraps an immutable position. Positions are only ever replaced by
// Position.Update, which copies.
type State struct {
	Position  *chess.Position
	FullMoves int // Moves completed by Black
}

// Chess implements game.Game with White as Player1
type Chess struct{}

func New() Chess {
	return Chess{}
}

func (Chess) Name() string {
	return "Chess"
}

func (Chess) Init() State {
	return State{Position: chess.StartingPosition()}
}

func (Chess) Player(s State) game.Player {
	return playerOf(s.Position.Turn())
}

func (Chess) Actions(s State) []Action {
	moves := s.Position.ValidMoves()
	actions := make([]Action, len(moves))
	for i, m := range moves {
		actions[i] = actionOf(m)
	}
	return actions
}

// Play panics if the action is not a valid move of the position
func (Chess) Play(a Action, s State) State {
	m := find(s.Position, a)
	if m == nil {
		panic(fmt.Sprintf("move %s is not valid in %s", a, s.Position))
	}

	next := State{Position: s.Position.Update(m), FullMoves: s.FullMoves}
	if s.Position.Turn() == chess.Black {
		next.FullMoves++
	}
	return next
}

func (Chess) Status(s State) game.Status {
	switch s.Position.Status() {
	case chess.NoMethod:
		if s.FullMoves > MaxFullMoves {
			return game.Draw
		}
		return game.InProgress
	case chess.Checkmate:
		// The side to move is mated
		return game.WinFor(playerOf(s.Position.Turn()).Other())
	default:
		return game.Draw
	}
}

func find(pos *chess.Position, a Action) *chess.Move {
	for _, m := range pos.ValidMoves() {
		if actionOf(m) == a {
			return m
		}
	}
	return nil
}

func playerOf(c chess.Color) game.Player {
	if c == chess.White {
		return game.Player1
	}
	return game.Player2
}

func colorOf(p game.Player) chess.Color {
	if p == game.Player1 {
		return chess.White
	}
	return chess.Black
}

// FromFEN starts a game from a FEN position
func FromFEN(fen string) (State, error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return State{}, fmt.Errorf("failed to parse FEN %q: %w", fen, err)
	}
	return State{Position: chess.NewGame(option).Position()}, nil
}

// ParseAction decodes a UCI move, e.g. e2e4, in the given state
func ParseAction(s State, uci string) (Action, error) {
	m, err := chess.UCINotation{}.Decode(s.Position, uci)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %s", game.ErrPrecondition, err)
	}
	if find(s.Position, actionOf(m)) == nil {
		return Action{}, fmt.Errorf("%w: move %s is not valid", game.ErrPrecondition, uci)
	}
	return actionOf(m), nil
}

var pieceValues = map[chess.PieceType]float64{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

const mateScore = 1000

// Heuristic is the material balance for the perspective, with mates scored
// far beyond any material difference.
func Heuristic() searcher.Heuristic[State, Action] {
	return searcher.HeuristicFunc[State, Action](func(g game.Game[State, Action], s State, perspective game.Player) float64 {
		status := g.Status(s)
		if winner, ok := status.Winner(); ok {
			if winner == perspective {
				return mateScore
			}
			return -mateScore
		}
		if status == game.Draw {
			return 0
		}

		me := colorOf(perspective)
		score := 0.0
		for _, piece := range s.Position.Board().SquareMap() {
			value := pieceValues[piece.Type()]
			if piece.Color() == me {
				score += value
			} else {
				score -= value
			}
		}
		return score
	})
}

func Strategies() searcher.Registry[State, Action] {
	return searcher.DefaultRegistry(Heuristic())
}

// String draws the board with White at the bottom
func (s State) String() string {
	return s.Position.Board().Draw()
}
