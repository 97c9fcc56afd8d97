package tictactoe

import (
	"fmt"
	"strings"

	"boardgameai/game"
	"boardgameai/searcher"
)

type Cell int

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Action is the index of the cell to mark, row by row from 0 to 8
type Action int

type State struct {
	Board [9]Cell
	Turn  game.Player
}

var lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// TicTacToe implements game.Game. Player1 plays X and moves first.
type TicTacToe struct{}

func New() TicTacToe {
	return TicTacToe{}
}

func (TicTacToe) Name() string {
	return "Tic-Tac-Toe"
}

func (TicTacToe) Init() State {
	return State{Turn: game.Player1}
}

func (TicTacToe) Player(s State) game.Player {
	return s.Turn
}

func (TicTacToe) Actions(s State) []Action {
	actions := make([]Action, 0, len(s.Board))
	for i, c := range s.Board {
		if c == Empty {
			actions = append(actions, Action(i))
		}
	}
	return actions
}

// Play marks the cell for the player to move. The board is an array, so the
// input state is left untouched.
func (TicTacToe) Play(a Action, s State) State {
	if a < 0 || int(a) >= len(s.Board) || s.Board[a] != Empty {
		panic(fmt.Sprintf("cell %d is not playable", a))
	}
	s.Board[a] = mark(s.Turn)
	s.Turn = s.Turn.Other()
	return s
}

func (TicTacToe) Status(s State) game.Status {
	for _, line := range lines {
		c := s.Board[line[0]]
		if c != Empty && s.Board[line[1]] == c && s.Board[line[2]] == c {
			if c == X {
				return game.Player1Win
			}
			return game.Player2Win
		}
	}
	for _, c := range s.Board {
		if c == Empty {
			return game.InProgress
		}
	}
	return game.Draw
}

func mark(p game.Player) Cell {
	if p == game.Player1 {
		return X
	}
	return O
}

// Heuristic scores finished games +1/-1/0. Unfinished positions get a small
// score from the lines still open to each side, so it never outweighs a
// forced result.
func Heuristic() searcher.Heuristic[State, Action] {
	return searcher.HeuristicFunc[State, Action](func(g game.Game[State, Action], s State, perspective game.Player) float64 {
		status := g.Status(s)
		if winner, ok := status.Winner(); ok {
			if winner == perspective {
				return 1
			}
			return -1
		}
		if status == game.Draw {
			return 0
		}

		mine, theirs := mark(perspective), mark(perspective.Other())
		open := 0
		for _, line := range lines {
			hasMine, hasTheirs := false, false
			for _, i := range line {
				hasMine = hasMine || s.Board[i] == mine
				hasTheirs = hasTheirs || s.Board[i] == theirs
			}
			switch {
			case hasMine && !hasTheirs:
				open++
			case hasTheirs && !hasMine:
				open--
			}
		}
		return float64(open) / 10
	})
}

// Strategies returns every strategy, with Heuristic for the minimax variants
func Strategies() searcher.Registry[State, Action] {
	return searcher.DefaultRegistry(Heuristic())
}

// String renders the board, showing free cells by their action index
func (s State) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("\n-----\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			i := row*3 + col
			if s.Board[i] == Empty {
				fmt.Fprintf(&sb, "%d", i)
			} else {
				sb.WriteString(s.Board[i].String())
			}
		}
	}
	return sb.String()
}

// Parse reads a board of 9 cells, row by row, using X, O and '.' or '_' for
// empty cells. Whitespace and '|' separators are ignored. The player to move
// is derived from the number of marks.
func Parse(board string) (State, error) {
	var s State
	i, crosses, noughts := 0, 0, 0
	for _, r := range board {
		switch r {
		case ' ', '\n', '\t', '|', '/':
			continue
		}
		if i >= len(s.Board) {
			return State{}, fmt.Errorf("board %q has more than 9 cells", board)
		}
		switch r {
		case 'X', 'x':
			s.Board[i] = X
			crosses++
		case 'O', 'o':
			s.Board[i] = O
			noughts++
		case '.', '_':
		default:
			return State{}, fmt.Errorf("unexpected cell %q in board %q", r, board)
		}
		i++
	}
	if i != len(s.Board) {
		return State{}, fmt.Errorf("board %q has %d cells, expected 9", board, i)
	}

	switch crosses - noughts {
	case 0:
		s.Turn = game.Player1
	case 1:
		s.Turn = game.Player2
	default:
		return State{}, fmt.Errorf("board %q has %d X and %d O", board, crosses, noughts)
	}
	return s, nil
}
