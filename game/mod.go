package game

import (
	"errors"
	"fmt"
)

// ErrPrecondition is returned when a caller breaks the game contract, e.g.
// asking for a move in a finished game or playing an illegal action.
var ErrPrecondition = errors.New("precondition violated")

type Player int

const (
	Player1 Player = iota
	Player2
)

// Other returns the opponent of p
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

type Status int

const (
	InProgress Status = iota
	Player1Win
	Player2Win
	Draw
)

// Terminal reports whether the game is over
func (s Status) Terminal() bool {
	return s != InProgress
}

// Winner returns the winning player of a decisive status
func (s Status) Winner() (Player, bool) {
	switch s {
	case Player1Win:
		return Player1, true
	case Player2Win:
		return Player2, true
	default:
		return Player1, false
	}
}

// WinFor returns the decisive status won by p
func WinFor(p Player) Status {
	if p == Player1 {
		return Player1Win
	}
	return Player2Win
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Player1Win:
		return "Player1Win"
	case Player2Win:
		return "Player2Win"
	case Draw:
		return "Draw"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Game is the rule set of a two-player, zero-sum, perfect-information game.
// States are values: Play must return a new state and leave its input valid,
// since searchers keep old states around to explore siblings. Actions must be
// non-empty whenever Status is InProgress.
type Game[S any, A comparable] interface {
	Name() string
	Init() S
	// Player returns whose turn it is
	Player(state S) Player
	// Actions returns the legal moves, in a deterministic order
	Actions(state S) []A
	Play(action A, state S) S
	Status(state S) Status
}
