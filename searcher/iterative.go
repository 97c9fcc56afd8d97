package searcher

import (
	"fmt"

	"boardgameai/game"
)

// IterativeMinMax computes the unpruned minimax decision without recursion.
// The tree is explored depth-first from an explicit node stack; leaf scores
// go to a score stack and are coalesced layer by layer into their parents.
// Every pending entry carries the root action of its branch, since only the
// root decision is needed.
type IterativeMinMax[S any, A comparable] struct {
	base
	heuristic Heuristic[S, A]
}

type pendingNode[S any, A comparable] struct {
	state  S
	action A // Root action of the branch
	depth  int
}

type pendingScore[A comparable] struct {
	action A
	score  float64
	depth  int
	player game.Player // Player who moved into the scored node
}

func NewIterativeMinMax[S any, A comparable](heuristic Heuristic[S, A], options ...Option) *IterativeMinMax[S, A] {
	return &IterativeMinMax[S, A]{
		base:      newBase(options),
		heuristic: heuristic,
	}
}

func (m *IterativeMinMax[S, A]) Name() string {
	return "IterativeMinMax"
}

func (m *IterativeMinMax[S, A]) SelectAction(g game.Game[S, A], state S) (A, error) {
	actions, err := game.RequireInProgress(g, state)
	if err != nil {
		var zero A
		return zero, err
	}

	m.begin(m.Name())
	defer m.finish()

	me := g.Player(state)

	// Children are pushed in reverse so they are popped in enumeration order
	nodes := make([]pendingNode[S, A], 0, len(actions))
	for i := len(actions) - 1; i >= 0; i-- {
		nodes = append(nodes, pendingNode[S, A]{
			state:  g.Play(actions[i], state),
			action: actions[i],
			depth:  1,
		})
	}

	var scores []pendingScore[A]
	for len(nodes) > 0 {
		node := nodes[len(nodes)-1]
		nodes = nodes[:len(nodes)-1]

		scores = coalesce(scores, node.depth, me)
		m.collector.AddNode()

		if g.Status(node.state).Terminal() || node.depth > m.depth {
			scores = append(scores, pendingScore[A]{
				action: node.action,
				score:  m.heuristic.Evaluate(g, node.state, me),
				depth:  node.depth,
				player: g.Player(node.state).Other(),
			})
			continue
		}

		children := g.Actions(node.state)
		for i := len(children) - 1; i >= 0; i-- {
			nodes = append(nodes, pendingNode[S, A]{
				state:  g.Play(children[i], node.state),
				action: node.action,
				depth:  node.depth + 1,
			})
		}
	}

	return resolve(scores, me).action, nil
}

// coalesce collapses the deepest run of sibling scores into a single score
// one layer up, until no score is deeper than depth. The run is chosen by the
// player who moves at the parent: maxPlayer maximizes, the opponent
// minimizes, and ties keep the earliest score.
func coalesce[A comparable](scores []pendingScore[A], depth int, maxPlayer game.Player) []pendingScore[A] {
	for len(scores) > 0 && scores[len(scores)-1].depth > depth {
		deepest := scores[len(scores)-1].depth
		start := len(scores) - 1
		for start > 0 && scores[start-1].depth == deepest {
			start--
		}

		best := scores[start]
		for _, s := range scores[start+1:] {
			if best.player == maxPlayer && greater(s.score, best.score) ||
				best.player != maxPlayer && less(s.score, best.score) {
				best = s
			}
		}

		scores = append(scores[:start], pendingScore[A]{
			action: best.action,
			score:  best.score,
			depth:  deepest - 1,
			player: best.player.Other(),
		})
	}
	return scores
}

// resolve coalesces everything down to the root. Exactly one score must
// remain, anything else is a bug in the search.
func resolve[A comparable](scores []pendingScore[A], maxPlayer game.Player) pendingScore[A] {
	scores = coalesce(scores, 0, maxPlayer)
	if len(scores) != 1 || scores[0].depth != 0 {
		panic(fmt.Sprintf("iterative minmax ended with %d scores, expected exactly one at depth 0", len(scores)))
	}
	return scores[0]
}
