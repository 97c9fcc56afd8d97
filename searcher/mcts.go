package searcher

import (
	"boardgameai/game"
)

// MCTS is a Monte-Carlo tree search with UCT selection, one expansion per
// iteration, random playouts, and a fixed iteration budget. The tree lives
// for a single SelectAction call.
type MCTS[S any, A comparable] struct {
	base
	rollout Strategy[S, A]
}

func NewMCTS[S any, A comparable](options ...Option) *MCTS[S, A] {
	m := &MCTS[S, A]{base: newBase(options)}
	m.resetRollout()
	return m
}

func (m *MCTS[S, A]) Name() string {
	return "MCTS"
}

func (m *MCTS[S, A]) Configure(conf Config) error {
	if err := m.base.Configure(conf); err != nil {
		return err
	}
	m.resetRollout()
	return nil
}

// resetRollout gives the playout policy the same seed as the search
func (m *MCTS[S, A]) resetRollout() {
	if m.seeded {
		m.rollout = NewRandom[S, A](WithSeed(m.seed))
	} else {
		m.rollout = NewRandom[S, A]()
	}
}

// SelectAction returns the most visited root child after the budget is spent
func (m *MCTS[S, A]) SelectAction(g game.Game[S, A], state S) (A, error) {
	t, err := m.search(g, state)
	if err != nil {
		var zero A
		return zero, err
	}
	return t.nodes[t.mostVisited(0)].action, nil
}

func (m *MCTS[S, A]) search(g game.Game[S, A], state S) (*tree[S, A], error) {
	if _, err := game.RequireInProgress(g, state); err != nil {
		return nil, err
	}

	m.begin(m.Name())
	defer m.finish()

	t := newTree(g, state)
	for i := 0; i < m.playouts; i++ {
		if err := m.simulate(g, t); err != nil {
			return nil, err
		}
		m.collector.AddEpisode()
	}
	return t, nil
}

func (m *MCTS[S, A]) simulate(g game.Game[S, A], t *tree[S, A]) error {
	leaf := m.selectThenExpand(g, t)

	result := t.nodes[leaf].status
	if !result.Terminal() {
		var err error
		result, err = m.playout(g, t.nodes[leaf].state)
		if err != nil {
			return err
		}
	}

	t.backup(leaf, result)
	return nil
}

// selectThenExpand descends through fully expanded nodes by UCT and expands
// the first untried action of the node it stops at. Terminal nodes are
// returned as they are.
func (m *MCTS[S, A]) selectThenExpand(g game.Game[S, A], t *tree[S, A]) int {
	current := 0
	for {
		n := &t.nodes[current]
		if n.status.Terminal() {
			return current
		}

		actions := g.Actions(n.state)
		if len(n.children) < len(actions) {
			if action, ok := t.unexpanded(current, actions); ok {
				m.collector.AddNode()
				return t.addChild(g, current, action)
			}
		}

		current = t.pickChild(current)
	}
}

// playout follows the rollout policy until the game ends
func (m *MCTS[S, A]) playout(g game.Game[S, A], state S) (game.Status, error) {
	status := g.Status(state)
	for !status.Terminal() {
		action, err := m.rollout.SelectAction(g, state)
		if err != nil {
			return status, err
		}
		state = g.Play(action, state)
		status = g.Status(state)
	}
	m.collector.AddFullPlayout()
	return status, nil
}
