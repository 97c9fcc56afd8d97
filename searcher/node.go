package searcher

import "boardgameai/game"

const noParent = -1

// node is an MCTS tree node. Links are indices into the tree arena.
type node[S any, A comparable] struct {
	action   A // Zero value for the root
	state    S
	player   game.Player // Player to move at this node
	status   game.Status
	parent   int
	children []int
	playouts float64
	wins     float64 // Credit of the player who moved into this node
}

// tree is the arena of one search; the root is always at index 0
type tree[S any, A comparable] struct {
	nodes []node[S, A]
}

func newTree[S any, A comparable](g game.Game[S, A], state S) *tree[S, A] {
	return &tree[S, A]{
		nodes: []node[S, A]{{
			state:  state,
			player: g.Player(state),
			status: g.Status(state),
			parent: noParent,
		}},
	}
}

func (t *tree[S, A]) root() *node[S, A] {
	return &t.nodes[0]
}

// addChild expands action from parent and returns the new node's index
func (t *tree[S, A]) addChild(g game.Game[S, A], parent int, action A) int {
	state := g.Play(action, t.nodes[parent].state)
	t.nodes = append(t.nodes, node[S, A]{
		action: action,
		state:  state,
		player: g.Player(state),
		status: g.Status(state),
		parent: parent,
	})
	child := len(t.nodes) - 1
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	return child
}

// unexpanded returns the first action without a child node
func (t *tree[S, A]) unexpanded(idx int, actions []A) (A, bool) {
	n := &t.nodes[idx]
	for _, action := range actions {
		expanded := false
		for _, c := range n.children {
			if t.nodes[c].action == action {
				expanded = true
				break
			}
		}
		if !expanded {
			return action, true
		}
	}
	var zero A
	return zero, false
}

// pickChild returns the child with the highest UCT score, the earliest on ties
func (t *tree[S, A]) pickChild(idx int) int {
	n := &t.nodes[idx]
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	bestScore := uct(t.nodes[best].wins, t.nodes[best].playouts, n.playouts)
	for _, c := range n.children[1:] {
		child := &t.nodes[c]
		if score := uct(child.wins, child.playouts, n.playouts); greater(score, bestScore) {
			best = c
			bestScore = score
		}
	}
	return best
}

// mostVisited returns the child with the most playouts, the earliest on ties
func (t *tree[S, A]) mostVisited(idx int) int {
	n := &t.nodes[idx]
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	for _, c := range n.children[1:] {
		if greater(t.nodes[c].playouts, t.nodes[best].playouts) {
			best = c
		}
	}
	return best
}

// backup walks from idx to the root, counting the playout at every node. A
// win is credited to nodes entered by the winner's move, a draw credits every
// node with half a win.
func (t *tree[S, A]) backup(idx int, result game.Status) {
	winner, decisive := result.Winner()
	for idx != noParent {
		n := &t.nodes[idx]
		n.playouts++
		switch {
		case !decisive:
			n.wins += DrawReward
		case n.player != winner:
			n.wins += Win
		default:
			n.wins += Loss
		}
		idx = n.parent
	}
}
