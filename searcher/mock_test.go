package searcher

import "boardgameai/game"

// nimGame: players take 1 to 3 tokens, whoever takes the last token wins.
// Positions with a multiple of 4 tokens are lost for the player to move.
type nimGame struct{}

type nimState struct {
	tokens int
	player game.Player
}

func (nimGame) Name() string {
	return "nim"
}

func (nimGame) Init() nimState {
	return nimState{tokens: 10, player: game.Player1}
}

func (nimGame) Player(s nimState) game.Player {
	return s.player
}

func (nimGame) Actions(s nimState) []int {
	actions := []int{}
	for take := 1; take <= 3 && take <= s.tokens; take++ {
		actions = append(actions, take)
	}
	return actions
}

func (nimGame) Play(take int, s nimState) nimState {
	return nimState{tokens: s.tokens - take, player: s.player.Other()}
}

func (nimGame) Status(s nimState) game.Status {
	if s.tokens > 0 {
		return game.InProgress
	}
	// The previous player took the last token
	return game.WinFor(s.player.Other())
}

func nim(tokens int) nimState {
	return nimState{tokens: tokens, player: game.Player1}
}

// treeGame walks a fixed game tree. Leaves are terminal draws whose value,
// from Player1's perspective, is given by leafValue.
type treeGame struct{}

type treeNode struct {
	value    float64
	children []*treeNode
}

type treeState struct {
	node   *treeNode
	player game.Player
}

func leaf(value float64) *treeNode {
	return &treeNode{value: value}
}

func branch(children ...*treeNode) *treeNode {
	return &treeNode{children: children}
}

func (treeGame) Name() string {
	return "tree"
}

func (treeGame) Init() treeState {
	return treeState{node: leaf(0)}
}

func (treeGame) Player(s treeState) game.Player {
	return s.player
}

func (treeGame) Actions(s treeState) []int {
	actions := make([]int, len(s.node.children))
	for i := range actions {
		actions[i] = i
	}
	return actions
}

func (treeGame) Play(i int, s treeState) treeState {
	return treeState{node: s.node.children[i], player: s.player.Other()}
}

func (treeGame) Status(s treeState) game.Status {
	if len(s.node.children) == 0 {
		return game.Draw
	}
	return game.InProgress
}

var leafValue = HeuristicFunc[treeState, int](func(g game.Game[treeState, int], s treeState, perspective game.Player) float64 {
	if perspective == game.Player1 {
		return s.node.value
	}
	return -s.node.value
})

// Root (max) -> min nodes -> max nodes -> leaves. The min nodes are worth
// 5, 2, 8 and 0, so the best root action is 2. The second max node under each
// min node can be cut after its first leaf.
func prunableTree() treeState {
	root := branch(
		branch(branch(leaf(3), leaf(5)), branch(leaf(6), leaf(9))),
		branch(branch(leaf(1), leaf(2)), branch(leaf(7), leaf(4))),
		branch(branch(leaf(8), leaf(7)), branch(leaf(10), leaf(11))),
		branch(branch(leaf(0), leaf(-1)), branch(leaf(20), leaf(30))),
	)
	return treeState{node: root, player: game.Player1}
}
