package minimax

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// BuildTree - expands every continuation of state, mark moving first. Terminal states become leaves.
// Children follow the order of state.Moves().
func BuildTree[S GameState[S]](polarity Polarity, state S, mark entity.Mark) *Node[S] {
	return buildTree(polarity, state, mark, entity.NoMove)
}

func buildTree[S GameState[S]](polarity Polarity, state S, mark entity.Mark, move entity.Move) *Node[S] {
	node := newNode(state, polarity, move)
	if state.Terminal() {
		return node
	}

	moves := state.Moves()
	node.Children = make([]*Node[S], 0, len(moves))
	for _, move := range moves {
		next, ok := state.Next(move, mark)
		if !ok {
			continue
		}
		node.Children = append(node.Children, buildTree(polarity.Opposite(), next, mark.Opponent(), move))
	}

	return node
}

// Evaluate - assigns minimax ranks bottom-up. Leaves score their utility for perspective,
// inner nodes take the max or min of their children depending on polarity.
func Evaluate[S GameState[S]](node *Node[S], perspective entity.Mark) int {
	if node.State.Terminal() {
		node.Rank = node.State.Utility(perspective)
		return node.Rank
	}

	optimal := math.MinInt
	if node.Polarity == Minimizing {
		optimal = math.MaxInt
	}

	for _, child := range node.Children {
		value := Evaluate(child, perspective)
		if node.Polarity == Maximizing {
			optimal = max(optimal, value)
		} else {
			optimal = min(optimal, value)
		}
	}

	node.Rank = optimal
	return optimal
}

// Search - builds and evaluates the tree for mark to move on state. The root is maximizing for mark.
func Search[S GameState[S]](state S, mark entity.Mark) (*Node[S], error) {
	if state.Terminal() {
		return nil, apperror.ErrTerminalBoard
	}

	root := BuildTree(Maximizing, state, mark)
	Evaluate(root, mark)

	return root, nil
}

// BestChild - the first root child holding the strictly greatest rank.
func BestChild[S GameState[S]](root *Node[S]) (*Node[S], error) {
	var best *Node[S]
	bestRank := math.MinInt
	for _, child := range root.Children {
		if child.Rank > bestRank {
			bestRank = child.Rank
			best = child
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: no moves to choose from", apperror.ErrTerminalBoard)
	}

	return best, nil
}

// ChooseMove - returns the optimal move for mark on state.
func ChooseMove[S GameState[S]](state S, mark entity.Mark) (entity.Move, error) {
	root, err := Search(state, mark)
	if err != nil {
		return entity.NoMove, fmt.Errorf("failed to search: %w", err)
	}

	best, err := BestChild(root)
	if err != nil {
		return entity.NoMove, err
	}

	return best.Move, nil
}
