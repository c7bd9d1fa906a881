package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Polarity tells whose advantage a node's rank is computed for.
type Polarity int

const (
	Maximizing Polarity = iota
	Minimizing
)

// Opposite - children always have the opposite polarity of their parent.
func (that Polarity) Opposite() Polarity {
	if that == Maximizing {
		return Minimizing
	}
	return Maximizing
}

func (that Polarity) String() string {
	if that == Maximizing {
		return "max"
	}
	return "min"
}

// GameState is a position the search can expand and score.
type GameState[S any] interface {
	Terminal() bool
	Utility(mark entity.Mark) int
	Moves() []entity.Move
	Next(move entity.Move, mark entity.Mark) (S, bool)
}

// Node is one ply of the game tree. Each node owns its state snapshot and its children.
type Node[S GameState[S]] struct {
	State    S
	Polarity Polarity
	Move     entity.Move
	Rank     int
	Children []*Node[S]
}

func newNode[S GameState[S]](state S, polarity Polarity, move entity.Move) *Node[S] {
	return &Node[S]{
		State:    state,
		Polarity: polarity,
		Move:     move,
	}
}

// Size - number of nodes in the subtree rooted at this node.
func (that *Node[S]) Size() int {
	size := 1
	for _, child := range that.Children {
		size += child.Size()
	}
	return size
}

func (that *Node[S]) String() string {
	return fmt.Sprintf("node(move=%s, rank=%d, polarity=%s, children=%d)", that.Move, that.Rank, that.Polarity, len(that.Children))
}
