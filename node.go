package huffman

import (
	"fmt"
)

// Node is a node of a Huffman tree.  A leaf has a Symbol and no children;
// an internal node has exactly two children and Symbol == InvalidSymbol.
//
// Weight is the sum of the leaf counts beneath the node.  It only matters
// while the tree is being built, and is zero in trees read by ReadTree.
//
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// NewLeaf constructs a leaf node.
func NewLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{Symbol: symbol, Weight: weight}
}

// NewInternal constructs an internal node over two subtrees.  The weight is
// the saturating sum of the children's weights.
func NewInternal(left, right *Node) *Node {
	weight := left.Weight + right.Weight
	if weight < left.Weight {
		weight = ^uint64(0)
	}
	return &Node{Symbol: InvalidSymbol, Weight: weight, Left: left, Right: right}
}

// IsLeaf returns true iff this node has no children.
func (node *Node) IsLeaf() bool {
	return node.Left == nil && node.Right == nil
}

// Child returns the left child for bit 0 and the right child for bit 1.
func (node *Node) Child(bit uint) *Node {
	if bit == 0 {
		return node.Left
	}
	return node.Right
}

// Equal returns true iff both trees have the same shape and the same
// symbols at the same leaves.  Weights are ignored.
func (node *Node) Equal(other *Node) bool {
	if node == nil || other == nil {
		return node == other
	}
	if node.IsLeaf() != other.IsLeaf() {
		return false
	}
	if node.IsLeaf() {
		return node.Symbol == other.Symbol
	}
	return node.Left.Equal(other.Left) && node.Right.Equal(other.Right)
}

// String returns a compact representation of the tree, e.g. "((65 256) 66)".
func (node *Node) String() string {
	if node == nil {
		return "nil"
	}
	if node.IsLeaf() {
		return fmt.Sprintf("%d", node.Symbol)
	}
	return fmt.Sprintf("(%v %v)", node.Left, node.Right)
}

var _ fmt.Stringer = (*Node)(nil)
