package huffman

import (
	"github.com/pkg/errors"
)

// WriteTree serializes the tree rooted at root to w in preorder.  A leaf is
// a 1 bit followed by its symbol in SymbolBits bits; an internal node is a
// 0 bit followed by its left subtree and then its right subtree.
func WriteTree(w BitWriter, root *Node) error {
	if root.IsLeaf() {
		if err := w.WriteBits(1, 1); err != nil {
			return errors.WithStack(err)
		}
		if err := w.WriteBits(uint64(root.Symbol), SymbolBits); err != nil {
			return errors.WithStack(err)
		}
		return nil
	}
	if err := w.WriteBits(0, 1); err != nil {
		return errors.WithStack(err)
	}
	if err := WriteTree(w, root.Left); err != nil {
		return err
	}
	return WriteTree(w, root.Right)
}

// ReadTree reads a tree written by WriteTree.  It fails with ErrTreeFormat
// if r runs out of data before the tree is complete, if a leaf holds a value
// outside the alphabet, or if the tree is deeper than any tree built from
// NumSymbols leaves could be.
func ReadTree(r BitReader) (*Node, error) {
	return readTree(r, 0)
}

func readTree(r BitReader, depth int) (*Node, error) {
	if depth > MaxCodeSize {
		return nil, errors.Wrapf(ErrTreeFormat, "tree deeper than %d levels", MaxCodeSize)
	}

	bit, err := r.ReadBits(1)
	if err != nil {
		return nil, treeReadError(err, "node marker", depth)
	}

	if bit == 1 {
		value, err := r.ReadBits(SymbolBits)
		if err != nil {
			return nil, treeReadError(err, "leaf symbol", depth)
		}
		symbol := Symbol(value)
		if !symbol.IsValid() {
			return nil, errors.Wrapf(ErrTreeFormat, "leaf symbol %d out of range at depth %d", value, depth)
		}
		return NewLeaf(symbol, 0), nil
	}

	left, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Symbol: InvalidSymbol, Left: left, Right: right}, nil
}

func treeReadError(err error, what string, depth int) error {
	if isEndOfData(err) {
		return errors.Wrapf(ErrTreeFormat, "end of data reading %s at depth %d", what, depth)
	}
	return errors.Wrapf(err, "huffman: failed to read %s at depth %d", what, depth)
}
