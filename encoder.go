package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encoder maps each Symbol to its code in a particular Huffman tree.
type Encoder struct {
	codes   [NumSymbols]Code
	minSize uint16
	maxSize uint16
}

// NewEncoder derives the encoding table for the tree rooted at root.
func NewEncoder(root *Node) (*Encoder, error) {
	e := new(Encoder)
	if err := e.Init(root); err != nil {
		return nil, err
	}
	return e, nil
}

// Init initializes this Encoder from a tree.  Every leaf's code is the path
// from the root to it, 0 for a left step and 1 for a right step.  If the
// root itself is a leaf, it gets the one-bit code "0", since an empty code
// could not be written.
//
// The tree must contain a leaf for EOF.
//
func (e *Encoder) Init(root *Node) error {
	if root == nil {
		return errors.WithStack(ErrEmptyTree)
	}

	*e = Encoder{}

	if root.IsLeaf() {
		e.assign(root.Symbol, MakeCode(1, 0))
	} else {
		e.walk(root)
	}

	if e.codes[EOF].Size == 0 {
		return errors.Wrap(ErrEncoding, "huffman: tree has no leaf for EOF")
	}
	return nil
}

// walk assigns codes to every leaf beneath root, using a stack instead of
// recursion.  The stack never holds leaves, only internal nodes, so its
// depth is the length of the code under construction.
//
// stackItem.x keeps track of where we are:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func (e *Encoder) walk(root *Node) {
	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint32(NumSymbols))

	stackPush := func(node *Node, code Code) {
		assert.Assertf(node.Left != nil && node.Right != nil, "internal node %v has a missing child", node)
		stack = append(stack, stackItem{node: node, code: code})
	}

	stackPop := func() {
		last := len(stack) - 1
		stack[last] = stackItem{}
		stack = stack[:last]
	}

	processChild := func(child *Node, code Code) {
		if child.IsLeaf() {
			e.assign(child.Symbol, code)
		} else {
			stackPush(child, code)
		}
	}

	stackPush(root, Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.code.Append(0))
		case 1:
			processChild(top.node.Right, top.code.Append(1))
		case 2:
			stackPop()
		}
	}
}

func (e *Encoder) assign(symbol Symbol, hc Code) {
	assert.Assertf(symbol.IsValid(), "leaf has invalid symbol %d", symbol)
	assert.Assertf(e.codes[symbol].Size == 0, "symbol %d appears at more than one leaf", symbol)
	assert.Assertf(hc.Size != 0, "symbol %d assigned an empty code", symbol)

	e.codes[symbol] = hc
	if e.minSize == 0 || e.minSize > hc.Size {
		e.minSize = hc.Size
	}
	if e.maxSize < hc.Size {
		e.maxSize = hc.Size
	}
}

// Encode returns the code for a Symbol.  The second result is false if the
// symbol has no leaf in the tree.
func (e *Encoder) Encode(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() {
		return Code{}, false
	}
	hc := e.codes[symbol]
	return hc, hc.Size != 0
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() uint16 {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() uint16 {
	return e.maxSize
}

// NumCodes is the number of symbols that have a code.
func (e *Encoder) NumCodes() int {
	var n int
	for _, hc := range e.codes {
		if hc.Size != 0 {
			n++
		}
	}
	return n
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for symbols without a code.
func (e *Encoder) SizeBySymbol() []uint16 {
	out := make([]uint16, NumSymbols)
	for symbol, hc := range e.codes {
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols without a code are omitted.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol, hc := range e.codes {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
