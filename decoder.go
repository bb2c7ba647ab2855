package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Decoder walks a Huffman tree one bit at a time.
type Decoder struct {
	root    *Node
	current *Node
}

// NewDecoder constructs a Decoder for the tree rooted at root.
func NewDecoder(root *Node) (*Decoder, error) {
	d := new(Decoder)
	if err := d.Init(root); err != nil {
		return nil, err
	}
	return d, nil
}

// Init initializes this Decoder and positions it at the root.
func (d *Decoder) Init(root *Node) error {
	if root == nil {
		return errors.WithStack(ErrEmptyTree)
	}
	*d = Decoder{root: root, current: root}
	return nil
}

// Step consumes one bit, moving left on 0 and right on 1.  If that reaches
// a leaf, Step returns the leaf's symbol and moves back to the root;
// otherwise it returns InvalidSymbol.
//
// A tree whose root is a leaf has the one-bit code "0" for its only symbol,
// so every bit decodes that symbol.
//
func (d *Decoder) Step(bit uint) Symbol {
	if d.root.IsLeaf() {
		return d.root.Symbol
	}

	next := d.current.Child(bit)
	assert.Assertf(next != nil, "internal node %v has a missing child", d.current)
	if !next.IsLeaf() {
		d.current = next
		return InvalidSymbol
	}
	d.current = d.root
	return next.Symbol
}

// AtRoot returns true iff the Decoder is between codes.
func (d *Decoder) AtRoot() bool {
	return d.current == d.root
}

// Reset moves the Decoder back to the root, abandoning any partial code.
func (d *Decoder) Reset() {
	d.current = d.root
}

// Root returns the tree this Decoder walks.
func (d *Decoder) Root() *Node {
	return d.root
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tRoot() = %v\n", d.root)
	fmt.Fprintf(&buf, "\tAtRoot() = %t\n", d.AtRoot())
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
