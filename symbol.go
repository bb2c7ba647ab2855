package huffman

// Symbol represents a symbol in the compressor's alphabet: either a literal
// byte value (0 .. 255) or the synthetic end-of-stream marker EOF.  Negative
// symbols are not valid.
type Symbol int32

const (
	// NumLiterals is the number of literal byte values.
	NumLiterals = 256

	// EOF is the end-of-stream symbol.  It never occurs in real input; it
	// is given a count of exactly 1 so that the tree always has a leaf
	// for it, and its code terminates every compressed payload.
	EOF = Symbol(NumLiterals)

	// NumSymbols is the size of the alphabet, literals plus EOF.
	NumSymbols = NumLiterals + 1

	// MaxSymbol is the maximum valid symbol.
	MaxSymbol = EOF

	// SymbolBits is the width of a symbol field in the serialized tree.
	// Eight bits cannot tell EOF apart from the literal 0x00.
	SymbolBits = 9

	// LiteralBits is the width of one literal in the uncompressed stream.
	LiteralBits = 8
)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsLiteral returns true iff this symbol stands for a byte of input.
func (s Symbol) IsLiteral() bool {
	return s >= 0 && s < NumLiterals
}

// IsValid returns true iff this symbol is part of the alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}
