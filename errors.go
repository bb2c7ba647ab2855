package huffman

import (
	"github.com/pkg/errors"
)

// Each kind of failure is a distinct sentinel.  Errors returned by this
// package wrap one of these; test for them with errors.Is.
var (
	// ErrHeader means the stream does not begin with Magic.
	ErrHeader = errors.New("huffman: missing or invalid header")

	// ErrTreeFormat means the serialized tree is truncated or corrupt.
	ErrTreeFormat = errors.New("huffman: malformed tree in header")

	// ErrTruncated means the payload ended before the EOF code.
	ErrTruncated = errors.New("huffman: unexpected end of compressed data")

	// ErrEncoding means a literal with no code turned up while encoding,
	// which happens when the source yields different data after Reset.
	ErrEncoding = errors.New("huffman: no code for literal")

	// ErrEmptyTree means the frequency table had no positive counts.
	ErrEmptyTree = errors.New("huffman: cannot build a tree with no symbols")
)
