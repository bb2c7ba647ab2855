package huffman

import (
	"io"

	"github.com/pkg/errors"
)

// Magic is the 32-bit value at the start of every compressed stream.
const Magic = 0xface8201

// MagicBits is the width of the Magic field.
const MagicBits = 32

// BitReader is a source of bits.  ReadBits returns the next n bits (n <= 64)
// as an unsigned value, first bit most significant.  At end of data it
// returns io.EOF; a field that is only partly available is also io.EOF.
type BitReader interface {
	ReadBits(n uint8) (uint64, error)
}

// Source is a BitReader that can be rewound to its beginning.  Compress
// needs this to scan the input twice, and the second pass must yield the
// same bytes as the first.
type Source interface {
	BitReader
	Reset() error
}

// BitWriter is a sink for bits.  WriteBits writes the low n bits of v, most
// significant first.
type BitWriter interface {
	WriteBits(v uint64, n uint8) error
}

// Sink is a BitWriter that buffers.  Close flushes any trailing partial
// byte and must be called on every exit path.
type Sink interface {
	BitWriter
	Close() error
}

// isEndOfData reports whether err means the source ran dry.
func isEndOfData(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// writeCode writes each bit of hc to w in order.
func writeCode(w BitWriter, hc Code) error {
	for i := 0; i < int(hc.Size); i++ {
		if err := w.WriteBits(uint64(hc.Bit(i)), 1); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// closeSink closes dst and folds the result into *errp, keeping the first
// error seen.
func closeSink(dst Sink, errp *error) {
	closeErr := dst.Close()
	if *errp == nil && closeErr != nil {
		*errp = errors.Wrap(closeErr, "huffman: failed to flush output")
	}
}
