package bitstream

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// ErrClosed is returned by WriteBits after Close.
var ErrClosed = errors.New("bitstream: write to closed sink")

// Sink writes bits to an io.Writer.
type Sink struct {
	bw          *bufio.Writer
	w           *bitio.Writer
	bitsWritten uint64
	closed      bool
}

// NewSink returns a Sink writing to w.  Output is buffered until Close.  The
// Sink never closes w.
func NewSink(w io.Writer) *Sink {
	bw := bufio.NewWriter(w)
	return &Sink{bw: bw, w: bitio.NewWriter(bw)}
}

// WriteBits writes the low n bits of v, 1 <= n <= 64, most significant
// first.
func (s *Sink) WriteBits(v uint64, n uint8) error {
	if s.closed {
		return ErrClosed
	}
	if n < 64 {
		v &= (uint64(1) << n) - 1
	}
	if err := s.w.WriteBits(v, n); err != nil {
		return errors.WithStack(err)
	}
	s.bitsWritten += uint64(n)
	return nil
}

// BitsWritten returns the number of bits written so far, not counting the
// padding added by Close.
func (s *Sink) BitsWritten() uint64 {
	return s.bitsWritten
}

// Close pads any partial byte with zero bits and flushes everything to the
// underlying writer.  Calling Close more than once is harmless.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.w.Close(); err != nil {
		return errors.Wrap(err, "bitstream: failed to write final bits")
	}
	if err := s.bw.Flush(); err != nil {
		return errors.Wrap(err, "bitstream: failed to flush")
	}
	return nil
}
