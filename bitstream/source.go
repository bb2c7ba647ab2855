package bitstream

import (
	"bufio"
	"io"
	"os"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Source reads bits from an io.ReadSeeker.
type Source struct {
	rs       io.ReadSeeker
	br       *bitio.Reader
	bitsRead uint64
	closer   func() error
}

// NewSource returns a Source reading from the current position of rs.  Reset
// always rewinds to offset 0.
func NewSource(rs io.ReadSeeker) *Source {
	return &Source{rs: rs, br: bitio.NewReader(bufio.NewReader(rs))}
}

// OpenSource opens the named file for reading.  The caller must Close the
// returned Source.
func OpenSource(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	s := NewSource(f)
	s.closer = f.Close
	return s, nil
}

// SpoolSource copies r to a temporary file and returns a Source reading from
// it, for inputs such as pipes that cannot be rewound.  If r is already an
// io.ReadSeeker it is used directly.  The caller must Close the returned
// Source, which removes the temporary file.
func SpoolSource(r io.Reader) (*Source, error) {
	if rs, ok := r.(io.ReadSeeker); ok && canRewind(rs) {
		return NewSource(rs), nil
	}

	tmp, err := os.CreateTemp("", "huffpack_spool_*")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cleanup := func() error {
		closeErr := tmp.Close()
		removeErr := os.Remove(tmp.Name())
		if closeErr != nil {
			return errors.WithStack(closeErr)
		}
		return errors.WithStack(removeErr)
	}

	n, err := io.Copy(tmp, r)
	if err != nil {
		_ = cleanup()
		return nil, errors.Wrap(err, "bitstream: failed to spool input")
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		_ = cleanup()
		return nil, errors.WithStack(err)
	}
	log.Debugf("spooled %d bytes to %s", n, tmp.Name())

	s := NewSource(tmp)
	s.closer = cleanup
	return s, nil
}

// ReadBits reads n bits, 1 <= n <= 64, and returns them with the first bit
// most significant.  It returns io.EOF if fewer than n bits remain.
func (s *Source) ReadBits(n uint8) (uint64, error) {
	u, err := s.br.ReadBits(n)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, io.EOF
		}
		return 0, errors.WithStack(err)
	}
	s.bitsRead += uint64(n)
	return u, nil
}

// Reset rewinds to the beginning of the input and discards cached bits.
func (s *Source) Reset() error {
	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "bitstream: failed to rewind")
	}
	s.br = bitio.NewReader(bufio.NewReader(s.rs))
	s.bitsRead = 0
	return nil
}

// BitsRead returns the number of bits returned since the last Reset.
func (s *Source) BitsRead() uint64 {
	return s.bitsRead
}

// Close releases whatever OpenSource or SpoolSource acquired.  It is a no-op
// for a Source made with NewSource.
func (s *Source) Close() error {
	closer := s.closer
	s.closer = nil
	if closer == nil {
		return nil
	}
	return closer()
}

// canRewind reports whether Reset would really return to the start of rs.
// Terminals and pipes can claim to seek, so files must be regular.
func canRewind(rs io.ReadSeeker) bool {
	if f, ok := rs.(*os.File); ok {
		fi, err := f.Stat()
		if err != nil || !fi.Mode().IsRegular() {
			return false
		}
	}
	_, err := rs.Seek(0, io.SeekCurrent)
	return err == nil
}
