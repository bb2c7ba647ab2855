package huffman

import (
	"github.com/pkg/errors"
)

// Compress reads all of src, then rewinds it and writes the compressed form
// to dst: Magic, the serialized tree, each literal's code, and finally the
// code for EOF.  dst is closed before Compress returns, on success or not.
func Compress(src Source, dst Sink) error {
	return Processor{}.Compress(src, dst)
}

// compressStats describes a finished compression run.
type compressStats struct {
	freq    *FrequencyTable
	encoder *Encoder
}

func compress(src Source, dst BitWriter) (*compressStats, error) {
	freq, err := CountFrequencies(src)
	if err != nil {
		return nil, err
	}

	root, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}

	e, err := NewEncoder(root)
	if err != nil {
		return nil, err
	}

	if err := dst.WriteBits(Magic, MagicBits); err != nil {
		return nil, errors.Wrap(err, "huffman: failed to write magic")
	}
	if err := WriteTree(dst, root); err != nil {
		return nil, errors.Wrap(err, "huffman: failed to write tree")
	}

	if err := src.Reset(); err != nil {
		return nil, errors.Wrap(err, "huffman: failed to rewind input")
	}

	for {
		value, err := src.ReadBits(LiteralBits)
		if err != nil {
			if isEndOfData(err) {
				break
			}
			return nil, errors.Wrap(err, "huffman: failed to read input while encoding")
		}
		hc, ok := e.Encode(Symbol(value))
		if !ok {
			return nil, errors.Wrapf(ErrEncoding, "literal 0x%02x was not seen on the first pass", value)
		}
		if err := writeCode(dst, hc); err != nil {
			return nil, err
		}
	}

	hc, _ := e.Encode(EOF)
	if err := writeCode(dst, hc); err != nil {
		return nil, err
	}

	return &compressStats{freq: freq, encoder: e}, nil
}
