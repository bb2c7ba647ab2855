package huffman

import (
	"github.com/pkg/errors"
)

// Decompress reads a stream written by Compress from src and writes the
// original bytes to dst.  It stops after the EOF code; anything after it,
// such as padding, is not read.  dst is closed before Decompress returns,
// on success or not.
func Decompress(src BitReader, dst Sink) error {
	return Processor{}.Decompress(src, dst)
}

// decompressStats describes a finished decompression run.
type decompressStats struct {
	root     *Node
	literals uint64
}

func decompress(src BitReader, dst BitWriter) (*decompressStats, error) {
	magic, err := src.ReadBits(MagicBits)
	if err != nil {
		if isEndOfData(err) {
			return nil, errors.Wrap(ErrHeader, "stream too short for magic")
		}
		return nil, errors.Wrap(err, "huffman: failed to read magic")
	}
	if magic != Magic {
		return nil, errors.Wrapf(ErrHeader, "got magic 0x%08x, expected 0x%08x", magic, Magic)
	}

	root, err := ReadTree(src)
	if err != nil {
		return nil, err
	}

	var d Decoder
	if err := d.Init(root); err != nil {
		return nil, err
	}

	stats := &decompressStats{root: root}
	for {
		bit, err := src.ReadBits(1)
		if err != nil {
			if isEndOfData(err) {
				return nil, errors.Wrapf(ErrTruncated, "after %d literals", stats.literals)
			}
			return nil, errors.Wrap(err, "huffman: failed to read compressed data")
		}

		symbol := d.Step(uint(bit))
		switch {
		case symbol == InvalidSymbol:
			// mid-code
		case symbol == EOF:
			return stats, nil
		default:
			if err := dst.WriteBits(uint64(symbol), LiteralBits); err != nil {
				return nil, errors.Wrap(err, "huffman: failed to write output")
			}
			stats.literals++
		}
	}
}
