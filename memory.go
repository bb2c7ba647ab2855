package huffman

import (
	"bytes"

	"github.com/chronos-tachyon/huffpack/bitstream"
)

// CompressBytes compresses an in-memory byte slice.
func CompressBytes(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := Compress(bitstream.NewSource(bytes.NewReader(data)), bitstream.NewSink(&out)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecompressBytes decompresses an in-memory byte slice produced by
// CompressBytes or Compress.
func DecompressBytes(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := Decompress(bitstream.NewSource(bytes.NewReader(data)), bitstream.NewSink(&out)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
