// Package bitstream provides the bit-level input and output used by the
// huffman codec, on top of github.com/icza/bitio.
//
// A Source reads bits, most significant first, from an io.ReadSeeker and
// can rewind to the beginning.  A Sink writes bits to an io.Writer and pads
// the final byte with zero bits when closed.
//
package bitstream

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman/bitstream")
