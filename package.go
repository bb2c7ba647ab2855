package huffman

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")

// LogModules lists the go-logging modules used by this module, for callers
// that configure levels per module.
var LogModules = []string{
	"huffman",
	"huffman/bitstream",
	"huffman/cmd",
}
