package huffman

import (
	"strings"
)

// Processor runs compressions and decompressions.  The zero value is ready
// to use.
type Processor struct {
	// Debug logs statistics about each run at INFO level, plus the full
	// code table at DEBUG level.  It has no effect on the output.
	Debug bool
}

// Compress is like the package-level Compress.
func (p Processor) Compress(src Source, dst Sink) (err error) {
	defer closeSink(dst, &err)

	stats, err := compress(src, dst)
	if err != nil {
		log.Debugf("compress failed: %v", err)
		return err
	}

	if p.Debug {
		log.Infof("compress: %d literals, %d leaves, code sizes %d .. %d bits",
			stats.freq.Total(), stats.freq.Leaves(), stats.encoder.MinSize(), stats.encoder.MaxSize())
		logBitCounts("compress", src, dst)
		var buf strings.Builder
		_, _ = stats.encoder.Dump(&buf)
		log.Debugf("compress: code table:\n%s", buf.String())
	}
	return nil
}

// Decompress is like the package-level Decompress.
func (p Processor) Decompress(src BitReader, dst Sink) (err error) {
	defer closeSink(dst, &err)

	stats, err := decompress(src, dst)
	if err != nil {
		log.Debugf("decompress failed: %v", err)
		return err
	}

	if p.Debug {
		log.Infof("decompress: %d literals", stats.literals)
		logBitCounts("decompress", src, dst)
		log.Debugf("decompress: tree %v", stats.root)
	}
	return nil
}

// bitsReadCounter is implemented by sources that count their input.
type bitsReadCounter interface {
	BitsRead() uint64
}

// bitsWrittenCounter is implemented by sinks that count their output.
type bitsWrittenCounter interface {
	BitsWritten() uint64
}

func logBitCounts(op string, src interface{}, dst interface{}) {
	if c, ok := src.(bitsReadCounter); ok {
		log.Infof("%s: read %d bits", op, c.BitsRead())
	}
	if c, ok := dst.(bitsWrittenCounter); ok {
		log.Infof("%s: wrote %d bits", op, c.BitsWritten())
	}
}
