package huffman

import (
	"github.com/pkg/errors"
)

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies reads 8-bit literals from src until end of data and
// returns their counts.  The count for EOF is forced to exactly 1.
func CountFrequencies(src BitReader) (*FrequencyTable, error) {
	var freq FrequencyTable
	for {
		value, err := src.ReadBits(LiteralBits)
		if err != nil {
			if isEndOfData(err) {
				break
			}
			return nil, errors.Wrap(err, "huffman: failed to read input while counting")
		}
		freq[value]++
	}
	freq[EOF] = 1
	return &freq, nil
}

// Leaves returns the number of symbols with a positive count, which is the
// number of leaves in the tree built from this table.
func (freq *FrequencyTable) Leaves() int {
	var n int
	for _, count := range freq {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the number of literal bytes counted.
func (freq *FrequencyTable) Total() uint64 {
	var sum uint64
	for symbol := Symbol(0); symbol < NumLiterals; symbol++ {
		sum += freq[symbol]
	}
	return sum
}
