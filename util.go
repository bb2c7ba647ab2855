package huffman

import (
	mathbits "math/bits"
)

// log2uint32 returns the number of bits needed to represent x, treating 0
// as 1.  A balanced tree over x leaves is about this deep.
func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}
