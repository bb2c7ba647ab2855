package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCodeSize is the longest possible code.  A tree with NumSymbols leaves
// and no single-child nodes is at most NumSymbols-1 levels deep.
const MaxCodeSize = NumSymbols - 1

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a sequence of bits.  Code is a comparable value type.
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// Bits holds the actual values of the bits.  Bit i of the sequence is
	// bit (i % 64) of Bits[i / 64]; the least significant bit of Bits[0]
	// is the first bit.  Bits past Size are always zero.
	Bits [codeWords]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64
// bits.  The least significant bit of bits is the first bit.
func MakeCode(size uint16, bits uint64) Code {
	var hc Code
	for i := uint16(0); i < size && i < 64; i++ {
		hc = hc.Append(uint((bits >> i) & 1))
	}
	return hc
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	var hc Code
	if len(str) > MaxCodeSize {
		return hc, fmt.Errorf("code %q is too long: %d bits, max %d", str, len(str), MaxCodeSize)
	}
	for _, ch := range str {
		switch ch {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("code %q contains invalid character %q", str, ch)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i int) uint {
	return uint(hc.Bits[i/64]>>(uint(i)%64)) & 1
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	if hc.Size >= MaxCodeSize {
		panic(fmt.Errorf("huffman: code %s cannot grow past %d bits", hc, MaxCodeSize))
	}
	i := uint(hc.Size)
	hc.Bits[i/64] |= uint64(bit&1) << (i % 64)
	hc.Size++
	return hc
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		buf.WriteByte('0' + byte(hc.Bit(i)))
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}
