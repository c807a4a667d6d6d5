package huffile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of at most 255 bits: the path from the root of
// a Tree to one of its leaves, where 0 means "left" and 1 means "right".
//
// Code is a value type.  Append returns a new Code and leaves its receiver
// untouched, so sibling branches of a tree walk never share a path buffer.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Bit i lives at
	// Bits[i/64] >> (i%64), so the least significant bit of Bits[0] is the
	// first bit.
	Bits [4]uint64
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	var hc Code
	if len(str) > maxBitsPerCode {
		return hc, fmt.Errorf("code %q is too long: %d bits, max %d", str, len(str), maxBitsPerCode)
	}
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q at index %d in code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of the code.
func (hc Code) Bit(i byte) uint8 {
	assert.Assertf(i < hc.Size, "bit index %d out of range for code of size %d", i, hc.Size)
	return uint8(hc.Bits[i/64]>>(i%64)) & 1
}

// Append returns a copy of the code with one more bit at the end.
func (hc Code) Append(bit uint8) Code {
	assert.Assertf(bit <= 1, "bit value %d is not 0 or 1", bit)
	assert.Assertf(hc.Size < maxBitsPerCode, "code would exceed %d bits", maxBitsPerCode)
	hc.Bits[hc.Size/64] |= uint64(bit) << (hc.Size % 64)
	hc.Size++
	return hc
}

// HasPrefix reports whether prefix is a leading subsequence of this code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := byte(0); i < prefix.Size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + hc.Bit(i))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}
