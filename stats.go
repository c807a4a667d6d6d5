package huffile

import (
	"fmt"
)

// Stats describes one compress or decompress call.
type Stats struct {
	// UncompressedBytes is the size of the plain data: bytes read when
	// compressing, bytes written when decompressing.
	UncompressedBytes uint64

	// CompressedBytes is the size of the compressed data, header
	// included: bytes written when compressing, bytes read when
	// decompressing.
	CompressedBytes uint64

	// Symbols is the number of symbols coded or decoded.  When decoding
	// it may fall short of ExpectedSymbols.
	Symbols uint64

	// ExpectedSymbols is the sum of the histogram.
	ExpectedSymbols uint64

	// Distinct is the number of byte values with a non-zero count.
	Distinct int

	// PayloadBits is the number of code bits written or consumed, not
	// counting padding.
	PayloadBits uint64
}

// Ratio returns the compressed size divided by the uncompressed size.
func (s Stats) Ratio() float64 {
	return ratio(s.CompressedBytes, s.UncompressedBytes)
}

// Savings returns the percentage of the uncompressed size saved.  It is
// negative when compression made the data larger.
func (s Stats) Savings() float64 {
	if s.UncompressedBytes == 0 {
		return 0
	}
	return (1 - s.Ratio()) * 100
}

func (s Stats) String() string {
	return fmt.Sprintf("%d of %d symbols (%d distinct), %d bytes uncompressed, %d bytes compressed, ratio %.2f",
		s.Symbols, s.ExpectedSymbols, s.Distinct, s.UncompressedBytes, s.CompressedBytes, s.Ratio())
}

var _ fmt.Stringer = Stats{}
