package huffile

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitWriter packs bits into bytes in the order they are written: the first
// bit of each byte ends up in its most significant position.
type BitWriter struct {
	w       *bitio.Writer
	written uint64
	err     error
}

// NewBitWriter returns a BitWriter that emits whole bytes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(w)}
}

// Write writes whole bytes.  It must only be called while no partial byte is
// pending, i.e. before the first bit.
func (bw *BitWriter) Write(p []byte) (int, error) {
	assert.Assertf(bw.written%8 == 0, "Write called with %d bits pending", bw.written%8)
	if bw.err != nil {
		return 0, bw.err
	}
	var n int
	n, bw.err = bw.w.Write(p)
	return n, bw.err
}

// WriteBit appends one bit, which must be 0 or 1.
func (bw *BitWriter) WriteBit(bit uint8) error {
	assert.Assertf(bit <= 1, "bit value %d is not 0 or 1", bit)
	if bw.err != nil {
		return bw.err
	}
	bw.err = bw.w.WriteBool(bit == 1)
	if bw.err == nil {
		bw.written++
	}
	return bw.err
}

// WriteCode appends every bit of a code, first bit first.
func (bw *BitWriter) WriteCode(hc Code) error {
	for i := byte(0); i < hc.Size; i++ {
		if err := bw.WriteBit(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

// Flush pads a partial trailing byte with zero bits in its low-order
// positions, emits it, and flushes everything to the underlying writer.  It
// is called once, after the last bit.
func (bw *BitWriter) Flush() error {
	if bw.err != nil {
		return bw.err
	}
	bw.err = bw.w.Close()
	return bw.err
}

// BitsWritten returns the number of bits written so far, not counting
// padding.
func (bw *BitWriter) BitsWritten() uint64 {
	return bw.written
}

// BytesWritten returns the number of bytes the bits written so far occupy,
// including padding in the last byte.
func (bw *BitWriter) BytesWritten() uint64 {
	return (bw.written + 7) / 8
}

// BitReader unpacks bits from bytes, most significant bit first, pulling a
// fresh byte only once the previous one has been used up.
type BitReader struct {
	r     *bitio.Reader
	taken uint64
}

// NewBitReader returns a BitReader over r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: bitio.NewReader(r)}
}

// ReadBit returns the next bit.  It returns io.EOF once the input has no more
// bytes.
func (br *BitReader) ReadBit() (uint8, error) {
	b, err := br.r.ReadBool()
	if err != nil {
		return 0, err
	}
	br.taken++
	if b {
		return 1, nil
	}
	return 0, nil
}

// BitsRead returns the number of bits returned by ReadBit so far.
func (br *BitReader) BitsRead() uint64 {
	return br.taken
}

// BytesRead returns the number of bytes pulled from the input so far.
func (br *BitReader) BytesRead() uint64 {
	return (br.taken + 7) / 8
}
