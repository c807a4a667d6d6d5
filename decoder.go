package huffile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Decoder decompresses a payload given the histogram from its header.
type Decoder struct {
	hist  Histogram
	tree  *Tree
	total uint64
}

// Init initializes this Decoder.  The histogram must count at least one
// symbol; otherwise no tree can be built and Init returns a *FormatError.
func (d *Decoder) Init(h Histogram) error {
	total := h.Total()
	if total == 0 {
		*d = Decoder{}
		return &FormatError{Reason: "header counts zero symbols"}
	}

	tree := BuildTree(&h)
	if tree == nil {
		*d = Decoder{}
		return &FormatError{Reason: "cannot build a Huffman tree from header"}
	}

	*d = Decoder{
		hist:  h,
		tree:  tree,
		total: total,
	}
	return nil
}

// Histogram returns the histogram this Decoder was initialized with.
func (d *Decoder) Histogram() Histogram {
	return d.hist
}

// Tree returns the Huffman tree, or nil if Init has not succeeded.
func (d *Decoder) Tree() *Tree {
	return d.tree
}

// DecodeFrom reads the bit-packed payload from src, which must be positioned
// just past the header, and writes the decoded bytes to dst.
//
// Decoding walks the tree from the root, one bit at a time, and emits a byte
// on reaching a leaf.  It stops as soon as the number of emitted bytes equals
// the histogram's total, so padding bits in the last byte are never decoded.
//
// If src runs out first, the bytes decoded so far are written to dst and a
// *TruncatedError is returned.
func (d *Decoder) DecodeFrom(dst io.Writer, src io.Reader) (Stats, error) {
	assert.Assertf(d.tree != nil, "Decoder used before a successful Init")

	stats := Stats{
		ExpectedSymbols: d.total,
		Distinct:        d.hist.Distinct(),
	}

	br := NewBitReader(src)
	bw := bufio.NewWriter(dst)

	finish := func(err error) (Stats, error) {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
		stats.UncompressedBytes = stats.Symbols
		stats.CompressedBytes = HeaderSize + br.BytesRead()
		stats.PayloadBits = br.BitsRead()
		return stats, err
	}

	root := d.tree.Root()
	cursor := root
	for stats.Symbols < d.total {
		bit, err := br.ReadBit()
		if err == io.EOF {
			return finish(&TruncatedError{Decoded: stats.Symbols, Expected: d.total})
		}
		if err != nil {
			return finish(err)
		}

		next := d.tree.Child(cursor, bit)
		if next == NoNode {
			return finish(&FormatError{Reason: fmt.Sprintf("bit %d after %d symbols leads nowhere in the tree", br.BitsRead()-1, stats.Symbols)})
		}
		cursor = next

		if d.tree.IsLeaf(cursor) {
			if err := bw.WriteByte(d.tree.Symbol(cursor)); err != nil {
				return finish(err)
			}
			stats.Symbols++
			cursor = root
		}
	}

	return finish(nil)
}

// Decode decompresses src, which begins with a header, into dst.
func Decode(dst io.Writer, src io.Reader) (Stats, error) {
	br := bufio.NewReader(src)

	h, err := ReadHistogram(br)
	if err != nil {
		return Stats{}, err
	}

	var d Decoder
	if err := d.Init(h); err != nil {
		return Stats{}, err
	}
	return d.DecodeFrom(dst, br)
}
