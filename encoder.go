package huffile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder compresses data whose histogram is known in advance.
type Encoder struct {
	hist  Histogram
	tree  *Tree
	table CodeTable
}

// Init initializes this Encoder from the histogram of the data to be encoded.
// It returns ErrEmptyInput if the histogram counts no bytes at all.
func (e *Encoder) Init(h Histogram) error {
	tree := BuildTree(&h)
	if tree == nil {
		*e = Encoder{}
		return ErrEmptyInput
	}
	*e = Encoder{
		hist:  h,
		tree:  tree,
		table: NewCodeTable(tree),
	}
	return nil
}

// Histogram returns the histogram this Encoder was initialized with.
func (e *Encoder) Histogram() Histogram {
	return e.hist
}

// Tree returns the Huffman tree, or nil if Init has not succeeded.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// CodeTable returns the code table derived from the tree.
func (e *Encoder) CodeTable() *CodeTable {
	return &e.table
}

// EncodeTo writes the header followed by the code of every byte read from
// src.  src must produce exactly the bytes the histogram was counted from.
func (e *Encoder) EncodeTo(dst io.Writer, src io.Reader) (Stats, error) {
	assert.Assertf(e.tree != nil, "Encoder used before a successful Init")

	stats := Stats{
		ExpectedSymbols: e.hist.Total(),
		Distinct:        e.table.Len(),
	}

	bw := NewBitWriter(dst)
	if _, err := e.hist.WriteTo(bw); err != nil {
		return stats, err
	}

	br := bufio.NewReader(src)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}

		// A byte outside the histogram means src changed between passes.
		hc, found := e.table.Lookup(b)
		assert.Assertf(found, "byte %d has no code: input changed after counting", b)

		if err := bw.WriteCode(hc); err != nil {
			return stats, err
		}
		stats.Symbols++
	}

	if err := bw.Flush(); err != nil {
		return stats, err
	}

	stats.UncompressedBytes = stats.Symbols
	stats.PayloadBits = bw.BitsWritten()
	stats.CompressedBytes = HeaderSize + bw.BytesWritten()

	if stats.Symbols != stats.ExpectedSymbols {
		return stats, fmt.Errorf("read %d bytes, counted %d: %w", stats.Symbols, stats.ExpectedSymbols, ErrInputChanged)
	}
	return stats, nil
}

// Encode compresses all of src into dst.  src is read twice: once to count
// byte frequencies, and again, after seeking back to its start, to encode.
//
// If src is empty, Encode writes nothing and returns ErrEmptyInput.
func Encode(dst io.Writer, src io.ReadSeeker) (Stats, error) {
	h, err := CountFrequencies(src)
	if err != nil {
		return Stats{}, err
	}

	var e Encoder
	if err := e.Init(h); err != nil {
		return Stats{}, err
	}
	return e.EncodeTo(dst, src)
}
