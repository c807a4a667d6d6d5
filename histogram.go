package huffile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Histogram holds the number of occurrences of each byte value.
type Histogram [NumSymbols]uint32

// CountFrequencies reads r to EOF, counting every byte, and then seeks r back
// to its start so that the same bytes can be read again.
//
// If a byte value occurs more than math.MaxUint32 times, CountFrequencies
// stops and returns an error wrapping ErrTooLarge.
func CountFrequencies(r io.ReadSeeker) (Histogram, error) {
	var h Histogram
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return h, err
	}
	if _, err := h.ReadFrom(r); err != nil {
		return h, err
	}
	_, err := r.Seek(0, io.SeekStart)
	return h, err
}

// ReadFrom reads r to EOF, adding every byte to the counts.
func (h *Histogram) ReadFrom(r io.Reader) (int64, error) {
	var buf [32 << 10]byte
	var total int64
	for {
		n, err := r.Read(buf[:])
		if addErr := h.Add(buf[:n]); addErr != nil {
			return total, addErr
		}
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Add counts each byte of p.  A count that would exceed math.MaxUint32 is
// left at its maximum, and an error wrapping ErrTooLarge is returned.
func (h *Histogram) Add(p []byte) error {
	for _, b := range p {
		if h[b] == math.MaxUint32 {
			return fmt.Errorf("byte %d: %w", b, ErrTooLarge)
		}
		h[b]++
	}
	return nil
}

// Total returns the sum of all counts, i.e. the number of bytes counted.
func (h *Histogram) Total() uint64 {
	var sum uint64
	for _, n := range h {
		sum += uint64(n)
	}
	return sum
}

// Distinct returns the number of byte values with a non-zero count.
func (h *Histogram) Distinct() int {
	var n int
	for _, count := range h {
		if count != 0 {
			n++
		}
	}
	return n
}

// WriteTo serializes the histogram as HeaderSize bytes.
func (h *Histogram) WriteTo(w io.Writer) (int64, error) {
	var buf [HeaderSize]byte
	for symbol, count := range h {
		binary.LittleEndian.PutUint32(buf[symbol*counterSize:], count)
	}
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadHistogram deserializes a histogram written by WriteTo.  A short read is
// reported as a *FormatError.
func ReadHistogram(r io.Reader) (Histogram, error) {
	var h Histogram
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return h, &FormatError{Reason: fmt.Sprintf("short header: got %d bytes, want %d", n, HeaderSize)}
	}
	if err != nil {
		return h, err
	}
	for symbol := range h {
		h[symbol] = binary.LittleEndian.Uint32(buf[symbol*counterSize:])
	}
	return h, nil
}

// Dump writes a programmer-readable listing of the non-zero counts to w.
func (h *Histogram) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Histogram{\n")
	for symbol, count := range h {
		if count != 0 {
			fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, count)
		}
	}
	fmt.Fprintf(&buf, "\tTotal() = %d\n", h.Total())
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
