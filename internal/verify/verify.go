// Package verify compares an original file with its recovered copy.
package verify

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Result describes the comparison of two byte streams.
type Result struct {
	// Offset is the first position at which the streams differ, or -1 if
	// they are identical.  A stream that ends early differs at its end.
	Offset int64

	SizeA   int64
	SizeB   int64
	DigestA uint64
	DigestB uint64
}

// Equal reports whether the two streams were byte-for-byte identical.
func (r Result) Equal() bool {
	return r.Offset < 0
}

func (r Result) String() string {
	if r.Equal() {
		return fmt.Sprintf("identical: %d bytes, xxhash64 %016x", r.SizeA, r.DigestA)
	}
	return fmt.Sprintf("differ at offset %d: %d bytes (xxhash64 %016x) vs %d bytes (xxhash64 %016x)",
		r.Offset, r.SizeA, r.DigestA, r.SizeB, r.DigestB)
}

// Readers reads a and b to the end, comparing them byte by byte.
func Readers(a, b io.Reader) (Result, error) {
	da, db := xxhash.New(), xxhash.New()
	ra := bufio.NewReader(io.TeeReader(a, da))
	rb := bufio.NewReader(io.TeeReader(b, db))

	res := Result{Offset: -1}
	for {
		ca, errA := ra.ReadByte()
		if errA != nil && errA != io.EOF {
			return res, errA
		}
		cb, errB := rb.ReadByte()
		if errB != nil && errB != io.EOF {
			return res, errB
		}
		if errA == io.EOF && errB == io.EOF {
			break
		}

		if res.Offset < 0 && (errA != nil || errB != nil || ca != cb) {
			if errA == nil {
				res.Offset = res.SizeB
			} else {
				res.Offset = res.SizeA
			}
		}
		if errA == nil {
			res.SizeA++
		}
		if errB == nil {
			res.SizeB++
		}
	}

	res.DigestA = da.Sum64()
	res.DigestB = db.Sum64()
	return res, nil
}

// Files compares the files at pathA and pathB.
func Files(pathA, pathB string) (Result, error) {
	a, err := os.Open(pathA)
	if err != nil {
		return Result{}, err
	}
	defer a.Close()

	b, err := os.Open(pathB)
	if err != nil {
		return Result{}, err
	}
	defer b.Close()

	return Readers(a, b)
}
