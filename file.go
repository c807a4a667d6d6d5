package huffile

import (
	"bufio"
	"errors"
	"os"
)

// CompressFile compresses the file at inPath into a new file at outPath.
//
// The source is opened and counted before the destination is touched, so a
// source that cannot be opened, or that is empty, leaves outPath alone.  An
// empty source yields ErrEmptyInput.
func CompressFile(inPath, outPath string) (Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, &IOError{Op: "open", Path: inPath, Err: err}
	}
	defer in.Close()

	h, err := CountFrequencies(in)
	if err != nil {
		if !errors.Is(err, ErrTooLarge) {
			err = &IOError{Op: "read", Path: inPath, Err: err}
		}
		return Stats{}, err
	}

	var e Encoder
	if err := e.Init(h); err != nil {
		return Stats{}, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return Stats{}, &IOError{Op: "create", Path: outPath, Err: err}
	}

	stats, err := e.EncodeTo(out, in)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = &IOError{Op: "close", Path: outPath, Err: closeErr}
	}
	return stats, err
}

// DecompressFile decompresses the file at inPath into a new file at outPath.
//
// The header is read and checked before the destination is created.  If the
// payload turns out to be malformed, the partial destination is removed.  A
// truncated payload keeps what was decoded, and the returned *TruncatedError
// says how much that was.
func DecompressFile(inPath, outPath string) (Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, &IOError{Op: "open", Path: inPath, Err: err}
	}
	defer in.Close()

	br := bufio.NewReader(in)

	h, err := ReadHistogram(br)
	if err != nil {
		if !errors.Is(err, ErrFormat) {
			err = &IOError{Op: "read", Path: inPath, Err: err}
		}
		return Stats{}, err
	}

	var d Decoder
	if err := d.Init(h); err != nil {
		return Stats{}, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return Stats{}, &IOError{Op: "create", Path: outPath, Err: err}
	}

	stats, err := d.DecodeFrom(out, br)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = &IOError{Op: "close", Path: outPath, Err: closeErr}
	}
	if errors.Is(err, ErrFormat) {
		_ = os.Remove(outPath)
	}
	return stats, err
}
