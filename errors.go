package huffile

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when asked to compress an input with no bytes.
// Nothing is written in that case.
var ErrEmptyInput = errors.New("huffile: nothing to compress: input is empty")

// ErrTooLarge is returned when a byte value occurs more often than a header
// counter can record.
var ErrTooLarge = errors.New("huffile: input too large: byte count exceeds 4294967295")

// ErrInputChanged is returned when the second pass over the input reads
// different bytes than were counted by the first.
var ErrInputChanged = errors.New("huffile: input changed after counting")

// ErrFormat is matched by every *FormatError via errors.Is.
var ErrFormat = errors.New("huffile: invalid compressed file format")

// FormatError reports a compressed input that cannot be decoded at all.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", ErrFormat, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v: %s", ErrFormat, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// TruncatedError reports a payload that ran out of bits before all of the
// symbols counted in the header were decoded.  Decoded symbols have already
// been written to the destination.
type TruncatedError struct {
	Decoded  uint64
	Expected uint64
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("huffile: truncated payload: decoded %d of %d symbols", e.Decoded, e.Expected)
}

// IOError reports a source or destination that could not be opened,
// created, or read.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("huffile: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

var (
	_ error = (*FormatError)(nil)
	_ error = (*TruncatedError)(nil)
	_ error = (*IOError)(nil)
)
