// Package errs defines the sentinel errors shared by all fibcode packages.
//
// Errors returned by fibcode are either one of these sentinels or a typed error
// wrapping one of them, so callers can always branch with errors.Is.
package errs

import "errors"

// Encoding errors.
var (
	// ErrValueTooSmall is returned when attempting to encode zero, which has no
	// Fibonacci representation. Offset the input (e.g. n+1) before encoding.
	ErrValueTooSmall = errors.New("value too small: zero cannot be fibonacci-encoded")
	// ErrUnderflow indicates the greedy Zeckendorf walk subtracted past zero or left a
	// remainder. It can only happen with a malformed table.
	ErrUnderflow = errors.New("underflow while building zeckendorf representation")
	// ErrInvalidTable is returned when a custom Fibonacci table is empty or not strictly increasing.
	ErrInvalidTable = errors.New("invalid fibonacci table")
)

// Decoding errors.
var (
	// ErrFibonacciElementOverflow indicates a code word has more digit positions than
	// the table of the decode width provides.
	ErrFibonacciElementOverflow = errors.New("fibonacci sequence element would overflow result type")
	// ErrConstructionOverflow indicates the sum of the decoded digits overflows the decode width.
	ErrConstructionOverflow = errors.New("constructing number would overflow result type")
	// ErrTruncatedCodeWord indicates the input ended in the middle of a code word.
	ErrTruncatedCodeWord = errors.New("input ended inside a code word")
)

// Container errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrUnsupportedWidth   = errors.New("unsupported integer width")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrPayloadSize        = errors.New("payload size does not match header")
	ErrTooManyValues      = errors.New("too many values for a single blob")
	ErrEncoderFinished    = errors.New("encoder already finished")
)
