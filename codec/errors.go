package codec

import (
	"fmt"
)

// EncodeError reports a value that could not be encoded.
//
// Err is errs.ErrValueTooSmall for zero (or values below the first table entry)
// and errs.ErrUnderflow when the table is malformed.
type EncodeError[T Unsigned] struct {
	Value T
	Err   error
}

func (e *EncodeError[T]) Error() string {
	return fmt.Sprintf("could not encode %d: %v", e.Value, e.Err)
}

func (e *EncodeError[T]) Unwrap() error {
	return e.Err
}

// ElementError reports the first element of a sequence that failed to encode.
// Bits of the elements before Index remain in the destination buffer.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// DecodeError reports a code word that could not be decoded.
//
// Err is one of errs.ErrFibonacciElementOverflow, errs.ErrConstructionOverflow or
// errs.ErrTruncatedCodeWord. BitPos is the digit index inside the code word where
// the problem was detected and Offset is the bit offset of the code word start in
// the input stream.
type DecodeError struct {
	Err    error
	BitPos int
	Offset int64
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at bit position %d (code word at offset %d)", e.Err, e.BitPos, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
