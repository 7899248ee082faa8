package codec

import (
	"iter"

	"github.com/arloliu/fibcode/bitvec"
	"github.com/arloliu/fibcode/errs"
	"github.com/arloliu/fibcode/internal/table"
)

// estimatedBitsPerValue is the initial capacity hint per value for EncodeSlice.
// Values up to 54 fit in 10 bits.
const estimatedBitsPerValue = 10

// AppendTo appends the Fibonacci code word of n to dst.
//
// The code word is the Zeckendorf representation of n, one bit per table entry
// starting with the smallest, followed by a terminating 1-bit. Because Zeckendorf
// digits never contain two adjacent ones, the trailing "11" marks the end of the word.
//
// Encoding steps:
//  1. Find split_pos, the last table index whose entry is <= n
//  2. Grow dst by split_pos+2 zero bits and set the terminator
//  3. Walk the table from split_pos down to 0, setting a bit and subtracting the
//     entry whenever it fits into the remainder
//
// Parameters:
//   - dst: Destination buffer, extended in place
//   - n: Value to encode, must be >= the first table entry (1 for built-in tables)
//
// Returns:
//   - error: *EncodeError wrapping errs.ErrValueTooSmall for zero, or errs.ErrUnderflow
//     if the table breaks the Zeckendorf invariant. On error dst is left unchanged.
func (c *Codec[T]) AppendTo(dst *bitvec.BitVec, n T) error {
	splitPos := table.SplitPos(c.table, n)
	if splitPos < 0 {
		return &EncodeError[T]{Value: n, Err: errs.ErrValueTooSmall}
	}

	base := dst.Len()
	dst.Grow(splitPos+2, false)
	dst.Set(base+splitPos+1, true)

	rem := n
	for i := splitPos; i >= 0; i-- {
		fib := c.table[i]
		if fib > rem {
			continue
		}

		next, ok := table.CheckedSub(rem, fib)
		if !ok {
			dst.Truncate(base)
			return &EncodeError[T]{Value: n, Err: errs.ErrUnderflow}
		}
		dst.Set(base+i, true)
		rem = next
	}

	if rem != 0 {
		dst.Truncate(base)
		return &EncodeError[T]{Value: n, Err: errs.ErrUnderflow}
	}

	return nil
}

// AppendSlice appends the code words of values to dst in order, without separators.
//
// On failure it returns an *ElementError carrying the index of the failing value.
// Code words of the values before it stay in dst; the failing value leaves no bits.
func (c *Codec[T]) AppendSlice(dst *bitvec.BitVec, values []T) error {
	for i, v := range values {
		if err := c.AppendTo(dst, v); err != nil {
			return &ElementError{Index: i, Err: err}
		}
	}

	return nil
}

// AppendSeq is like AppendSlice for an arbitrary sequence. Iteration stops at the
// first value that fails to encode.
func (c *Codec[T]) AppendSeq(dst *bitvec.BitVec, seq iter.Seq[T]) error {
	i := 0
	for v := range seq {
		if err := c.AppendTo(dst, v); err != nil {
			return &ElementError{Index: i, Err: err}
		}
		i++
	}

	return nil
}

// Encode returns the code word of n in a new bit vector.
func (c *Codec[T]) Encode(n T) (*bitvec.BitVec, error) {
	dst := bitvec.New()
	if err := c.AppendTo(dst, n); err != nil {
		return nil, err
	}

	return dst, nil
}

// EncodeSlice returns the concatenated code words of values in a new bit vector.
//
// On failure both the partially filled vector (holding the values before the
// failing index) and an *ElementError are returned.
func (c *Codec[T]) EncodeSlice(values []T) (*bitvec.BitVec, error) {
	dst := bitvec.WithCapacity(len(values) * estimatedBitsPerValue)
	if err := c.AppendSlice(dst, values); err != nil {
		return dst, err
	}

	return dst, nil
}

// CodeLen returns the length in bits of the code word of n without encoding it.
func (c *Codec[T]) CodeLen(n T) (int, error) {
	splitPos := table.SplitPos(c.table, n)
	if splitPos < 0 {
		return 0, &EncodeError[T]{Value: n, Err: errs.ErrValueTooSmall}
	}

	return splitPos + 2, nil
}
