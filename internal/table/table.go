// Package table holds the per-width Fibonacci tables shared by the encoder and decoder.
//
// Tables start at F(2)=1, F(3)=2 and end at the largest Fibonacci number that fits the
// width. They are generated once by internal/cmd/fibtables and never modified.
package table

//go:generate go run ../cmd/fibtables -output tables_gen.go

import (
	"math/bits"

	"github.com/arloliu/fibcode/errs"
)

// Unsigned is the set of integer types the codec can encode and decode.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64 | uint
}

// Uint is the table for the platform uint, built from the table of the same width.
var Uint = func() []uint {
	var t []uint
	if bits.UintSize == 32 {
		t = make([]uint, len(Uint32))
		for i, v := range Uint32 {
			t[i] = uint(v)
		}

		return t
	}

	t = make([]uint, len(Uint64))
	for i, v := range Uint64 {
		t[i] = uint(v)
	}

	return t
}()

// For returns the built-in table for T. The returned slice must not be modified.
func For[T Unsigned]() []T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return any(Uint8[:]).([]T)
	case uint16:
		return any(Uint16[:]).([]T)
	case uint32:
		return any(Uint32[:]).([]T)
	case uint64:
		return any(Uint64[:]).([]T)
	default:
		return any(Uint).([]T)
	}
}

// Bytes returns the size of T in bytes.
func Bytes[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		return bits.UintSize / 8
	}
}

// MaxCodeLen returns the length in bits of the longest code word of a table:
// one digit per entry plus the terminator.
func MaxCodeLen[T Unsigned](t []T) int {
	return len(t) + 1
}

// Validate checks that t is usable by the codec: non-empty and strictly increasing.
// It does not require the entries to be Fibonacci numbers.
func Validate[T Unsigned](t []T) error {
	if len(t) == 0 {
		return errs.ErrInvalidTable
	}

	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return errs.ErrInvalidTable
		}
	}

	return nil
}

// SplitPos returns the last index i with t[i] <= n, or -1 when n is smaller than t[0].
//
// The scan runs from the small end because inputs are usually small and table
// entries grow exponentially, so the match is found after a few comparisons.
func SplitPos[T Unsigned](t []T, n T) int {
	pos := -1
	for i, v := range t {
		if v > n {
			break
		}
		pos = i
	}

	return pos
}

// CheckedAdd returns a+b and false if the addition overflows T.
func CheckedAdd[T Unsigned](a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}

	return sum, true
}

// CheckedSub returns a-b and false if b > a.
func CheckedSub[T Unsigned](a, b T) (T, bool) {
	if b > a {
		return 0, false
	}

	return a - b, true
}
