package codec

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/fibcode/bitvec"
	"github.com/arloliu/fibcode/errs"
	"github.com/arloliu/fibcode/internal/table"
	"go.uber.org/zap"
)

// BitSource supplies bits one at a time.
//
// ReadBool returns io.EOF once the input is exhausted. *bitvec.Reader and
// *bitio.Reader (github.com/icza/bitio) both satisfy it.
type BitSource interface {
	ReadBool() (bool, error)
}

// Decoder reads Fibonacci code words from a BitSource.
//
// Each call to Next consumes exactly one code word. A code word that does not fit
// T is reported as a *DecodeError after the decoder has skipped to the next "11"
// terminator, so the following values decode normally.
//
// A Decoder is not safe for concurrent use.
type Decoder[T Unsigned] struct {
	src    BitSource
	table  []T
	logger *zap.Logger
	offset int64 // bits consumed so far
	err    error // sticky terminal error (io.EOF or a source failure)
}

// NewDecoder creates a decoder reading from src.
func (c *Codec[T]) NewDecoder(src BitSource) *Decoder[T] {
	return &Decoder[T]{
		src:    src,
		table:  c.table,
		logger: c.logger,
	}
}

// Decode returns an iterator over the values encoded in src.
//
// The iterator yields (value, nil) for each complete code word and (0, *DecodeError)
// for each code word that could not be decoded; it keeps going after errors.
func (c *Codec[T]) Decode(src *bitvec.BitVec) iter.Seq2[T, error] {
	return c.NewDecoder(src.NewReader()).All()
}

// DecodeSeq is like Decode for an arbitrary bit sequence.
func (c *Codec[T]) DecodeSeq(bits iter.Seq[bool]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		next, stop := iter.Pull(bits)
		defer stop()

		for v, err := range c.NewDecoder(pullSource(next)).All() {
			if !yield(v, err) {
				return
			}
		}
	}
}

// Offset returns the number of bits consumed so far.
func (d *Decoder[T]) Offset() int64 {
	return d.offset
}

// Next decodes the next value.
//
// Returns:
//   - (value, nil) for a complete code word
//   - (0, *DecodeError) for a code word that overflows T or is cut off by the end of input
//   - (0, io.EOF) once the input is exhausted at a code word boundary, or when only
//     zero bits (byte padding) remain
//   - (0, err) if the source fails; the error is returned by all later calls
func (d *Decoder[T]) Next() (T, error) {
	if d.err != nil {
		return 0, d.err
	}

	start := d.offset

	var acc T
	pos := 0
	last := false
	sawOne := false

	for {
		bit, err := d.readBit()
		if err != nil {
			return 0, d.endOfInput(err, start, pos, sawOne)
		}

		if bit && last {
			return acc, nil
		}

		if pos >= len(d.table) {
			return 0, d.overflow(errs.ErrFibonacciElementOverflow, bit, start, pos)
		}

		if bit {
			sum, ok := table.CheckedAdd(acc, d.table[pos])
			if !ok {
				return 0, d.overflow(errs.ErrConstructionOverflow, bit, start, pos)
			}
			acc = sum
			sawOne = true
		}

		pos++
		last = bit
	}
}

// All returns an iterator over the remaining values.
//
// Decode errors are yielded and iteration continues. A source failure is yielded
// once and ends the iteration; io.EOF ends it silently.
func (d *Decoder[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := d.Next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}

				var decErr *DecodeError
				if !errors.As(err, &decErr) {
					yield(0, err)
					return
				}
			}

			if !yield(v, err) {
				return
			}
		}
	}
}

func (d *Decoder[T]) readBit() (bool, error) {
	bit, err := d.src.ReadBool()
	if err != nil {
		return false, err
	}
	d.offset++

	return bit, nil
}

// overflow skips to the end of the current code word and builds the error for it.
func (d *Decoder[T]) overflow(kind error, bit bool, start int64, pos int) error {
	skipFrom := d.offset
	last := bit
	for {
		next, err := d.readBit()
		if err != nil {
			d.fail(err)
			break
		}
		if next && last {
			break
		}
		last = next
	}

	d.logger.Debug("resynchronized after undecodable code word",
		zap.Error(kind),
		zap.Int("bit_pos", pos),
		zap.Int64("offset", start),
		zap.Int64("skipped_bits", d.offset-skipFrom),
	)

	return &DecodeError{Err: kind, BitPos: pos, Offset: start}
}

// endOfInput handles the source running out (or failing) inside Next.
func (d *Decoder[T]) endOfInput(err error, start int64, pos int, sawOne bool) error {
	d.fail(err)
	if !errors.Is(err, io.EOF) {
		return d.err
	}

	if !sawOne {
		// Nothing but padding zeros after the last terminator.
		return io.EOF
	}

	d.logger.Debug("input ended inside a code word",
		zap.Int("bit_pos", pos),
		zap.Int64("offset", start),
	)

	return &DecodeError{Err: errs.ErrTruncatedCodeWord, BitPos: pos, Offset: start}
}

// fail records the terminal state of the source.
func (d *Decoder[T]) fail(err error) {
	if errors.Is(err, io.EOF) {
		d.err = io.EOF
		return
	}
	d.err = fmt.Errorf("reading bit %d: %w", d.offset, err)
}

type pullSource func() (bool, bool)

func (next pullSource) ReadBool() (bool, error) {
	bit, ok := next()
	if !ok {
		return false, io.EOF
	}

	return bit, nil
}
