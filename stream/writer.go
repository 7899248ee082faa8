package stream

import (
	"fmt"
	"io"

	"github.com/arloliu/fibcode/bitvec"
	"github.com/arloliu/fibcode/codec"
	"github.com/arloliu/fibcode/errs"
	"github.com/icza/bitio"
	"go.uber.org/zap"
)

// Writer writes Fibonacci code words to an io.Writer.
type Writer[T codec.Unsigned] struct {
	bw      *bitio.Writer
	codec   *codec.Codec[T]
	scratch *bitvec.BitVec
	logger  *zap.Logger
	count   int
	bits    int64
	err     error // sticky write error
	closed  bool
}

// NewWriter creates a Writer writing to w.
//
// Bits are buffered until a full byte is available, so the output is complete only
// after Close.
func NewWriter[T codec.Unsigned](w io.Writer, opts ...Option) (*Writer[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	c, err := codec.NewCodec[T](codec.WithLogger[T](cfg.logger))
	if err != nil {
		return nil, err
	}

	return &Writer[T]{
		bw:      bitio.NewWriter(w),
		codec:   c,
		scratch: bitvec.WithCapacity(c.MaxCodeLen()),
		logger:  cfg.logger,
	}, nil
}

// Write writes the code word of v.
//
// Values that cannot be encoded (zero) return an *codec.EncodeError and leave the
// stream untouched. An error from the underlying writer is returned by this and
// every later call.
func (w *Writer[T]) Write(v T) error {
	if w.closed {
		return errs.ErrEncoderFinished
	}
	if w.err != nil {
		return w.err
	}

	w.scratch.Reset()
	if err := w.codec.AppendTo(w.scratch, v); err != nil {
		return err
	}

	if err := w.writeScratch(); err != nil {
		w.err = fmt.Errorf("writing code word %d: %w", w.count, err)
		return w.err
	}
	w.count++
	w.bits += int64(w.scratch.Len())

	return nil
}

// WriteSlice writes the code words of values in order.
//
// On failure it returns an *codec.ElementError with the index into values. Values
// before the failing one have been written.
func (w *Writer[T]) WriteSlice(values []T) error {
	for i, v := range values {
		if err := w.Write(v); err != nil {
			return &codec.ElementError{Index: i, Err: err}
		}
	}

	return nil
}

// Count returns the number of values written.
func (w *Writer[T]) Count() int {
	return w.count
}

// BitLen returns the number of bits written, excluding the final padding.
func (w *Writer[T]) BitLen() int64 {
	return w.bits
}

// Close writes the buffered bits, zero-padding the last byte. It does not close
// the underlying writer. Calling Close more than once is a no-op.
func (w *Writer[T]) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.bw.Close(); err != nil && w.err == nil {
		w.err = fmt.Errorf("flushing stream: %w", err)
	}

	w.logger.Debug("fibonacci stream closed",
		zap.Int("count", w.count),
		zap.Int64("bits", w.bits),
		zap.Int64("padding_bits", (8-w.bits%8)%8),
	)

	return w.err
}

func (w *Writer[T]) writeScratch() error {
	data := w.scratch.Bytes()
	n := w.scratch.Len()

	full := n / 8
	for _, b := range data[:full] {
		if err := w.bw.WriteByte(b); err != nil {
			return err
		}
	}

	if rem := n % 8; rem > 0 {
		return w.bw.WriteBits(uint64(data[full]>>(8-rem)), uint8(rem))
	}

	return nil
}
