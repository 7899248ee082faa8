package blob

import (
	"fmt"

	"github.com/arloliu/fibcode/bitvec"
	"github.com/arloliu/fibcode/codec"
	"github.com/arloliu/fibcode/errs"
	"github.com/arloliu/fibcode/format"
	"github.com/arloliu/fibcode/internal/hash"
	"github.com/arloliu/fibcode/internal/options"
	"github.com/arloliu/fibcode/internal/pool"
	"github.com/arloliu/fibcode/internal/table"
	"github.com/arloliu/fibcode/section"
	"go.uber.org/zap"
)

// estimatedBitsPerValue is the initial payload capacity per value hinted by WriteSlice.
const estimatedBitsPerValue = 10

// Encoder builds a blob of values of type T.
//
// Values are Fibonacci-encoded as they are written; Finish adds the header and the
// optional compression.
//
// Note: The Encoder is NOT thread-safe and NOT reusable. After calling Finish, a new
// encoder must be created for further encoding.
type Encoder[T codec.Unsigned] struct {
	*EncoderConfig
	fib      *codec.Codec[T]
	bits     *bitvec.BitVec
	count    int
	finished bool
}

// NewEncoder creates a new blob encoder for values of type T.
//
// Parameters:
//   - opts: Optional configuration (compression, endianness, logger)
//
// Returns:
//   - *Encoder[T]: Encoder ready for writing
//   - error: errs.ErrInvalidCompression for an unknown compression type
func NewEncoder[T codec.Unsigned](opts ...EncoderOption) (*Encoder[T], error) {
	config := newEncoderConfig(format.Width(table.Bytes[T]()))
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	if err := config.setCodec(); err != nil {
		return nil, err
	}

	fib, err := codec.NewCodec[T](codec.WithLogger[T](config.logger))
	if err != nil {
		return nil, err
	}

	return &Encoder[T]{
		EncoderConfig: config,
		fib:           fib,
		bits:          bitvec.New(),
	}, nil
}

// Write appends the code word of v to the blob.
//
// Returns:
//   - error: errs.ErrEncoderFinished after Finish, errs.ErrTooManyValues past
//     section.MaxValueCount, or a *codec.EncodeError for zero
func (e *Encoder[T]) Write(v T) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	if uint64(e.count) >= section.MaxValueCount {
		return errs.ErrTooManyValues
	}

	if err := e.fib.AppendTo(e.bits, v); err != nil {
		return err
	}
	e.count++

	return nil
}

// WriteSlice appends the code words of values in order.
//
// On failure it returns an *codec.ElementError whose Index counts from the first
// value of the blob, not from the start of values. Values before the failing one
// have been written.
func (e *Encoder[T]) WriteSlice(values []T) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	if e.count == 0 {
		e.bits = bitvec.WithCapacity(len(values) * estimatedBitsPerValue)
	}

	for _, v := range values {
		if err := e.Write(v); err != nil {
			return &codec.ElementError{Index: e.count, Err: err}
		}
	}

	return nil
}

// Len returns the number of values written.
func (e *Encoder[T]) Len() int {
	return e.count
}

// BitLen returns the number of payload bits written.
func (e *Encoder[T]) BitLen() int {
	return e.bits.Len()
}

// Finish compresses the payload and assembles the blob.
//
// An encoder with no values produces a valid, empty blob.
//
// Returns:
//   - Blob: Complete blob with header and payload
//   - error: errs.ErrEncoderFinished on a second call, compression errors, or
//     errs.ErrPayloadSize if the stored payload exceeds section.MaxPayloadSize
func (e *Encoder[T]) Finish() (Blob, error) {
	if e.finished {
		return Blob{}, errs.ErrEncoderFinished
	}
	e.finished = true

	packed := e.bits.Bytes()

	// The header of the encoder stays untouched, computed fields go on a copy.
	header := *e.header
	header.Count = uint32(e.count) //nolint: gosec
	header.BitLen = uint64(e.bits.Len())
	header.Checksum = hash.Checksum(packed)

	payload, err := e.codec.Compress(packed)
	if err != nil {
		return Blob{}, fmt.Errorf("failed to compress payload: %w", err)
	}

	if uint64(len(payload)) > section.MaxPayloadSize {
		return Blob{}, fmt.Errorf("payload of %d bytes: %w", len(payload), errs.ErrPayloadSize)
	}
	header.PayloadSize = uint32(len(payload)) //nolint: gosec

	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.Grow(section.HeaderSize + len(payload))
	bb.B = header.AppendTo(bb.B)
	bb.MustWrite(payload)

	// The pooled buffer goes back to the pool, the blob gets its own copy.
	data := make([]byte, bb.Len())
	copy(data, bb.Bytes())

	e.logger.Debug("blob finished",
		zap.Stringer("width", header.Flag.Width),
		zap.Stringer("compression", header.Flag.Compression),
		zap.Int("count", e.count),
		zap.Uint64("bits", header.BitLen),
		zap.Uint64("packed_bytes", header.PackedSize()),
		zap.Int("stored_bytes", len(payload)),
	)

	return Blob{data: data, header: header}, nil
}
