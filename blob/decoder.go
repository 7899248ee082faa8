package blob

import (
	"fmt"
	"iter"

	"github.com/arloliu/fibcode/bitvec"
	"github.com/arloliu/fibcode/codec"
	"github.com/arloliu/fibcode/compress"
	"github.com/arloliu/fibcode/errs"
	"github.com/arloliu/fibcode/format"
	"github.com/arloliu/fibcode/internal/hash"
	"github.com/arloliu/fibcode/internal/options"
	"github.com/arloliu/fibcode/section"
	"go.uber.org/zap"
)

// DecoderConfig holds the settings of a Decoder.
type DecoderConfig struct {
	logger *zap.Logger
}

// DecoderOption represents a functional option for configuring a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithDecoderLogger sets the logger of the decoder. A nil logger disables logging.
func WithDecoderLogger(logger *zap.Logger) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}

// Decoder reads the values of a blob as type T.
//
// T may be narrower than the width the blob was written with. Values that do not
// fit T are then reported as *codec.DecodeError and the following values decode
// normally.
//
// Note: The Decoder is NOT thread-safe.
type Decoder[T codec.Unsigned] struct {
	header section.Header
	bits   *bitvec.BitVec
	fib    *codec.Codec[T]
	logger *zap.Logger
}

// NewDecoder validates the blob and prepares its payload for decoding.
//
// The header is parsed, the stored payload size is checked against the data, the
// payload is decompressed and its checksum verified before any value is decoded.
//
// Parameters:
//   - data: Encoded blob
//   - opts: Optional configuration (logger)
//
// Returns:
//   - *Decoder[T]: Decoder ready for iteration
//   - error: header errors, errs.ErrPayloadSize, decompression errors or
//     errs.ErrChecksumMismatch
func NewDecoder[T codec.Unsigned](data []byte, opts ...DecoderOption) (*Decoder[T], error) {
	config := &DecoderConfig{logger: zap.NewNop()}
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	payload, err := readPayload(data, header)
	if err != nil {
		return nil, err
	}

	if sum := hash.Checksum(payload); sum != header.Checksum {
		config.logger.Warn("blob checksum mismatch",
			zap.Uint64("expected", header.Checksum),
			zap.Uint64("actual", sum),
			zap.Uint32("count", header.Count),
		)

		return nil, errs.ErrChecksumMismatch
	}

	fib, err := codec.NewCodec[T](codec.WithLogger[T](config.logger))
	if err != nil {
		return nil, err
	}

	return &Decoder[T]{
		header: header,
		bits:   bitvec.FromBytes(payload, int(header.BitLen)), //nolint: gosec
		fib:    fib,
		logger: config.logger,
	}, nil
}

// readPayload returns the uncompressed packed payload of a blob.
func readPayload(data []byte, header section.Header) ([]byte, error) {
	stored := data[section.PayloadOffset:]
	if uint64(len(stored)) != uint64(header.PayloadSize) {
		return nil, fmt.Errorf("stored payload is %d bytes, header says %d: %w",
			len(stored), header.PayloadSize, errs.ErrPayloadSize)
	}

	c, err := compress.GetCodec(header.Flag.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := c.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if uint64(len(payload)) != header.PackedSize() {
		return nil, fmt.Errorf("packed payload is %d bytes, bit length %d needs %d: %w",
			len(payload), header.BitLen, header.PackedSize(), errs.ErrPayloadSize)
	}

	return payload, nil
}

// Header returns the parsed blob header.
func (d *Decoder[T]) Header() section.Header {
	return d.header
}

// Len returns the number of values recorded in the header.
func (d *Decoder[T]) Len() int {
	return int(d.header.Count)
}

// Width returns the integer width the blob was written with.
func (d *Decoder[T]) Width() format.Width {
	return d.header.Flag.Width
}

// All returns an iterator over the values of the blob.
//
// Each call starts from the first value. Code words that do not fit T yield a
// *codec.DecodeError and iteration continues.
func (d *Decoder[T]) All() iter.Seq2[T, error] {
	return d.fib.Decode(d.bits)
}

// Values decodes all values of the blob.
//
// Returns:
//   - []T: The decoded values, in order
//   - error: The first *codec.DecodeError, or errs.ErrPayloadSize if the payload
//     holds a different number of values than the header records
func (d *Decoder[T]) Values() ([]T, error) {
	values := make([]T, 0, d.header.Count)
	for v, err := range d.All() {
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	if len(values) != int(d.header.Count) {
		return nil, fmt.Errorf("decoded %d values, header says %d: %w",
			len(values), d.header.Count, errs.ErrPayloadSize)
	}

	return values, nil
}
