package codec

import (
	"iter"

	"github.com/arloliu/fibcode/bitvec"
	"github.com/arloliu/fibcode/internal/options"
	"github.com/arloliu/fibcode/internal/table"
	"go.uber.org/zap"
)

// Unsigned is the set of integer types supported by the codec.
type Unsigned interface {
	table.Unsigned
}

var nopLogger = zap.NewNop()

// Codec encodes and decodes Fibonacci code words of type T against a fixed table.
//
// A Codec is immutable after construction and safe for concurrent use. Buffers and
// decoders created from it are not.
type Codec[T Unsigned] struct {
	table  []T
	logger *zap.Logger
}

// Option configures a Codec.
type Option[T Unsigned] = options.Option[*Codec[T]]

// NewCodec creates a Codec using the built-in table for T.
//
// Parameters:
//   - opts: Optional configuration (custom table, logger)
//
// Returns:
//   - *Codec[T]: Ready-to-use codec
//   - error: errs.ErrInvalidTable if a custom table is empty or not strictly increasing
func NewCodec[T Unsigned](opts ...Option[T]) (*Codec[T], error) {
	c := &Codec[T]{
		table:  table.For[T](),
		logger: nopLogger,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Default returns a Codec using the built-in table for T and no logging.
func Default[T Unsigned]() *Codec[T] {
	return &Codec[T]{
		table:  table.For[T](),
		logger: nopLogger,
	}
}

// WithTable replaces the built-in table.
//
// The table must be non-empty and strictly increasing. Tables that are not
// Fibonacci sequences can produce code words that do not decode back to the
// input; they are meant for tests and experiments.
func WithTable[T Unsigned](t []T) Option[T] {
	return options.New(func(c *Codec[T]) error {
		if err := table.Validate(t); err != nil {
			return err
		}
		c.table = t

		return nil
	})
}

// WithLogger sets the logger used to report decoder resynchronization.
// A nil logger disables logging.
func WithLogger[T Unsigned](logger *zap.Logger) Option[T] {
	return options.NoError(func(c *Codec[T]) {
		if logger == nil {
			logger = nopLogger
		}
		c.logger = logger
	})
}

// Table returns the table used by the codec. The slice must not be modified.
func (c *Codec[T]) Table() []T {
	return c.table
}

// MaxCodeLen returns the length in bits of the longest code word the codec can produce.
func (c *Codec[T]) MaxCodeLen() int {
	return table.MaxCodeLen(c.table)
}

// Encode encodes n with the built-in table for T into a new bit vector.
func Encode[T Unsigned](n T) (*bitvec.BitVec, error) {
	return Default[T]().Encode(n)
}

// EncodeSlice encodes values with the built-in table for T into a new bit vector.
func EncodeSlice[T Unsigned](values []T) (*bitvec.BitVec, error) {
	return Default[T]().EncodeSlice(values)
}

// AppendTo appends the code word of n to dst using the built-in table for T.
func AppendTo[T Unsigned](dst *bitvec.BitVec, n T) error {
	return Default[T]().AppendTo(dst, n)
}

// AppendSlice appends the code words of values to dst using the built-in table for T.
func AppendSlice[T Unsigned](dst *bitvec.BitVec, values []T) error {
	return Default[T]().AppendSlice(dst, values)
}

// Decode returns an iterator decoding the bits of src as values of type T.
func Decode[T Unsigned](src *bitvec.BitVec) iter.Seq2[T, error] {
	return Default[T]().Decode(src)
}

// NewDecoder creates a decoder reading from src with the built-in table for T.
func NewDecoder[T Unsigned](src BitSource) *Decoder[T] {
	return Default[T]().NewDecoder(src)
}
