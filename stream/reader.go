package stream

import (
	"io"
	"iter"

	"github.com/arloliu/fibcode/codec"
	"github.com/icza/bitio"
)

// Reader reads Fibonacci code words from an io.Reader.
type Reader[T codec.Unsigned] struct {
	dec *codec.Decoder[T]
}

// NewReader creates a Reader reading from r.
func NewReader[T codec.Unsigned](r io.Reader, opts ...Option) (*Reader[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	c, err := codec.NewCodec[T](codec.WithLogger[T](cfg.logger))
	if err != nil {
		return nil, err
	}

	return &Reader[T]{dec: c.NewDecoder(bitio.NewReader(r))}, nil
}

// Read returns the next value.
//
// It returns io.EOF at the end of the stream, including when only padding bits
// remain, and a *codec.DecodeError for a code word that does not fit T or is cut
// off. Reading may continue after a *codec.DecodeError.
func (r *Reader[T]) Read() (T, error) {
	return r.dec.Next()
}

// All returns an iterator over the remaining values. See codec.Decoder.All.
func (r *Reader[T]) All() iter.Seq2[T, error] {
	return r.dec.All()
}

// Offset returns the number of bits consumed so far.
func (r *Reader[T]) Offset() int64 {
	return r.dec.Offset()
}
