package blob

import (
	"fmt"
	"iter"

	"github.com/arloliu/fibcode/codec"
)

// Set is an ordered collection of blobs read as one sequence of values.
//
// All blobs are validated when the set is created.
type Set[T codec.Unsigned] struct {
	decoders []*Decoder[T]
	count    int
}

// NewSet creates a set from serialized blobs, in order.
//
// Returns:
//   - *Set[T]: Set over all blobs
//   - error: The first blob validation error, annotated with the blob index
func NewSet[T codec.Unsigned](blobs [][]byte, opts ...DecoderOption) (*Set[T], error) {
	s := &Set[T]{decoders: make([]*Decoder[T], 0, len(blobs))}
	for i, data := range blobs {
		d, err := NewDecoder[T](data, opts...)
		if err != nil {
			return nil, fmt.Errorf("blob %d: %w", i, err)
		}
		s.decoders = append(s.decoders, d)
		s.count += d.Len()
	}

	return s, nil
}

// BlobCount returns the number of blobs in the set.
func (s *Set[T]) BlobCount() int {
	return len(s.decoders)
}

// Len returns the total number of values recorded in the blob headers.
func (s *Set[T]) Len() int {
	return s.count
}

// All returns an iterator over the values of all blobs in order.
// Decode errors are yielded and iteration continues.
func (s *Set[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, d := range s.decoders {
			for v, err := range d.All() {
				if !yield(v, err) {
					return
				}
			}
		}
	}
}
