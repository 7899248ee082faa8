// Package fibcode implements Fibonacci coding of unsigned integers: a universal,
// self-synchronizing, variable-length code in which every code word ends in "11".
//
// Small values get short code words (1 → "11", 2 → "011", 4 → "1011") and a
// corrupted bit damages at most a few neighbouring values, because the decoder
// finds the next "11" terminator and carries on.
//
// # Core Features
//
//   - Generic over uint8, uint16, uint32, uint64 and uint
//   - Precomputed per-width Fibonacci tables, no big-integer arithmetic
//   - Decoding with a narrower type than the encoder used reports overflow per value
//     and resynchronizes on the following code word
//   - Streaming over io.Writer and io.Reader
//   - A checksummed blob container with optional compression (Zstd, S2, LZ4)
//
// # Basic Usage
//
// Encoding and decoding in memory:
//
//	import "github.com/arloliu/fibcode"
//
//	bits, err := fibcode.EncodeSlice([]uint32{1, 50, 3003})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(bits.String()) // 11001001011000010010000100011
//
//	for v, err := range fibcode.Decode[uint32](bits) {
//	    if err != nil {
//	        // a code word that does not fit uint32; decoding continues
//	        continue
//	    }
//	    fmt.Println(v)
//	}
//
// Packing to bytes, with zero padding in the last byte:
//
//	data, nbits, err := fibcode.Pack([]uint16{1, 50, 3003})
//	values, err := fibcode.Unpack[uint16](data)
//
// Storing values in a self-describing blob:
//
//	encoder, _ := fibcode.NewDefaultBlobEncoder[uint64]()
//	_ = encoder.WriteSlice(values)
//	b, _ := encoder.Finish()
//
//	decoder, _ := fibcode.NewBlobDecoder[uint64](b.Bytes())
//	values, err := decoder.Values()
//
// # Zero
//
// Zero has no Fibonacci representation and is rejected with errs.ErrValueTooSmall.
// Offset the input (n+1) to encode zero-based data.
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained control use
// the codec, bitvec, stream and blob packages directly.
package fibcode

import (
	"io"
	"iter"

	"github.com/arloliu/fibcode/bitvec"
	"github.com/arloliu/fibcode/blob"
	"github.com/arloliu/fibcode/codec"
	"github.com/arloliu/fibcode/format"
	"github.com/arloliu/fibcode/internal/pool"
	"github.com/arloliu/fibcode/stream"
)

// Unsigned is the set of integer types fibcode can encode.
type Unsigned = codec.Unsigned

var defaultBlobOptions = []blob.EncoderOption{
	blob.WithLittleEndian(),
	blob.WithCompression(format.CompressionZstd),
}

// Encode returns the Fibonacci code word of n.
//
// Returns:
//   - *bitvec.BitVec: The code word, ending in "11"
//   - error: *codec.EncodeError wrapping errs.ErrValueTooSmall if n is zero
func Encode[T Unsigned](n T) (*bitvec.BitVec, error) {
	return codec.Encode(n)
}

// EncodeSlice returns the concatenated code words of values.
//
// On failure the vector holding the code words before the failing value is returned
// together with a *codec.ElementError.
func EncodeSlice[T Unsigned](values []T) (*bitvec.BitVec, error) {
	return codec.EncodeSlice(values)
}

// Decode returns an iterator over the values encoded in bits.
//
// A code word that does not fit T yields a *codec.DecodeError and iteration continues
// with the next code word. Trailing zero bits are treated as padding.
func Decode[T Unsigned](bits *bitvec.BitVec) iter.Seq2[T, error] {
	return codec.Decode[T](bits)
}

// CodeLen returns the length in bits of the code word of n.
func CodeLen[T Unsigned](n T) (int, error) {
	return codec.Default[T]().CodeLen(n)
}

// MaxCodeLen returns the length in bits of the longest code word of T.
func MaxCodeLen[T Unsigned]() int {
	return codec.Default[T]().MaxCodeLen()
}

// Pack encodes values and returns the packed bytes, MSB first and zero-padded.
//
// Returns:
//   - []byte: Packed code words, a new slice owned by the caller
//   - int: Number of meaningful bits
//   - error: *codec.ElementError if a value cannot be encoded
func Pack[T Unsigned](values []T) ([]byte, int, error) {
	bits, cleanup := pool.GetBitVec()
	defer cleanup()

	if err := codec.AppendSlice(bits, values); err != nil {
		return nil, 0, err
	}

	data := make([]byte, bits.ByteLen())
	copy(data, bits.Bytes())

	return data, bits.Len(), nil
}

// Unpack decodes all values of packed data as produced by Pack.
//
// Returns:
//   - []T: The decoded values
//   - error: The first *codec.DecodeError
func Unpack[T Unsigned](data []byte) ([]T, error) {
	values := make([]T, 0, len(data))
	for v, err := range codec.Decode[T](bitvec.FromBytes(data, -1)) {
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

// NewWriter creates a streaming writer of code words to w.
//
// The writer must be closed to flush the last, zero-padded byte.
//
// Available options:
//   - stream.WithLogger(logger)
func NewWriter[T Unsigned](w io.Writer, opts ...stream.Option) (*stream.Writer[T], error) {
	return stream.NewWriter[T](w, opts...)
}

// NewReader creates a streaming reader of code words from r.
func NewReader[T Unsigned](r io.Reader, opts ...stream.Option) (*stream.Reader[T], error) {
	return stream.NewReader[T](r, opts...)
}

// NewBlobEncoder creates a blob encoder with custom configuration.
//
// Available options:
//   - blob.WithLittleEndian() / blob.WithBigEndian()
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithLogger(logger)
//
// Example:
//
//	encoder, err := fibcode.NewBlobEncoder[uint32](
//	    blob.WithCompression(format.CompressionS2),
//	)
func NewBlobEncoder[T Unsigned](opts ...blob.EncoderOption) (*blob.Encoder[T], error) {
	return blob.NewEncoder[T](opts...)
}

// NewDefaultBlobEncoder creates a blob encoder with recommended settings:
// little-endian header fields and Zstd payload compression.
func NewDefaultBlobEncoder[T Unsigned]() (*blob.Encoder[T], error) {
	return blob.NewEncoder[T](defaultBlobOptions...)
}

// NewBlobDecoder validates a blob and creates a decoder reading its values as T.
//
// Returns:
//   - *blob.Decoder[T]: Decoder ready for iteration
//   - error: Header, size, decompression or checksum errors
func NewBlobDecoder[T Unsigned](data []byte, opts ...blob.DecoderOption) (*blob.Decoder[T], error) {
	return blob.NewDecoder[T](data, opts...)
}

// NewBlobSet validates several blobs and reads them as one sequence of values.
func NewBlobSet[T Unsigned](blobs [][]byte, opts ...blob.DecoderOption) (*blob.Set[T], error) {
	return blob.NewSet[T](blobs, opts...)
}
