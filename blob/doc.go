// Package blob stores Fibonacci-coded integers in a self-describing binary container.
//
// A blob is a 32-byte header (see package section) followed by the packed code words,
// optionally compressed with one of the algorithms of package compress. The header
// records the integer width, the number of values, the exact bit length and an
// xxHash64 checksum of the packed payload, so a decoder can validate the blob before
// reading any value.
//
// # Encoding
//
//	encoder, err := blob.NewEncoder[uint32](
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := encoder.WriteSlice(values); err != nil {
//	    return err
//	}
//	b, err := encoder.Finish()
//	data := b.Bytes()
//
// # Decoding
//
//	decoder, err := blob.NewDecoder[uint32](data)
//	if err != nil {
//	    return err // bad header, size or checksum
//	}
//	for v, err := range decoder.All() {
//	    ...
//	}
//
// # Width Mismatch
//
// A blob may be decoded with a narrower type than it was written with. Values that
// fit are returned unchanged; values that do not are reported as *codec.DecodeError
// wrapping errs.ErrConstructionOverflow or errs.ErrFibonacciElementOverflow, and
// decoding continues with the next value. Decoder.Width reports the width of the
// encoder, so callers can pick a matching type up front.
//
// # Blob Sets
//
// Set reads several blobs of the same logical stream, for example one per time
// window, as a single sequence of values.
//
// # Thread Safety
//
// Encoders and decoders are not safe for concurrent use. A finished Blob is
// immutable and may be shared.
package blob
