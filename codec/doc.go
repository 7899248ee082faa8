// Package codec implements Fibonacci coding of unsigned integers.
//
// A value n >= 1 is written as its Zeckendorf representation, the unique sum of
// non-consecutive Fibonacci numbers, with one bit per Fibonacci number starting at
// F(2)=1, followed by an extra 1-bit. Since the representation never has two
// adjacent ones, every code word ends in "11" and that pattern appears nowhere else:
//
//	1  -> 11
//	2  -> 011
//	4  -> 1011
//	13 -> 0000011
//	65 -> 0100100011
//
// Code words are concatenated without separators. Small values take few bits
// (values below 89 take at most 10), and the code is self-synchronizing: a flipped
// bit damages at most the code word it lands in and the one after it, because the
// decoder always restarts after the next "11".
//
// # Encoding
//
//	bits, err := codec.EncodeSlice([]uint16{1, 50, 3003})
//	// bits.Bytes() == []byte{0b11001001, 0b01100001, 0b00100001, 0b00011000}
//
// Zero has no representation; encoding it fails with errs.ErrValueTooSmall. Map
// zero-based data with n+1 before encoding and n-1 after decoding.
//
// # Decoding
//
//	for v, err := range codec.Decode[uint16](bits) {
//	    if err != nil {
//	        // *codec.DecodeError: the value did not fit uint16 or the stream is corrupt.
//	        continue
//	    }
//	    use(v)
//	}
//
// The decode width does not have to match the encode width. A code word whose
// value does not fit the decode width yields a *DecodeError wrapping
// errs.ErrFibonacciElementOverflow (more digits than the width's table has) or
// errs.ErrConstructionOverflow (the digits sum past the width's maximum), never a
// silently wrong value.
//
// # Thread Safety
//
// Codec values and the built-in tables are immutable and may be shared. BitVec,
// Decoder and the bit sources they read from must be owned by one goroutine.
package codec
