// Package stream reads and writes Fibonacci code words over io.Reader and io.Writer.
//
// Writer packs code words MSB-first and zero-pads the last byte on Close. Reader
// treats trailing zero bits as padding, so a stream written by Writer reads back
// exactly the values written, with no length prefix.
//
//	var buf bytes.Buffer
//	w, _ := stream.NewWriter[uint32](&buf)
//	_ = w.WriteSlice([]uint32{1, 50, 3003})
//	_ = w.Close()
//
//	r, _ := stream.NewReader[uint32](&buf)
//	for v, err := range r.All() {
//		...
//	}
//
// Bit level I/O goes through github.com/icza/bitio. Writers and readers are not
// safe for concurrent use.
package stream
