package blob

import (
	"github.com/arloliu/fibcode/format"
	"github.com/arloliu/fibcode/section"
)

// Blob is an encoded, self-describing container of Fibonacci-coded values.
type Blob struct {
	data   []byte
	header section.Header
}

// Bytes returns the serialized blob. The caller must not modify it.
func (b Blob) Bytes() []byte {
	return b.data
}

// Header returns the parsed header of the blob.
func (b Blob) Header() section.Header {
	return b.header
}

// Len returns the number of values in the blob.
func (b Blob) Len() int {
	return int(b.header.Count)
}

// Size returns the size of the serialized blob in bytes.
func (b Blob) Size() int {
	return len(b.data)
}

// Width returns the integer width the values were encoded from.
func (b Blob) Width() format.Width {
	return b.header.Flag.Width
}

// Compression returns the compression applied to the payload.
func (b Blob) Compression() format.CompressionType {
	return b.header.Flag.Compression
}
