// Package bitvec provides a growable, MSB-first bit buffer.
//
// BitVec is the output of the Fibonacci encoder and the usual input of the decoder.
// Bits are packed into bytes most-significant bit first, so the first bit of the
// buffer is bit 7 of byte 0. The unused low bits of the last byte are always zero,
// which makes Bytes() directly usable as zero-padded storage.
package bitvec

import (
	"io"
	"iter"
	"strings"
)

const (
	defaultGrowBytes = 64
	largeBufferBytes = 4 * 1024
)

// BitVec is an appendable sequence of bits.
//
// BitVec is not safe for concurrent use.
type BitVec struct {
	buf []byte
	n   int // number of valid bits
}

// New creates an empty BitVec.
func New() *BitVec {
	return &BitVec{}
}

// WithCapacity creates an empty BitVec able to hold nbits bits without reallocating.
func WithCapacity(nbits int) *BitVec {
	if nbits < 0 {
		nbits = 0
	}

	return &BitVec{buf: make([]byte, 0, bytesFor(nbits))}
}

// FromBytes creates a BitVec holding the first nbits bits of data.
//
// If nbits is negative or larger than len(data)*8, all bits of data are used.
// The data is copied.
func FromBytes(data []byte, nbits int) *BitVec {
	if nbits < 0 || nbits > len(data)*8 {
		nbits = len(data) * 8
	}

	v := &BitVec{
		buf: make([]byte, bytesFor(nbits)),
		n:   nbits,
	}
	copy(v.buf, data)
	v.clearTail()

	return v
}

// FromBools creates a BitVec from individual bits.
func FromBools(bits ...bool) *BitVec {
	v := WithCapacity(len(bits))
	for _, b := range bits {
		v.Push(b)
	}

	return v
}

// Len returns the number of bits.
func (v *BitVec) Len() int {
	return v.n
}

// ByteLen returns the number of bytes needed to store the bits.
func (v *BitVec) ByteLen() int {
	return bytesFor(v.n)
}

// Get returns the bit at index i. It panics if i is out of range.
func (v *BitVec) Get(i int) bool {
	if i < 0 || i >= v.n {
		panic("bitvec: index out of range")
	}

	return v.buf[i>>3]&(0x80>>(i&7)) != 0
}

// Set sets the bit at index i. It panics if i is out of range.
func (v *BitVec) Set(i int, bit bool) {
	if i < 0 || i >= v.n {
		panic("bitvec: index out of range")
	}

	mask := byte(0x80 >> (i & 7))
	if bit {
		v.buf[i>>3] |= mask
	} else {
		v.buf[i>>3] &^= mask
	}
}

// Push appends a single bit.
func (v *BitVec) Push(bit bool) {
	if v.n&7 == 0 {
		v.reserve(1)
		v.buf = append(v.buf, 0)
	}
	if bit {
		v.buf[v.n>>3] |= 0x80 >> (v.n & 7)
	}
	v.n++
}

// Grow appends n bits, all set to bit.
func (v *BitVec) Grow(n int, bit bool) {
	if n <= 0 {
		return
	}

	start := v.n
	v.extend(n)

	if bit {
		for i := start; i < v.n; i++ {
			v.buf[i>>3] |= 0x80 >> (i & 7)
		}
	}
}

// Truncate shortens the vector to n bits. It does nothing if n >= Len().
func (v *BitVec) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.n {
		return
	}

	v.n = n
	v.buf = v.buf[:bytesFor(n)]
	v.clearTail()
}

// Reset empties the vector but keeps the allocated memory.
func (v *BitVec) Reset() {
	v.buf = v.buf[:0]
	v.n = 0
}

// Append appends all bits of other.
func (v *BitVec) Append(other *BitVec) {
	if other == nil || other.n == 0 {
		return
	}

	// Byte-aligned fast path.
	if v.n&7 == 0 {
		v.reserve(len(other.buf))
		v.buf = append(v.buf, other.buf...)
		v.n += other.n

		return
	}

	start := v.n
	v.extend(other.n)
	for i := 0; i < other.n; i++ {
		if other.buf[i>>3]&(0x80>>(i&7)) != 0 {
			j := start + i
			v.buf[j>>3] |= 0x80 >> (j & 7)
		}
	}
}

// Bytes returns the packed bits, most-significant bit first, with the last byte
// padded with zero bits.
//
// The returned slice aliases the internal buffer and is valid until the next
// mutation. The caller must not modify it.
func (v *BitVec) Bytes() []byte {
	return v.buf
}

// Clone returns a deep copy of v.
func (v *BitVec) Clone() *BitVec {
	c := &BitVec{
		buf: make([]byte, len(v.buf)),
		n:   v.n,
	}
	copy(c.buf, v.buf)

	return c
}

// Bools returns the bits as a bool slice.
func (v *BitVec) Bools() []bool {
	out := make([]bool, v.n)
	for i := range out {
		out[i] = v.buf[i>>3]&(0x80>>(i&7)) != 0
	}

	return out
}

// All returns an iterator over the bits in order.
func (v *BitVec) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.buf[i>>3]&(0x80>>(i&7)) != 0) {
				return
			}
		}
	}
}

// String renders the bits as '0' and '1' characters.
func (v *BitVec) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.buf[i>>3]&(0x80>>(i&7)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Equal reports whether v and other hold the same bits.
func (v *BitVec) Equal(other *BitVec) bool {
	if v.n != other.n {
		return false
	}
	for i := range v.buf {
		if v.buf[i] != other.buf[i] {
			return false
		}
	}

	return true
}

// NewReader returns a cursor reading the bits of v from the start.
//
// The reader borrows v; appending to v while reading is allowed and the new bits
// become visible to the reader.
func (v *BitVec) NewReader() *Reader {
	return &Reader{v: v}
}

// extend adds n zero bits.
func (v *BitVec) extend(n int) {
	newLen := v.n + n
	need := bytesFor(newLen) - len(v.buf)
	if need > 0 {
		v.reserve(need)
		v.buf = append(v.buf, make([]byte, need)...)
	}
	v.n = newLen
}

// reserve makes room for at least n more bytes.
//
// Small buffers grow by a fixed step to avoid many tiny reallocations; larger
// buffers grow by 25% of their capacity.
func (v *BitVec) reserve(n int) {
	if cap(v.buf)-len(v.buf) >= n {
		return
	}

	growBy := defaultGrowBytes
	if cap(v.buf) > largeBufferBytes {
		growBy = cap(v.buf) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(v.buf), len(v.buf)+growBy)
	copy(newBuf, v.buf)
	v.buf = newBuf
}

// clearTail zeroes the padding bits of the last byte.
func (v *BitVec) clearTail() {
	if rem := v.n & 7; rem != 0 {
		v.buf[len(v.buf)-1] &= ^byte(0xFF >> rem)
	}
}

func bytesFor(nbits int) int {
	return (nbits + 7) >> 3
}

// Reader is a forward-only cursor over the bits of a BitVec.
type Reader struct {
	v   *BitVec
	pos int
}

// ReadBool returns the next bit, or io.EOF when all bits have been read.
func (r *Reader) ReadBool() (bool, error) {
	if r.pos >= r.v.n {
		return false, io.EOF
	}

	bit := r.v.buf[r.pos>>3]&(0x80>>(r.pos&7)) != 0
	r.pos++

	return bit, nil
}

// Pos returns the index of the next bit to be read.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.v.n - r.pos
}
