package section

import (
	"encoding/binary"

	"github.com/arloliu/fibcode/errs"
	"github.com/arloliu/fibcode/format"
)

// Header is the fixed-size section at the start of a blob.
type Header struct {
	// Flag holds the options, width and compression.
	Flag Flag // byte offset 0-3
	// Count is the number of values stored in the blob.
	Count uint32 // byte offset 4-7
	// BitLen is the number of meaningful bits in the packed payload. The packed
	// payload is BitLen rounded up to whole bytes, padded with zero bits.
	BitLen uint64 // byte offset 8-15
	// PayloadSize is the size of the payload as stored, after compression.
	PayloadSize uint32 // byte offset 16-19
	// byte offset 20-23 is reserved and must be zero.

	// Checksum is the xxHash64 of the packed payload before compression.
	Checksum uint64 // byte offset 24-31
}

// NewHeader creates a header for values of the given width.
// Count, BitLen, PayloadSize and Checksum are set when the encoder finishes.
func NewHeader(width format.Width) *Header {
	return &Header{Flag: NewFlag(width)}
}

// PackedSize returns the size in bytes of the uncompressed packed payload.
func (h *Header) PackedSize() uint64 {
	return (h.BitLen + 7) / 8
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, flag validation errors,
//     or ErrInvalidHeaderFlags if the reserved bytes are not zero
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The options field is always little-endian, it tells the byte order of the rest.
	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.Width = format.Width(data[2])
	h.Flag.Compression = format.CompressionType(data[3])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.Count = engine.Uint32(data[4:8])
	h.BitLen = engine.Uint64(data[8:16])
	h.PayloadSize = engine.Uint32(data[16:20])
	if engine.Uint32(data[20:24]) != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to buf.
func (h *Header) AppendTo(buf []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	buf = binary.LittleEndian.AppendUint16(buf, h.Flag.Options)
	buf = append(buf, byte(h.Flag.Width), byte(h.Flag.Compression))
	buf = engine.AppendUint32(buf, h.Count)
	buf = engine.AppendUint64(buf, h.BitLen)
	buf = engine.AppendUint32(buf, h.PayloadSize)
	buf = engine.AppendUint32(buf, 0)
	buf = engine.AppendUint64(buf, h.Checksum)

	return buf
}

// ParseHeader parses a Header from the start of data.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
