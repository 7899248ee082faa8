package section

import (
	"github.com/arloliu/fibcode/endian"
	"github.com/arloliu/fibcode/errs"
	"github.com/arloliu/fibcode/format"
)

// Flag holds the first four header bytes.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is reserved, must be 0.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number, 0xFB10 (0b1111_1011_0001_0000) for format v1.
	Options uint16

	// Width is the byte width of the integer type the values were encoded from.
	Width format.Width
	// Compression is the algorithm applied to the packed payload.
	Compression format.CompressionType
}

// NewFlag creates a little-endian, uncompressed flag for the given width.
func NewFlag(width format.Width) Flag {
	return Flag{
		Options:     MagicFibV1Opt,
		Width:       width,
		Compression: format.CompressionNone,
	}
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicFibV1Opt
}

// Validate checks the magic number, the reserved bits, the width and the compression.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&(ReservedLowMask|ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.Width.Valid() {
		return errs.ErrUnsupportedWidth
	}

	if !f.Compression.Valid() {
		return errs.ErrInvalidCompression
	}

	return nil
}

// GetEndianEngine returns the engine for the fields after the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	return endian.GetEngine(f.IsBigEndian())
}
