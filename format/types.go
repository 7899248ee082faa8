package format

type (
	Width           uint8
	CompressionType uint8
)

const (
	Width8  Width = 1 // Width8 represents uint8 values.
	Width16 Width = 2 // Width16 represents uint16 values.
	Width32 Width = 4 // Width32 represents uint32 values.
	Width64 Width = 8 // Width64 represents uint64 values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Bits returns the number of bits of the width, or 0 for an unknown width.
func (w Width) Bits() int {
	switch w {
	case Width8, Width16, Width32, Width64:
		return int(w) * 8
	default:
		return 0
	}
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	return w.Bits() != 0
}

func (w Width) String() string {
	switch w {
	case Width8:
		return "uint8"
	case Width16:
		return "uint16"
	case Width32:
		return "uint32"
	case Width64:
		return "uint64"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the built-in compression types.
func (c CompressionType) Valid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
