package section

import "math"

const (
	// Bit masks of the options field
	ReservedLowMask  = 0x0001 // Mask for reserved bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicFibV1Opt is the version 1 magic number of the Fibonacci blob format.
	MagicFibV1Opt = 0xFB10
)

const (
	HeaderSize     = 32             // fixed header size in bytes
	PayloadOffset  = HeaderSize     // byte offset where the payload starts
	MaxValueCount  = math.MaxUint32 // maximum number of values in one blob
	MaxPayloadSize = math.MaxUint32 // maximum stored payload size in bytes
)
