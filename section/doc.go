// Package section defines the binary header of a fibcode blob.
//
// # Blob Structure
//
// A blob is a fixed-size header followed by a single payload:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Flag (4 bytes): options, width, compression          │
//	│  - Count (4 bytes)                                      │
//	│  - BitLen (8 bytes)                                     │
//	│  - PayloadSize (4 bytes)                                │
//	│  - Reserved (4 bytes)                                   │
//	│  - Checksum (8 bytes)                                   │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                             │
//	│  - Packed Fibonacci code words, optionally compressed   │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|------------------------------------------
//	0-1    | Options     | uint16 | Endianness bit and magic, always little-endian
//	2      | Width       | uint8  | Byte width of the encoded integer type
//	3      | Compression | uint8  | format.CompressionType of the payload
//	4-7    | Count       | uint32 | Number of values
//	8-15   | BitLen      | uint64 | Meaningful bits in the packed payload
//	16-19  | PayloadSize | uint32 | Stored payload size in bytes
//	20-23  | Reserved    | uint32 | Must be zero
//	24-31  | Checksum    | uint64 | xxHash64 of the uncompressed packed payload
//
// Fields from byte 4 on use the byte order selected by the endianness bit.
//
// # Options Field
//
//	Bit 0      | Reserved, must be 0
//	Bit 1      | Endianness: 0 = little, 1 = big
//	Bits 2-3   | Reserved, must be 0
//	Bits 4-15  | Magic number 0xFB10
package section
