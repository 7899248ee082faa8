package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	result := CheckEndianness()
	switch testBytes[0] {
	case 0x01:
		require.Equal(t, binary.BigEndian, result)
		require.False(t, IsNativeLittleEndian())
	case 0x02:
		require.Equal(t, binary.LittleEndian, result)
		require.True(t, IsNativeLittleEndian())
	default:
		require.Failf(t, "unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestGetEngine(t *testing.T) {
	require.Equal(t, GetBigEndianEngine(), GetEngine(true))
	require.Equal(t, GetLittleEndianEngine(), GetEngine(false))

	require.True(t, IsBigEndian(GetEngine(true)))
	require.False(t, IsBigEndian(GetEngine(false)))
}

func TestEngine_HeaderFields(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"little", GetLittleEndianEngine(), []byte{0x03, 0x00, 0x00, 0x00, 0x1d, 0, 0, 0, 0, 0, 0, 0}},
		{"big", GetBigEndianEngine(), []byte{0x00, 0x00, 0x00, 0x03, 0, 0, 0, 0, 0, 0, 0, 0x1d}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// count=3 values, 29 bits
			buf := tt.engine.AppendUint32(nil, 3)
			buf = tt.engine.AppendUint64(buf, 29)
			require.Equal(t, tt.want, buf)

			require.Equal(t, uint32(3), tt.engine.Uint32(buf[:4]))
			require.Equal(t, uint64(29), tt.engine.Uint64(buf[4:]))
		})
	}
}
