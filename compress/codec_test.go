package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/arloliu/fibcode/codec"
	"github.com/arloliu/fibcode/errs"
	"github.com/arloliu/fibcode/format"
	"github.com/stretchr/testify/require"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// packedPayload returns the packed Fibonacci code words of values.
func packedPayload(t testing.TB, values []uint32) []byte {
	t.Helper()

	bits, err := codec.EncodeSlice(values)
	require.NoError(t, err)

	return bits.Bytes()
}

func repeatValues(pattern []uint32, n int) []uint32 {
	values := make([]uint32, 0, len(pattern)*n)
	for range n {
		values = append(values, pattern...)
	}

	return values
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		c, err := CreateCodec(ct, "payload")
		require.NoError(t, err, ct.String())
		require.NotNil(t, c)

		shared, err := GetCodec(ct)
		require.NoError(t, err)
		require.IsType(t, shared, c)
	}

	_, err := CreateCodec(format.CompressionType(0x7f), "payload")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
	require.Contains(t, err.Error(), "payload compression")

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, c := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := c.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := c.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data func(t *testing.T) []byte
	}{
		{
			name: "single_code_word",
			data: func(t *testing.T) []byte { return packedPayload(t, []uint32{1}) },
		},
		{
			name: "small_values",
			data: func(t *testing.T) []byte { return packedPayload(t, []uint32{1, 50, 3003, 2, 14, 65}) },
		},
		{
			name: "repeated_run",
			data: func(t *testing.T) []byte { return packedPayload(t, repeatValues([]uint32{7}, 4096)) },
		},
		{
			name: "repeated_pattern",
			data: func(t *testing.T) []byte {
				return packedPayload(t, repeatValues([]uint32{3, 1, 4, 1, 5, 9, 2, 6}, 2048))
			},
		},
		{
			name: "counting",
			data: func(t *testing.T) []byte {
				values := make([]uint32, 0, 20000)
				for i := range 20000 {
					values = append(values, uint32(i+1))
				}

				return packedPayload(t, values)
			},
		},
		{
			name: "zeros",
			data: func(t *testing.T) []byte { return make([]byte, 64*1024) },
		},
	}

	for codecName, c := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					data := tc.data(t)

					compressed, err := c.Compress(data)
					require.NoError(t, err)
					require.NotEmpty(t, compressed)

					t.Logf("Original: %d bytes, Compressed: %d bytes", len(data), len(compressed))

					decompressed, err := c.Decompress(compressed)
					require.NoError(t, err)
					require.True(t, bytes.Equal(data, decompressed), "decompressed payload must match original")
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalid := []byte("this is not compressed data")

	for _, name := range []string{"S2", "Zstd"} {
		c := getAllCodecs()[name]
		t.Run(name, func(t *testing.T) {
			_, err := c.Decompress(invalid)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 16
	data := packedPayload(t, repeatValues([]uint32{12, 400, 3, 3, 88}, 500))

	for codecName, c := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			done := make(chan error, numGoroutines)

			for range numGoroutines {
				go func() {
					compressed, err := c.Compress(data)
					if err != nil {
						done <- err
						return
					}
					decompressed, err := c.Decompress(compressed)
					if err != nil {
						done <- err
						return
					}
					if !bytes.Equal(data, decompressed) {
						done <- fmt.Errorf("round trip mismatch")
						return
					}
					done <- nil
				}()
			}

			for range numGoroutines {
				require.NoError(t, <-done)
			}
		})
	}
}

func TestLZ4Compressor_LargeExpansionRatio(t *testing.T) {
	// 1MB of zeros compresses far beyond the initial 4x decode buffer.
	data := make([]byte, 1024*1024)
	c := NewLZ4Compressor()

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(data))

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Len(t, decompressed, len(data))
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte{0b11001001, 0b01100001}
	c := NewNoOpCompressor()

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &data[0], &decompressed[0])
}

func TestCompressionStats_Calculations(t *testing.T) {
	stats := CompressionStats{OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	grown := CompressionStats{OriginalSize: 100, CompressedSize: 120}
	require.InDelta(t, -20.0, grown.SpaceSavings(), 1e-9)

	empty := CompressionStats{}
	require.Zero(t, empty.CompressionRatio())
	require.Zero(t, empty.SpaceSavings())
}

func TestMeasure(t *testing.T) {
	data := packedPayload(t, repeatValues([]uint32{7}, 8192))

	stats, err := Measure(format.CompressionZstd, data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(len(data)), stats.OriginalSize)
	require.Less(t, stats.CompressedSize, stats.OriginalSize)
	require.Positive(t, stats.SpaceSavings())

	stats, err = Measure(format.CompressionNone, data)
	require.NoError(t, err)
	require.Equal(t, stats.OriginalSize, stats.CompressedSize)

	_, err = Measure(format.CompressionType(0x9), data)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}
