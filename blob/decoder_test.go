package blob

import (
	"encoding/binary"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/fibcode/codec"
	"github.com/arloliu/fibcode/errs"
	"github.com/arloliu/fibcode/format"
	"github.com/arloliu/fibcode/section"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func encodeBlob[T codec.Unsigned](t *testing.T, values []T, opts ...EncoderOption) []byte {
	t.Helper()

	encoder, err := NewEncoder[T](opts...)
	require.NoError(t, err)
	require.NoError(t, encoder.WriteSlice(values))

	b, err := encoder.Finish()
	require.NoError(t, err)

	return b.Bytes()
}

func TestDecoder_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 34))
	values := make([]uint32, 10000)
	for i := range values {
		values[i] = uint32(rng.ExpFloat64()*50) + 1
	}

	for _, comp := range allCompressions {
		for _, big := range []bool{false, true} {
			name := comp.String()
			opts := []EncoderOption{WithCompression(comp)}
			if big {
				name += "/big"
				opts = append(opts, WithBigEndian())
			}

			t.Run(name, func(t *testing.T) {
				data := encodeBlob(t, values, opts...)

				decoder, err := NewDecoder[uint32](data)
				require.NoError(t, err)
				require.Equal(t, len(values), decoder.Len())
				require.Equal(t, format.Width32, decoder.Width())
				require.Equal(t, comp, decoder.Header().Flag.Compression)

				got, err := decoder.Values()
				require.NoError(t, err)
				require.Equal(t, values, got)

				// All restarts from the first value on each call.
				n := 0
				for v, err := range decoder.All() {
					require.NoError(t, err)
					require.Equal(t, values[n], v)
					n++
				}
				require.Equal(t, len(values), n)
			})
		}
	}
}

func TestDecoder_ExtremeValues(t *testing.T) {
	values := []uint64{1, ^uint64(0), 2, 12200160415121876738, 1 << 63}
	data := encodeBlob(t, values, WithCompression(format.CompressionLZ4))

	decoder, err := NewDecoder[uint64](data)
	require.NoError(t, err)
	got, err := decoder.Values()
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestDecoder_NarrowerWidth(t *testing.T) {
	data := encodeBlob(t, []uint64{256, 7, 23894089128374, 3})

	decoder, err := NewDecoder[uint8](data)
	require.NoError(t, err)
	require.Equal(t, format.Width64, decoder.Width())

	var (
		values  []uint8
		errList []error
	)
	for v, err := range decoder.All() {
		if err != nil {
			errList = append(errList, err)
			continue
		}
		values = append(values, v)
	}

	require.Equal(t, []uint8{7, 3}, values)
	require.Len(t, errList, 2)
	require.ErrorIs(t, errList[0], errs.ErrConstructionOverflow)
	require.ErrorIs(t, errList[1], errs.ErrFibonacciElementOverflow)

	_, err = decoder.Values()
	require.ErrorIs(t, err, errs.ErrConstructionOverflow)
}

func TestDecoder_InvalidBlobs(t *testing.T) {
	valid := encodeBlob(t, []uint16{1, 50, 3003})

	t.Run("short data", func(t *testing.T) {
		_, err := NewDecoder[uint16](valid[:10])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[1] = 0x00
		_, err := NewDecoder[uint16](data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		data := append(append([]byte(nil), valid...), 0x00)
		_, err := NewDecoder[uint16](data)
		require.ErrorIs(t, err, errs.ErrPayloadSize)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := NewDecoder[uint16](valid[:len(valid)-1])
		require.ErrorIs(t, err, errs.ErrPayloadSize)
	})

	t.Run("bit length mismatch", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		binary.LittleEndian.PutUint64(data[8:16], 64)
		_, err := NewDecoder[uint16](data)
		require.ErrorIs(t, err, errs.ErrPayloadSize)
	})

	t.Run("count mismatch", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		binary.LittleEndian.PutUint32(data[4:8], 4)
		decoder, err := NewDecoder[uint16](data)
		require.NoError(t, err)

		_, err = decoder.Values()
		require.ErrorIs(t, err, errs.ErrPayloadSize)
	})
}

func TestDecoder_ChecksumMismatch(t *testing.T) {
	data := encodeBlob(t, []uint16{1, 50, 3003})
	data[section.HeaderSize] ^= 0x01

	core, logs := observer.New(zap.WarnLevel)
	_, err := NewDecoder[uint16](data, WithDecoderLogger(zap.New(core)))
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	require.Equal(t, 1, logs.FilterMessage("blob checksum mismatch").Len())
}

func TestDecoder_CorruptedCompressedPayload(t *testing.T) {
	values := make([]uint32, 2000)
	for i := range values {
		values[i] = uint32(i%7) + 1
	}
	data := encodeBlob(t, values, WithCompression(format.CompressionS2))
	data[len(data)-1] ^= 0xFF

	_, err := NewDecoder[uint32](data)
	require.Error(t, err)
}
