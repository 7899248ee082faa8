package blob

import (
	"testing"

	"github.com/arloliu/fibcode/errs"
	"github.com/arloliu/fibcode/format"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	blobs := [][]byte{
		encodeBlob(t, []uint32{1, 2, 3}),
		encodeBlob(t, []uint32{}, WithCompression(format.CompressionZstd)),
		encodeBlob(t, []uint32{40, 50}, WithBigEndian()),
	}

	s, err := NewSet[uint32](blobs)
	require.NoError(t, err)
	require.Equal(t, 3, s.BlobCount())
	require.Equal(t, 5, s.Len())

	var got []uint32
	for v, err := range s.All() {
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []uint32{1, 2, 3, 40, 50}, got)

	count := 0
	for range s.All() {
		count++
		if count == 4 {
			break
		}
	}
	require.Equal(t, 4, count)
}

func TestSet_InvalidBlob(t *testing.T) {
	good := encodeBlob(t, []uint32{1})

	_, err := NewSet[uint32]([][]byte{good, good[:5]})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	require.Contains(t, err.Error(), "blob 1")
}
