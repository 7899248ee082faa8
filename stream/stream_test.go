package stream

import (
	"bytes"
	"errors"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/fibcode/codec"
	"github.com/arloliu/fibcode/errs"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func readAll[T codec.Unsigned](t *testing.T, r io.Reader) ([]T, error) {
	t.Helper()

	sr, err := NewReader[T](r)
	require.NoError(t, err)

	var (
		out      []T
		firstErr error
	)
	for v, err := range sr.All() {
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, v)
	}

	return out, firstErr
}

func TestWriter_PackedBytes(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter[uint16](&buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteSlice([]uint16{1, 50, 3003}))
	require.Equal(t, 3, w.Count())
	require.Equal(t, int64(29), w.BitLen())
	require.NoError(t, w.Close())

	require.Equal(t, []byte{0b11001001, 0b01100001, 0b00100001, 0b00011000}, buf.Bytes())
}

func TestStream_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	values := make([]uint64, 5000)
	for i := range values {
		values[i] = (rng.Uint64() >> rng.IntN(64)) | 1
	}

	var buf bytes.Buffer
	w, err := NewWriter[uint64](&buf)
	require.NoError(t, err)
	for _, v := range values {
		require.NoError(t, w.Write(v))
	}
	require.NoError(t, w.Close())
	require.Equal(t, int((w.BitLen()+7)/8), buf.Len())

	got, err := readAll[uint64](t, &buf)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestWriter_ZeroLeavesStreamUntouched(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter[uint8](&buf)
	require.NoError(t, err)

	require.NoError(t, w.Write(4))
	require.ErrorIs(t, w.Write(0), errs.ErrValueTooSmall)
	require.NoError(t, w.Write(2))
	require.NoError(t, w.Close())

	require.Equal(t, 2, w.Count())
	got, err := readAll[uint8](t, &buf)
	require.NoError(t, err)
	require.Equal(t, []uint8{4, 2}, got)
}

func TestWriter_WriteSliceElementError(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter[uint32](&buf)
	require.NoError(t, err)

	err = w.WriteSlice([]uint32{5, 6, 0, 7})
	var elemErr *codec.ElementError
	require.ErrorAs(t, err, &elemErr)
	require.Equal(t, 2, elemErr.Index)
	require.Equal(t, 2, w.Count())
}

func TestWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter[uint8](&buf)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second Close is a no-op")
	require.ErrorIs(t, w.Write(1), errs.ErrEncoderFinished)
	require.Zero(t, buf.Len())
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriter_UnderlyingError(t *testing.T) {
	boom := errors.New("boom")
	w, err := NewWriter[uint16](failingWriter{err: boom})
	require.NoError(t, err)

	require.NoError(t, w.WriteSlice([]uint16{1, 2, 3}))
	require.ErrorIs(t, w.Close(), boom)
}

func TestReader_PaddingIsNotAValue(t *testing.T) {
	// "011" followed by five padding zeros.
	got, err := readAll[uint8](t, bytes.NewReader([]byte{0b01100000}))
	require.NoError(t, err)
	require.Equal(t, []uint8{2}, got)
}

func TestReader_Truncated(t *testing.T) {
	// "11" then "0101" and two zeros: the second word never terminates.
	sr, err := NewReader[uint8](bytes.NewReader([]byte{0b11010100}))
	require.NoError(t, err)

	v, err := sr.Read()
	require.NoError(t, err)
	require.Equal(t, uint8(1), v)

	_, err = sr.Read()
	require.ErrorIs(t, err, errs.ErrTruncatedCodeWord)
	var decErr *codec.DecodeError
	require.ErrorAs(t, err, &decErr)
	require.Equal(t, int64(2), decErr.Offset)

	_, err = sr.Read()
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, int64(8), sr.Offset())
}

func TestReader_NarrowerWidth(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter[uint64](&buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteSlice([]uint64{256, 7}))
	require.NoError(t, w.Close())

	sr, err := NewReader[uint8](&buf)
	require.NoError(t, err)

	_, err = sr.Read()
	require.ErrorIs(t, err, errs.ErrConstructionOverflow)

	v, err := sr.Read()
	require.NoError(t, err)
	require.Equal(t, uint8(7), v)
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	var buf bytes.Buffer
	w, err := NewWriter[uint64](&buf, WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, w.WriteSlice([]uint64{256, 3}))
	require.NoError(t, w.Close())

	closed := logs.FilterMessage("fibonacci stream closed").All()
	require.Len(t, closed, 1)
	require.Equal(t, int64(2), closed[0].ContextMap()["count"])

	sr, err := NewReader[uint8](&buf, WithLogger(logger))
	require.NoError(t, err)
	for range sr.All() {
	}
	require.Equal(t, 1, logs.FilterMessage("resynchronized after undecodable code word").Len())

	_, err = NewWriter[uint8](&buf, WithLogger(nil))
	require.NoError(t, err)
}
