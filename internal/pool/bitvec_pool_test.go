package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBitVec(t *testing.T) {
	bv, cleanup := GetBitVec()
	require.NotNil(t, bv)
	require.Equal(t, 0, bv.Len())

	bv.Push(true)
	bv.Push(true)
	require.Equal(t, "11", bv.String())
	cleanup()

	again, cleanup := GetBitVec()
	defer cleanup()
	require.Equal(t, 0, again.Len(), "pooled vectors must come back empty")
}

func TestPutBitVec_DropsLargeVectors(t *testing.T) {
	bv, _ := GetBitVec()
	bv.Grow((BitVecMaxBytes+1)*8, false)

	// Must not panic; the vector is simply not retained.
	PutBitVec(bv)
	PutBitVec(nil)
}
