package pool

import (
	"sync"

	"github.com/arloliu/fibcode/bitvec"
)

// BitVecMaxBytes is the largest bit vector backing array PutBitVec keeps for reuse.
const BitVecMaxBytes = 1024 * 256

var bitVecPool = sync.Pool{
	New: func() any { return bitvec.New() },
}

// GetBitVec retrieves an empty bit vector from the pool.
//
// The caller must call the returned cleanup function once it no longer uses the
// vector or any slice obtained from its Bytes method.
//
// Example:
//
//	bits, cleanup := pool.GetBitVec()
//	defer cleanup()
func GetBitVec() (*bitvec.BitVec, func()) {
	bv, _ := bitVecPool.Get().(*bitvec.BitVec)

	return bv, func() { PutBitVec(bv) }
}

// PutBitVec resets bv and returns it to the pool.
func PutBitVec(bv *bitvec.BitVec) {
	if bv == nil || cap(bv.Bytes()) > BitVecMaxBytes {
		return
	}

	bv.Reset()
	bitVecPool.Put(bv)
}
