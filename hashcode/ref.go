package hashcode

import (
	"math"
	"sync"
)

// Values with reference identity but no readable structure (channels,
// funcs, unsafe pointers) hash by a process-wide table assigning each
// distinct reference a sequential id. The counter wraps to 0 past
// 0x7fffffff.
//
// The table keys on the pointer word alone and does not retain the
// referent; an entry can outlive its object, and a recycled address reuses
// the old id. Both are harmless for hashing, which only needs the id to be
// stable while the reference is alive.
var (
	referenceMu  sync.Mutex
	referenceUid int32
	referenceIds = make(map[uintptr]int32)
)

func referenceHash(p uintptr) int32 {
	referenceMu.Lock()
	defer referenceMu.Unlock()

	if id, ok := referenceIds[p]; ok {
		return id
	}

	var id = referenceUid
	if referenceUid == math.MaxInt32 {
		referenceUid = 0
	} else {
		referenceUid++
	}

	referenceIds[p] = id
	return id
}
