package hamt

import (
	"fmt"
	"strings"
)

// collisionLeaf is the terminal node for two or more keys whose full 32bit
// hashes are identical. The keys are pairwise distinct by eql(); a
// collisionLeaf that would shrink to a single pair collapses to a flatLeaf
// instead.
type collisionLeaf struct {
	hash32 uint32
	kvs    []keyVal
}

func newCollisionLeaf(h32 uint32, kvs []keyVal) *collisionLeaf {
	var cl = new(collisionLeaf)
	cl.hash32 = h32
	cl.kvs = kvs
	return cl
}

// hashcode() is required for leafI
func (l *collisionLeaf) hashcode() uint32 {
	return l.hash32
}

func (l *collisionLeaf) String() string {
	var kvstrs = make([]string, len(l.kvs))
	for i := 0; i < len(l.kvs); i++ {
		kvstrs[i] = l.kvs[i].String()
	}
	return fmt.Sprintf("collisionLeaf{hash32:%s, kvs:[%s]}", hash32String(l.hash32), strings.Join(kvstrs, ","))
}

// alter() is required for nodeI
func (l *collisionLeaf) alter(shift uint, h32 uint32, key interface{}, fn alterFn) nodeI {
	if h32 != l.hash32 {
		// The whole collision block moves as a unit below a new table.
		var v, keep = fn(nil, false)
		if !keep {
			return l
		}
		return mergeLeaves(shift, l.hash32, l, h32, newFlatLeaf(h32, key, v))
	}

	for i := 0; i < len(l.kvs); i++ {
		if !eql(key, l.kvs[i].Key) {
			continue
		}

		var v, keep = fn(l.kvs[i].Val, true)

		if keep {
			var kvs = make([]keyVal, len(l.kvs))
			copy(kvs, l.kvs)
			kvs[i] = keyVal{l.kvs[i].Key, v}
			return newCollisionLeaf(l.hash32, kvs)
		}

		if len(l.kvs) == 2 {
			// collapse to a flatLeaf holding the surviving pair
			var kv = l.kvs[1-i]
			return newFlatLeaf(l.hash32, kv.Key, kv.Val)
		}

		var kvs = make([]keyVal, 0, len(l.kvs)-1)
		kvs = append(kvs, l.kvs[:i]...)
		kvs = append(kvs, l.kvs[i+1:]...)
		return newCollisionLeaf(l.hash32, kvs)
	}

	var v, keep = fn(nil, false)
	if !keep {
		return l
	}

	var kvs = make([]keyVal, 0, len(l.kvs)+1)
	kvs = append(kvs, l.kvs...)
	kvs = append(kvs, keyVal{key, v})
	return newCollisionLeaf(l.hash32, kvs)
}

// walk() is required for nodeI
func (l *collisionLeaf) walk(fn func(kv keyVal) bool) bool {
	for _, kv := range l.kvs {
		if !fn(kv) {
			return false
		}
	}
	return true
}

// keyVals() is required for leafI
func (l *collisionLeaf) keyVals() []keyVal {
	return l.kvs
}

// treeString() is required for nodeI; the "leaf" label for a collision is
// historical, the pair count tells them apart.
func (l *collisionLeaf) treeString(w *strings.Builder, indent string, depth uint) {
	w.WriteString(indent)
	w.WriteString(strings.Repeat("  ", int(depth)))
	fmt.Fprintf(w, "-leaf(%d)\n", len(l.kvs))
}
