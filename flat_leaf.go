package hamt

import (
	"fmt"
	"strings"
)

// flatLeaf is the terminal node for a single key. The full 32bit hash of
// the key is kept alongside it so the trie never has to re-hash on the way
// down or while merging leaves.
type flatLeaf struct {
	hash32 uint32
	key    interface{}
	val    interface{}
}

func newFlatLeaf(h32 uint32, key, val interface{}) *flatLeaf {
	var fl = new(flatLeaf)
	fl.hash32 = h32
	fl.key = key
	fl.val = val
	return fl
}

// hashcode() is required for leafI
func (l *flatLeaf) hashcode() uint32 {
	return l.hash32
}

func (l *flatLeaf) String() string {
	return fmt.Sprintf("flatLeaf{hash32:%s, key:%v, val:%v}", hash32String(l.hash32), l.key, l.val)
}

// alter() is required for nodeI
func (l *flatLeaf) alter(shift uint, h32 uint32, key interface{}, fn alterFn) nodeI {
	if eql(key, l.key) {
		var v, keep = fn(l.val, true)
		if !keep {
			return nil
		}
		return newFlatLeaf(l.hash32, l.key, v)
	}

	var v, keep = fn(nil, false)
	if !keep {
		return l
	}
	return mergeLeaves(shift, l.hash32, l, h32, newFlatLeaf(h32, key, v))
}

// walk() is required for nodeI
func (l *flatLeaf) walk(fn func(kv keyVal) bool) bool {
	return fn(keyVal{l.key, l.val})
}

// keyVals() is required for leafI
func (l *flatLeaf) keyVals() []keyVal {
	return []keyVal{{l.key, l.val}}
}

// treeString() is required for nodeI
func (l *flatLeaf) treeString(w *strings.Builder, indent string, depth uint) {
	w.WriteString(indent)
	w.WriteString(strings.Repeat("  ", int(depth)))
	fmt.Fprintf(w, "-leaf(k: %v, v: %v)\n", l.key, l.val)
}
