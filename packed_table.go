package hamt

import (
	"fmt"
	"strings"
)

// The packedTable is a low memory usage version of an arrayTable. It
// records which of the 32 fragment positions are populated in a bit map
// called nodeMap and stores only the populated nodes, in a slice ordered
// from the Least Significant Bit of nodeMap to the Most Significant Bit.
//
// The slot of a fragment idx inside the nodes slice is the number of bits
// set in nodeMap below the idx'th bit; bitCount32() computes that Hamming
// Weight. A packedTable holds at most maxPackedEntries nodes; inserting
// into a table already at that limit promotes it to an arrayTable.
type packedTable struct {
	nodeMap uint32
	nodes   []nodeI
}

func (t *packedTable) copyExceptNodes() *packedTable {
	var nt = new(packedTable)
	nt.nodeMap = t.nodeMap
	return nt
}

// get returns the child stored for fragment idx, or nil.
func (t *packedTable) get(idx uint) nodeI {
	var nodeBit = uint32(1) << idx

	if t.nodeMap&nodeBit == 0 {
		return nil
	}

	// Count the number of bits in the nodeMap below the idx'th bit
	var i = bitCount32(t.nodeMap & (nodeBit - 1))

	return t.nodes[i]
}

func (t *packedTable) insert(idx uint, entry nodeI) *packedTable {
	var nodeBit = uint32(1) << idx
	var i = bitCount32(t.nodeMap & (nodeBit - 1))

	var nt = t.copyExceptNodes()
	nt.nodeMap |= nodeBit

	nt.nodes = make([]nodeI, len(t.nodes)+1)
	copy(nt.nodes, t.nodes[:i])
	nt.nodes[i] = entry
	copy(nt.nodes[i+1:], t.nodes[i:])

	return nt
}

func (t *packedTable) replace(idx uint, entry nodeI) *packedTable {
	// t.nodeMap & 1<<idx > 0
	var nodeBit = uint32(1) << idx
	var i = bitCount32(t.nodeMap & (nodeBit - 1))

	var nt = t.copyExceptNodes()

	nt.nodes = make([]nodeI, len(t.nodes))
	copy(nt.nodes, t.nodes)
	nt.nodes[i] = entry

	return nt
}

func (t *packedTable) remove(idx uint) *packedTable {
	var nodeBit = uint32(1) << idx
	var i = bitCount32(t.nodeMap & (nodeBit - 1))

	var nt = t.copyExceptNodes()
	nt.nodeMap &^= nodeBit

	nt.nodes = make([]nodeI, len(t.nodes)-1)
	copy(nt.nodes, t.nodes[:i])
	copy(nt.nodes[i:], t.nodes[i+1:])

	return nt
}

// entries returns the (fragment, node) pairs ordered from lowest fragment
// to highest.
func (t *packedTable) entries() []tableEntry {
	var ents = make([]tableEntry, len(t.nodes))

	for i, j := uint(0), uint(0); i < tableCapacity; i++ {
		if t.nodeMap&(uint32(1)<<i) > 0 {
			ents[j] = tableEntry{i, t.nodes[j]}
			j++
		}
	}

	return ents
}

// promote converts the table to an arrayTable while adding entry at
// fragment idx.
func (t *packedTable) promote(idx uint, entry nodeI) *arrayTable {
	var nt = new(arrayTable)
	nt.numEnts = uint(len(t.nodes)) + 1
	nt.nodes[idx] = entry

	for _, ent := range t.entries() {
		nt.nodes[ent.idx] = ent.node
	}

	return nt
}

// alter() is required for nodeI
func (t *packedTable) alter(shift uint, h32 uint32, key interface{}, fn alterFn) nodeI {
	var idx = index(h32, shift)
	var nodeBit = uint32(1) << idx

	if t.nodeMap&nodeBit != 0 {
		var i = bitCount32(t.nodeMap & (nodeBit - 1))
		var old = t.nodes[i]

		var nn = alter(old, shift+nBits, h32, key, fn)
		if nn == old {
			return t
		}
		if nn == nil {
			if t.nodeMap == nodeBit {
				return nil
			}
			return t.remove(idx)
		}
		return t.replace(idx, nn)
	}

	var v, keep = fn(nil, false)
	if !keep {
		return t
	}

	var lf = newFlatLeaf(h32, key, v)
	if uint(len(t.nodes)) >= maxPackedEntries {
		return t.promote(idx, lf)
	}
	return t.insert(idx, lf)
}

// walk() is required for nodeI
func (t *packedTable) walk(fn func(kv keyVal) bool) bool {
	for _, n := range t.nodes {
		if !n.walk(fn) {
			return false
		}
	}
	return true
}

func (t *packedTable) String() string {
	return fmt.Sprintf("packedTable{nodeMap:%032b, nentries:%d}", t.nodeMap, len(t.nodes))
}

// treeString() is required for nodeI
func (t *packedTable) treeString(w *strings.Builder, indent string, depth uint) {
	w.WriteString(indent)
	w.WriteString(strings.Repeat("  ", int(depth)))
	fmt.Fprintf(w, "-packed(%d)\n", len(t.nodes))

	for _, n := range t.nodes {
		n.treeString(w, indent, depth+1)
	}
}

type tableEntry struct {
	idx  uint
	node nodeI
}
