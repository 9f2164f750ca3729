package hamt

import (
	"fmt"
	"strings"
)

// The arrayTable is the dense version of a packedTable: all 32 fragment
// positions are materialized and a child is found by direct indexing, at
// the price of carrying the nil slots. numEnts counts the non-nil slots.
//
// A packedTable promotes to an arrayTable when it outgrows
// maxPackedEntries; removals that leave fewer than minArrayEntries slots
// occupied demote the table back to a packedTable.
type arrayTable struct {
	nodes   [tableCapacity]nodeI
	numEnts uint
}

func (t *arrayTable) copy() *arrayTable {
	var nt = new(arrayTable)
	nt.nodes = t.nodes
	nt.numEnts = t.numEnts
	return nt
}

// entries returns the (fragment, node) pairs ordered from lowest fragment
// to highest.
func (t *arrayTable) entries() []tableEntry {
	var ents = make([]tableEntry, 0, t.numEnts)

	for i := uint(0); i < tableCapacity; i++ {
		if t.nodes[i] != nil {
			ents = append(ents, tableEntry{i, t.nodes[i]})
		}
	}

	return ents
}

// demote converts the table back to a packedTable.
func (t *arrayTable) demote() *packedTable {
	var nt = new(packedTable)
	nt.nodes = make([]nodeI, 0, t.numEnts)

	for _, ent := range t.entries() {
		nt.nodeMap |= uint32(1) << ent.idx
		nt.nodes = append(nt.nodes, ent.node)
	}

	return nt
}

// alter() is required for nodeI
func (t *arrayTable) alter(shift uint, h32 uint32, key interface{}, fn alterFn) nodeI {
	var idx = index(h32, shift)
	var old = t.nodes[idx]

	if old == nil {
		var v, keep = fn(nil, false)
		if !keep {
			return t
		}
		var nt = t.copy()
		nt.nodes[idx] = newFlatLeaf(h32, key, v)
		nt.numEnts++
		return nt
	}

	var nn = alter(old, shift+nBits, h32, key, fn)
	if nn == old {
		return t
	}

	if nn == nil {
		if t.numEnts == 1 {
			return nil
		}
		var nt = t.copy()
		nt.nodes[idx] = nil
		nt.numEnts--
		if nt.numEnts < minArrayEntries {
			return nt.demote()
		}
		return nt
	}

	var nt = t.copy()
	nt.nodes[idx] = nn
	return nt
}

// walk() is required for nodeI
func (t *arrayTable) walk(fn func(kv keyVal) bool) bool {
	for _, n := range t.nodes {
		if n == nil {
			continue
		}
		if !n.walk(fn) {
			return false
		}
	}
	return true
}

func (t *arrayTable) String() string {
	return fmt.Sprintf("arrayTable{nentries:%d}", t.numEnts)
}

// treeString() is required for nodeI
func (t *arrayTable) treeString(w *strings.Builder, indent string, depth uint) {
	w.WriteString(indent)
	w.WriteString(strings.Repeat("  ", int(depth)))
	fmt.Fprintf(w, "-array(%d)\n", t.numEnts)

	for _, n := range t.nodes {
		if n != nil {
			n.treeString(w, indent, depth+1)
		}
	}
}
