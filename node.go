package hamt

import (
	"fmt"
	"log"
	"strings"

	"github.com/giacomocavalieri/hamt/hashcode"
)

// nodeI is the interface for every entry in a table; so table entries are
// either a leaf or a table or nil. A nil nodeI is the empty node: it is the
// root of the empty Hamt and fills the unoccupied slots of an arrayTable.
//
// The nodeI interface is implemented by flatLeaf, collisionLeaf,
// packedTable, and arrayTable.
type nodeI interface {
	// alter rewrites the spine for a single key and returns the replacement
	// node; it returns the receiver itself when nothing changed.
	alter(shift uint, h32 uint32, key interface{}, fn alterFn) nodeI

	// walk calls fn for every key/val pair under the node until fn returns
	// false; it reports whether the walk ran to completion.
	walk(fn func(kv keyVal) bool) bool

	treeString(w *strings.Builder, indent string, depth uint)

	String() string
}

// Every leafI is a nodeI. The hashcode() method returns the full 32bit hash
// of the leaf's key; for a collisionLeaf that shared hash is the definition
// of what a collision is.
type leafI interface {
	nodeI
	hashcode() uint32
	keyVals() []keyVal
}

type keyVal struct {
	Key interface{}
	Val interface{}
}

func (kv keyVal) String() string {
	return fmt.Sprintf("{%v, %v}", kv.Key, kv.Val)
}

// alterFn decides the fate of a single key's binding. It is invoked at most
// once per alter call: with (prev, true) when the key is currently bound to
// prev, or (nil, false) when it is not. It returns the new value and
// keep=true to bind it, or keep=false to leave the key unbound. The Hamt
// methods supply closures that also account for the entry-count delta.
type alterFn func(prev interface{}, present bool) (next interface{}, keep bool)

// alter is the single write primitive of the trie. It handles the empty
// node here and dispatches every other variant to its method.
func alter(n nodeI, shift uint, h32 uint32, key interface{}, fn alterFn) nodeI {
	if n == nil {
		var v, keep = fn(nil, false)
		if !keep {
			return nil
		}
		return newFlatLeaf(h32, key, v)
	}
	return n.alter(shift, h32, key, fn)
}

// mergeLeaves combines two terminal nodes into a subtree rooted at shift.
// Both arguments are a flatLeaf or a collisionLeaf. When the hashes agree
// the result is a collisionLeaf; the pair order is deterministic so the
// diagnostic tree dump is stable: two collisions concatenate a then b, a
// collision's pairs go before a lone leaf's pair, and for two flat leaves
// b's pair goes before a's.
func mergeLeaves(shift uint, hashA uint32, a leafI, hashB uint32, b leafI) nodeI {
	if hashA == hashB {
		var akvs = a.keyVals()
		var bkvs = b.keyVals()

		var kvs []keyVal
		_, aColl := a.(*collisionLeaf)
		_, bColl := b.(*collisionLeaf)
		switch {
		case aColl:
			kvs = append(append(kvs, akvs...), bkvs...)
		case bColl:
			kvs = append(append(kvs, bkvs...), akvs...)
		default:
			kvs = append(append(kvs, bkvs...), akvs...)
		}

		return newCollisionLeaf(hashA, kvs)
	}

	if shift > maxShift {
		log.Panicf("mergeLeaves: SHOULD NOT BE REACHED; shift,%d > maxShift,%d with hashA,%#x != hashB,%#x", shift, maxShift, hashA, hashB)
	}

	var idxA = index(hashA, shift)
	var idxB = index(hashB, shift)

	if idxA == idxB {
		var child = mergeLeaves(shift+nBits, hashA, a, hashB, b)
		return &packedTable{
			nodeMap: uint32(1) << idxA,
			nodes:   []nodeI{child},
		}
	}

	var t = new(packedTable)
	t.nodeMap = uint32(1)<<idxA | uint32(1)<<idxB
	if idxA < idxB {
		t.nodes = []nodeI{a, b}
	} else {
		t.nodes = []nodeI{b, a}
	}
	return t
}

// eql is the key equality used throughout the trie. It lives here so the
// kernel has a single place to swap the predicate.
func eql(a, b interface{}) bool {
	return hashcode.Equal(a, b)
}
