/*
Package hamt implements a functional Hash Array Mapped Trie (HAMT) mapping
arbitrary Go values to arbitrary Go values. The term functional is used to
imply immutable and persistent: Put and Del return a new Hamt sharing all
unmodified structure with its predecessor, and the predecessor stays valid.
Because no reachable node is ever written to, any number of goroutines may
read one Hamt value, or derive new ones from a shared ancestor, without
coordination.

Keys are hashed to 32 bits by the hashcode package. The 32bits of hash are
separated into 5bit values that constitute the hash path of any key in this
Trie. However, not all seven levels of the Trie are used. As many levels
(seven or less) are used to find a unique location for the leaf to be
placed within the Trie.

Two or more key/val pairs whose full 32bit hashes are identical cannot be
told apart by any level of the Trie; a special collision leaf stores them
together, in the slot a single leaf for that hash would occupy.

Interior nodes come in two representations: a sparse bit-mapped table for
few children and a dense 32 entry table for many; tables are graded from
one representation to the other as they grow and shrink.
*/
package hamt

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/giacomocavalieri/hamt/hashcode"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("[hamt] ")
	log.SetFlags(log.Lshortfile)
}

// The number of bits to partition the hashcode and to index each table. By
// logical necessity this MUST be 5 bits because 2^5 == 32; the number of
// entries in a table.
const nBits uint = 5

// The Capacity of a table; 2^5 == 32;
const tableCapacity uint = 1 << nBits

// The maximum depth of the Trie ranges between 0 and 6, for 7 levels
// total; the last 5bit index only spans the two top bits of the hash.
const maxDepth uint = 6

// The hash shift of the deepest table level.
const maxShift = nBits * maxDepth

// A packedTable holding this many entries is promoted to an arrayTable on
// the next insert.
const maxPackedEntries = tableCapacity / 2

// An arrayTable left with fewer entries than this by a remove is demoted
// back to a packedTable.
const minArrayEntries = tableCapacity/4 + 1

// index returns the 5bit fragment of h32 starting at the given shift.
func index(h32 uint32, shift uint) uint {
	return uint(h32>>shift) & (tableCapacity - 1)
}

// hash32String returns the hash path of h32 in "/idx0/idx1/..." form, low
// fragment first. Debug output only.
func hash32String(h32 uint32) string {
	var strs = make([]string, maxDepth+1)

	for shift, i := uint(0), 0; shift <= maxShift; shift, i = shift+nBits, i+1 {
		strs[i] = strconv.Itoa(int(index(h32, shift)))
	}

	return "/" + strings.Join(strs, "/")
}

// Hamt is a persistent map from keys to values. The zero value is the
// empty map and is immediately usable; so is EMPTY.
type Hamt struct {
	root     nodeI
	nentries uint
}

// EMPTY is the Hamt with no entries.
var EMPTY = Hamt{}

// IsEmpty returns true if the Hamt contains no entries.
func (h Hamt) IsEmpty() bool {
	return h == Hamt{}
}

// Nentries returns the number of key/val pairs in the Hamt.
func (h Hamt) Nentries() uint {
	return h.nentries
}

// Get retrieves the value for a given key from the Hamt. The bool
// represents whether the key was found.
func (h Hamt) Get(key interface{}) (interface{}, bool) {
	if h.root == nil {
		return nil, false
	}

	var h32 = uint32(hashcode.Hash(key))
	var shift uint
	var curNode = h.root

	for {
		switch n := curNode.(type) {
		case *flatLeaf:
			if eql(key, n.key) {
				return n.val, true
			}
			return nil, false
		case *collisionLeaf:
			if n.hash32 != h32 {
				return nil, false
			}
			for _, kv := range n.kvs {
				if eql(key, kv.Key) {
					return kv.Val, true
				}
			}
			return nil, false
		case *packedTable:
			if shift > maxShift {
				log.Panicf("Get: SHOULD NOT BE REACHED; shift,%d > maxShift,%d with a table node", shift, maxShift)
			}
			curNode = n.get(index(h32, shift))
			if curNode == nil {
				return nil, false
			}
			shift += nBits
		case *arrayTable:
			if shift > maxShift {
				log.Panicf("Get: SHOULD NOT BE REACHED; shift,%d > maxShift,%d with a table node", shift, maxShift)
			}
			curNode = n.nodes[index(h32, shift)]
			if curNode == nil {
				return nil, false
			}
			shift += nBits
		default:
			log.Panicf("Get: SHOULD NOT BE REACHED; shift=%d; curNode unknown type=%T;", shift, curNode)
		}
	}
}

// Put inserts a key/val pair into the Hamt, returning a new persistent
// Hamt and a bool indicating if the key/val pair was added(true) or merely
// updated(false).
func (h Hamt) Put(key, val interface{}) (Hamt, bool) {
	var added bool

	var h32 = uint32(hashcode.Hash(key))
	var newRoot = alter(h.root, 0, h32, key,
		func(prev interface{}, present bool) (interface{}, bool) {
			if !present {
				added = true
			}
			return val, true
		})

	var nh = Hamt{newRoot, h.nentries}
	if added {
		nh.nentries++
	}

	return nh, added
}

// Del removes the entry for a given key. It returns a new persistent Hamt,
// the value the key was bound to, and a bool that specifies whether or not
// the key was found (and therefore deleted). If the key was not found Del
// returns the original Hamt and a nil value.
func (h Hamt) Del(key interface{}) (Hamt, interface{}, bool) {
	var val interface{}
	var deleted bool

	var h32 = uint32(hashcode.Hash(key))
	var newRoot = alter(h.root, 0, h32, key,
		func(prev interface{}, present bool) (interface{}, bool) {
			if present {
				val = prev
				deleted = true
			}
			return nil, false
		})

	if !deleted {
		return h, nil, false
	}

	return Hamt{newRoot, h.nentries - 1}, val, true
}

// Range calls fn for every key/val pair in the Hamt until fn returns
// false. The visit order is unspecified and not stable between maps that
// hold the same entries.
func (h Hamt) Range(fn func(key, val interface{}) bool) {
	if h.root == nil {
		return
	}
	h.root.walk(func(kv keyVal) bool {
		return fn(kv.Key, kv.Val)
	})
}

func (h Hamt) String() string {
	if h.root == nil {
		return fmt.Sprintf("Hamt{ nentries: %d, root: nil }", h.nentries)
	}
	return fmt.Sprintf("Hamt{ nentries: %d, root: %s }", h.nentries, h.root)
}

// LongString renders the Trie one line per node, two spaces of indentation
// per level, each line prefixed with indent. Debug output only.
func (h Hamt) LongString(indent string) string {
	if h.root == nil {
		return ""
	}

	var w strings.Builder
	h.root.treeString(&w, indent, 0)
	return w.String()
}
