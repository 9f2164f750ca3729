package hamt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giacomocavalieri/hamt"
)

func TestEmpty(t *testing.T) {
	var h = hamt.EMPTY

	assert.True(t, h.IsEmpty())
	assert.Equal(t, uint(0), h.Nentries())

	var _, found = h.Get("anything")
	assert.False(t, found)

	// the zero value is the empty Hamt too
	var z hamt.Hamt
	assert.True(t, z.IsEmpty())
}

func TestPutGet(t *testing.T) {
	var h, added = hamt.EMPTY.Put(1, "a")
	require.True(t, added)
	h, added = h.Put(2, "b")
	require.True(t, added)

	assert.Equal(t, uint(2), h.Nentries())

	var v, found = h.Get(1)
	require.True(t, found)
	assert.Equal(t, "a", v)

	v, found = h.Get(2)
	require.True(t, found)
	assert.Equal(t, "b", v)

	_, found = h.Get(3)
	assert.False(t, found)
}

func TestPutOverwrite(t *testing.T) {
	var h, _ = hamt.EMPTY.Put(1, "a")
	h, _ = h.Put(2, "b")

	var nh, added = h.Put(2, "c")
	assert.False(t, added)
	assert.Equal(t, uint(2), nh.Nentries())

	var v, found = nh.Get(2)
	require.True(t, found)
	assert.Equal(t, "c", v)
}

func TestDel(t *testing.T) {
	var h, _ = hamt.EMPTY.Put("k", 1)

	var nh, val, deleted = h.Del("k")
	require.True(t, deleted)
	assert.Equal(t, 1, val)
	assert.Equal(t, uint(0), nh.Nentries())
	assert.True(t, nh.IsEmpty())
}

func TestDelMissingReturnsOriginal(t *testing.T) {
	var h, _ = hamt.EMPTY.Put("k", 1)

	var nh, val, deleted = h.Del("nope")
	assert.False(t, deleted)
	assert.Nil(t, val)
	assert.True(t, nh == h)
}

func TestDelThenPut(t *testing.T) {
	var h = hamt.EMPTY
	for i := 1; i <= 100; i++ {
		h, _ = h.Put(i, i)
	}
	require.Equal(t, uint(100), h.Nentries())

	var nh, _, deleted = h.Del(1)
	require.True(t, deleted)

	nh, _ = nh.Put(1, 11)
	assert.Equal(t, uint(100), nh.Nentries())

	var v, found = nh.Get(1)
	require.True(t, found)
	assert.Equal(t, 11, v)
}

func TestIndependence(t *testing.T) {
	var h, _ = hamt.EMPTY.Put("other", 42)

	var before, beforeFound = h.Get("other")

	var nh, _ = h.Put("this", 1)

	var after, afterFound = nh.Get("other")
	assert.Equal(t, beforeFound, afterFound)
	assert.Equal(t, before, after)
}

func TestPersistence(t *testing.T) {
	var h = hamt.EMPTY
	for _, kv := range KVS[:1024] {
		h, _ = h.Put(kv.Key, kv.Val)
	}
	var old = h

	h, _ = h.Put("zzzznew", -1)
	h, _ = h.Put(KVS[0].Key, -2)
	h, _, _ = h.Del(KVS[1].Key)

	// every pre-update answer of the old Hamt is unchanged
	assert.Equal(t, uint(1024), old.Nentries())
	for _, kv := range KVS[:1024] {
		var v, found = old.Get(kv.Key)
		require.True(t, found, "old.Get(%q)", kv.Key)
		require.Equal(t, kv.Val, v, "old.Get(%q)", kv.Key)
	}
	var _, found = old.Get("zzzznew")
	assert.False(t, found)
}

func TestBuildAndTearDown(t *testing.T) {
	var h = hamt.EMPTY

	for _, kv := range genRandomizedKvs(KVS) {
		var added bool
		h, added = h.Put(kv.Key, kv.Val)
		if !added {
			t.Fatalf("failed to h.Put(%q, %v)", kv.Key, kv.Val)
		}
	}

	require.Equal(t, uint(numKvs), h.Nentries())

	for _, kv := range KVS {
		var v, found = h.Get(kv.Key)
		if !found {
			t.Fatalf("failed to h.Get(%q)", kv.Key)
		}
		if v != kv.Val {
			t.Fatalf("h.Get(%q) = %v, want %v", kv.Key, v, kv.Val)
		}
	}

	for _, kv := range genRandomizedKvs(KVS) {
		var val interface{}
		var deleted bool
		h, val, deleted = h.Del(kv.Key)
		if !deleted {
			t.Fatalf("failed to h.Del(%q)", kv.Key)
		}
		if val != kv.Val {
			t.Fatalf("h.Del(%q) = %v, want %v", kv.Key, val, kv.Val)
		}
	}

	assert.True(t, h.IsEmpty())
}

func TestSizeMonotonicity(t *testing.T) {
	var h = hamt.EMPTY

	var size uint
	for _, kv := range KVS[:512] {
		h, _ = h.Put(kv.Key, kv.Val)
		size++
		require.Equal(t, size, h.Nentries())
	}

	// overwrites leave the count alone
	h, _ = h.Put(KVS[0].Key, -1)
	require.Equal(t, size, h.Nentries())

	for _, kv := range KVS[:512] {
		h, _, _ = h.Del(kv.Key)
		size--
		require.Equal(t, size, h.Nentries())
	}
}

func TestMixedKeyTypes(t *testing.T) {
	var h = hamt.EMPTY
	h, _ = h.Put(1, "int")
	h, _ = h.Put("1", "string")
	h, _ = h.Put([2]int{1, 2}, "array")
	h, _ = h.Put(struct{ X, Y int }{1, 2}, "struct")
	h, _ = h.Put(nil, "nil")
	h, _ = h.Put(true, "bool")

	assert.Equal(t, uint(6), h.Nentries())

	var v, found = h.Get("1")
	require.True(t, found)
	assert.Equal(t, "string", v)

	v, found = h.Get([2]int{1, 2})
	require.True(t, found)
	assert.Equal(t, "array", v)

	v, found = h.Get(struct{ X, Y int }{1, 2})
	require.True(t, found)
	assert.Equal(t, "struct", v)

	v, found = h.Get(nil)
	require.True(t, found)
	assert.Equal(t, "nil", v)
}

func TestThirtyThreeKeys(t *testing.T) {
	var h = hamt.EMPTY
	for i := 0; i < 33; i++ {
		h, _ = h.Put(i, i)
	}

	require.Equal(t, uint(33), h.Nentries())
	for i := 0; i < 33; i++ {
		var v, found = h.Get(i)
		require.True(t, found, "h.Get(%d)", i)
		require.Equal(t, i, v)
	}
}

func TestRange(t *testing.T) {
	var h = hamt.EMPTY
	var want = map[string]int{}
	for _, kv := range KVS[:256] {
		h, _ = h.Put(kv.Key, kv.Val)
		want[kv.Key] = kv.Val
	}

	var got = map[string]int{}
	h.Range(func(key, val interface{}) bool {
		got[key.(string)] = val.(int)
		return true
	})
	assert.Equal(t, want, got)

	// early stop
	var n int
	h.Range(func(key, val interface{}) bool {
		n++
		return n < 10
	})
	assert.Equal(t, 10, n)
}
