/*
Package hashcode provides the hash function and the matching equality
predicate the hamt Trie is keyed on. Hash is total over Go values: every
admissible key hashes to an int32, deterministically for the lifetime of
the process. The contract with Equal is the usual one: values that compare
equal hash to the same code, while distinct values may collide. The one
exception is float zero: +0.0 and -0.0 compare equal but, having different
bit patterns, hash to different codes.

Scalars hash structurally (numbers by their IEEE-754 double bit pattern,
strings by a 31-multiplier fold), compound values fold over their contents,
and values with no structure to speak of (channels, funcs) hash by
reference identity. A key type can override the default by implementing
Hasher, and can override equality by implementing Equaler.
*/
package hashcode

import (
	"math"
	"math/big"
	"reflect"
	"time"
)

// Hasher is the override hook for the default hash: a key implementing it
// is hashed by its own HashCode. A panic raised by HashCode is swallowed
// and the default structural hash applies instead.
type Hasher interface {
	HashCode() int32
}

// Equaler is the override hook for the default equality.
type Equaler interface {
	Equal(other interface{}) bool
}

// Fixed codes for the values with no bits of their own.
const (
	hashFalse int32 = 0x42108420
	hashTrue  int32 = 0x42108421
	hashNil   int32 = 0x42108422
)

// goldenGamma is 0x9e3779b9, the 32bit golden ratio increment, as int32.
const goldenGamma int32 = -0x61c88647

// Hash returns the 32bit hash code of v.
func Hash(v interface{}) int32 {
	if v == nil {
		return hashNil
	}

	if hr, ok := v.(Hasher); ok {
		if code, ok := tryHashCode(hr); ok {
			return code
		}
	}

	switch x := v.(type) {
	case bool:
		if x {
			return hashTrue
		}
		return hashFalse
	case int:
		return hashFloat64(float64(x))
	case int8:
		return hashFloat64(float64(x))
	case int16:
		return hashFloat64(float64(x))
	case int32:
		return hashFloat64(float64(x))
	case int64:
		return hashFloat64(float64(x))
	case uint:
		return hashFloat64(float64(x))
	case uint8:
		return hashFloat64(float64(x))
	case uint16:
		return hashFloat64(float64(x))
	case uint32:
		return hashFloat64(float64(x))
	case uint64:
		return hashFloat64(float64(x))
	case uintptr:
		return hashFloat64(float64(x))
	case float32:
		return hashFloat64(float64(x))
	case float64:
		return hashFloat64(x)
	case string:
		return hashString(x)
	case *big.Int:
		if x == nil {
			return hashNil
		}
		return hashString(x.String())
	case time.Time:
		return hashFloat64(float64(x.UnixMilli()))
	case []byte:
		var h int32
		for _, b := range x {
			h = 31*h + hashFloat64(float64(b))
		}
		return h
	}

	return hashValue(reflect.ValueOf(v))
}

// Merge mixes two hash codes into one; it is deliberately not commutative
// so folds over (key, value) style pairs keep the sides apart. The shifts
// are ordinary signed shifts on the two's-complement codes.
func Merge(a, b int32) int32 {
	return a ^ (b + goldenGamma + (a << 6) + (a >> 2))
}

func tryHashCode(hr Hasher) (code int32, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return hr.HashCode(), true
}

// hashFloat64 hashes the IEEE-754 bit pattern of f: the two 32bit halves
// are extracted through math.Float64bits so the result does not depend on
// the platform's byte order. The halves are mixed as signed 32bit words,
// wrapping on overflow.
func hashFloat64(f float64) int32 {
	var bits = math.Float64bits(f)
	var i = int32(bits >> 32)
	var j = int32(bits)
	return (0x45d9f3b * ((i >> 16) ^ i)) ^ j
}

// hashString is the standard 31-multiplier fold over the code points of s,
// wrapping at 32 bits.
func hashString(s string) int32 {
	var h int32
	for _, r := range s {
		h = 31*h + int32(r)
	}
	return h
}

// hashValue covers everything the type switch in Hash does not: named
// scalar types and the compound kinds.
func hashValue(rv reflect.Value) int32 {
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return hashTrue
		}
		return hashFalse

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashFloat64(float64(rv.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashFloat64(float64(rv.Uint()))

	case reflect.Float32, reflect.Float64:
		return hashFloat64(rv.Float())

	case reflect.Complex64, reflect.Complex128:
		var c = rv.Complex()
		return 31*hashFloat64(real(c)) + hashFloat64(imag(c))

	case reflect.String:
		return hashString(rv.String())

	case reflect.Slice, reflect.Array:
		var h int32
		for i := 0; i < rv.Len(); i++ {
			h = 31*h + Hash(rv.Index(i).Interface())
		}
		return h

	case reflect.Map:
		// unordered fold, commutative over the entries
		var h int32
		var iter = rv.MapRange()
		for iter.Next() {
			h += Merge(Hash(iter.Value().Interface()), Hash(iter.Key().Interface()))
		}
		return h

	case reflect.Struct:
		// sum of one Merge(value, field name) term per readable field; the
		// sum does not depend on field order, and values swapped between
		// two fields can give the same code
		var rt = rv.Type()
		var h int32
		var readable bool
		for i := 0; i < rt.NumField(); i++ {
			var f = rv.Field(i)
			if !f.CanInterface() {
				continue
			}
			readable = true
			h += Merge(Hash(f.Interface()), hashString(rt.Field(i).Name))
		}
		if !readable {
			// nothing to fold over; the type name is all we can see
			return hashString(rt.String())
		}
		return h

	case reflect.Ptr:
		if rv.IsNil() {
			return hashNil
		}
		return Hash(rv.Elem().Interface())

	case reflect.Interface:
		if rv.IsNil() {
			return hashNil
		}
		return Hash(rv.Elem().Interface())

	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return referenceHash(rv.Pointer())
	}

	// exhausted every kind reflect knows about
	return hashString(rv.Type().String())
}
