package hashcode

import "reflect"

// Equal is the key equality Hash is consistent with: Equal(a, b) implies
// Hash(a) == Hash(b), except for +0.0 and -0.0, which compare equal but
// hash by their different bit patterns. An Equaler override on either side wins; channels,
// funcs and unsafe pointers compare by reference identity, matching their
// by-reference hash; everything else compares by reflect.DeepEqual.
func Equal(a, b interface{}) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	if e, ok := b.(Equaler); ok {
		return e.Equal(a)
	}

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	var ra = reflect.ValueOf(a)
	switch ra.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		var rb = reflect.ValueOf(b)
		if rb.Kind() != ra.Kind() || ra.Type() != rb.Type() {
			return false
		}
		return ra.Pointer() == rb.Pointer()
	}

	return reflect.DeepEqual(a, b)
}
