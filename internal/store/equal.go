package store

import "reflect"

// shallowEqual compares two projection values one level deep.
//
// Comparable leaves use ordinary equality, so NaN is never equal to
// itself. Slices are equal when they have the same length and identical
// elements; maps when they have the same key count and identical values
// per key; structs when every field is identical. "Identical" means
// strict equality for comparable kinds and same underlying pointer for
// reference kinds, so a freshly built nested composite compares unequal
// even when its contents match. Selectors should return flat values when
// that matters.
func shallowEqual(a, b any) bool {
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Slice:
		if va.IsNil() != vb.IsNil() || va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !identical(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if va.IsNil() != vb.IsNil() || va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !identical(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < va.NumField(); i++ {
			if !identical(va.Field(i), vb.Field(i)) {
				return false
			}
		}
		return true
	default:
		return identical(va, vb)
	}
}

// identical is the leaf comparison: strict equality for comparable
// kinds, pointer identity for reference kinds.
func identical(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return a.Pointer() == b.Pointer()
	case reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return identical(a.Elem(), b.Elem())
	default:
		if !a.Type().Comparable() {
			// a non-comparable composite leaf has no identity to share
			return false
		}
		return a.Equal(b)
	}
}
