package bintree

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Comparator orders the keys of a tree.
//
// Less has to be a strict weak ordering. Two keys a and b are considered
// equivalent if neither Less(a, b) nor Less(b, a) holds. Comparators violating
// this contract are not detected; trees built with them will misplace keys.
type Comparator[K any] interface {
	Less(a, b K) bool
}

// LessFunc adapts an ordinary function to the Comparator interface.
type LessFunc[K any] func(a, b K) bool

// Less calls f(a, b).
func (f LessFunc[K]) Less(a, b K) bool {
	return f(a, b)
}

// Equivalent reports whether a and b are equal in terms of cmp, i.e.
//
//	!cmp.Less(a, b) && !cmp.Less(b, a)
func Equivalent[K any](cmp Comparator[K], a, b K) bool {
	return !cmp.Less(a, b) && !cmp.Less(b, a)
}

// Ordered compares keys using the built-in < operator.
type Ordered[K constraints.Ordered] struct{}

// Less is a < b.
func (Ordered[K]) Less(a, b K) bool {
	return a < b
}

// BySize compares keys by the number of bytes their dynamic values occupy.
// Keys of the same storage size are equivalent.
//
// BySize is mostly useful for trees with interface-typed keys, e.g. Tree[any].
type BySize[K any] struct{}

// Less is size(a) < size(b).
func (BySize[K]) Less(a, b K) bool {
	return sizeOf(a) < sizeOf(b)
}

// Reverse returns a comparator ordering keys in the opposite direction of cmp.
func Reverse[K any](cmp Comparator[K]) Comparator[K] {
	assert(cmp != nil, "Reverse called with nil comparator")
	return reversed[K]{cmp: cmp}
}

type reversed[K any] struct {
	cmp Comparator[K]
}

func (r reversed[K]) Less(a, b K) bool {
	return r.cmp.Less(b, a)
}

// sizeOf returns the storage size of the dynamic type of key, or 0 for nil
// interface keys.
func sizeOf[K any](key K) uintptr {
	typ := reflect.TypeOf(any(key))
	if typ == nil {
		return 0
	}
	return typ.Size()
}
