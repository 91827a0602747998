// Package maps provides the key/value pair shape understood by the
// natural-order comparators, plus helpers to turn Go maps into sortable
// slices of pairs.
package maps

import (
	"reflect"
)

// KeyValuePair is a generic key-value pair. Comparators order pairs by Key
// alone; Value is never consulted.
//
// Example:
//
//	entries := maps.Entries(map[string]int{"10": 1, "9": 2})
//	cmp, _ := comparator.Direct[maps.KeyValuePair[string, int]]()
//	cmp.Sort(entries) // "9", "10"
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// PairKey returns the key boxed as any.
func (p KeyValuePair[K, V]) PairKey() any {
	return p.Key
}

// KeyType returns the static type of the key, without needing an instance.
func (p KeyValuePair[K, V]) KeyType() reflect.Type {
	return reflect.TypeFor[K]()
}

// Entries copies m into a slice of pairs. The order of the result is the
// map's iteration order, so callers are expected to sort it.
func Entries[K comparable, V any](m map[K]V) []KeyValuePair[K, V] {
	out := make([]KeyValuePair[K, V], 0, len(m))

	for k, v := range m {
		out = append(out, KeyValuePair[K, V]{Key: k, Value: v})
	}

	return out
}

// Keys returns the keys of the given pairs in order.
func Keys[K any, V any](pairs []KeyValuePair[K, V]) []K {
	out := make([]K, len(pairs))

	for i, p := range pairs {
		out[i] = p.Key
	}

	return out
}
