// Copyright (c) 2026, The react-three-fiber Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map: a slice of key-value
// pairs that preserves the order in which items were added, with a
// map from key to slice index for fast lookup. Insertion and access
// are fast; deletion is linear in the number of following items
// because the index map must be renumbered.
package ordmap

import "slices"

// KeyValue represents one key-value pair in a [Map].
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map combining the order of a slice
// with the fast lookup of a map. The zero value is usable.
type Map[K comparable, V any] struct {

	// Order is the ordered list of key-value pairs, in the order added.
	Order []KeyValue[K, V]

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{indexes: make(map[K]int)}
}

func (om *Map[K, V]) init() {
	if om.indexes == nil {
		om.indexes = make(map[K]int)
	}
}

// Reset removes all elements from the map.
func (om *Map[K, V]) Reset() {
	om.Order = nil
	om.indexes = nil
}

// Add adds the given value under the given key. If the key is already
// present, its value is replaced in place, preserving the original order.
func (om *Map[K, V]) Add(key K, val V) {
	om.init()
	if idx, has := om.indexes[key]; has {
		om.Order[idx] = KeyValue[K, V]{Key: key, Value: val}
		return
	}
	om.indexes[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// IndexByKey returns the index of the given key, or -1 if not present.
func (om *Map[K, V]) IndexByKey(key K) int {
	idx, has := om.indexes[key]
	if !has {
		return -1
	}
	return idx
}

// Has returns whether the given key is present.
func (om *Map[K, V]) Has(key K) bool {
	_, has := om.indexes[key]
	return has
}

// ValueByKey returns the value for the given key, and whether it was present.
func (om *Map[K, V]) ValueByKey(key K) (V, bool) {
	idx, has := om.indexes[key]
	if !has {
		var zero V
		return zero, false
	}
	return om.Order[idx].Value, true
}

// DeleteKey deletes the item with the given key, returning whether
// it was present. Items after it keep their relative order.
func (om *Map[K, V]) DeleteKey(key K) bool {
	idx, has := om.indexes[key]
	if !has {
		return false
	}
	om.Order = slices.Delete(om.Order, idx, idx+1)
	delete(om.indexes, key)
	for i := idx; i < len(om.Order); i++ {
		om.indexes[om.Order[i].Key] = i
	}
	return true
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	return len(om.Order)
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	keys := make([]K, len(om.Order))
	for i, kv := range om.Order {
		keys[i] = kv.Key
	}
	return keys
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	vals := make([]V, len(om.Order))
	for i, kv := range om.Order {
		vals[i] = kv.Value
	}
	return vals
}
