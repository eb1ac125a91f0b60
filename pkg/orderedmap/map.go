// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"fmt"
	"reflect"
	"sort"
)

// Map is a map that remembers the order in which keys were set.
type Map struct {
	items []MapItem
}

// MapItem is a single key-value entry of a Map.
type MapItem struct {
	Key   interface{}
	Value interface{}
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{}
}

// NewMapWithItems returns a Map holding the given entries in order.
func NewMapWithItems(items []MapItem) *Map {
	return &Map{items}
}

// FromUnordered converts a native Go map (and any nested native maps inside
// slices or values) into a Map with keys in sorted order, so emission stays
// deterministic even when the caller starts from an unordered map. Values
// other than native maps and slices are returned unchanged.
func FromUnordered(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case map[interface{}]interface{}:
		keys := make([]interface{}, 0, len(typedObj))
		for k := range typedObj {
			keys = append(keys, k)
		}
		result := NewMap()
		for _, key := range sortedKeys(keys) {
			result.Set(key, FromUnordered(typedObj[key]))
		}
		return result

	case map[string]interface{}:
		keys := make([]interface{}, 0, len(typedObj))
		for k := range typedObj {
			keys = append(keys, k)
		}
		result := NewMap()
		for _, key := range sortedKeys(keys) {
			result.Set(key, FromUnordered(typedObj[key.(string)]))
		}
		return result

	case []interface{}:
		result := make([]interface{}, len(typedObj))
		for i, item := range typedObj {
			result[i] = FromUnordered(item)
		}
		return result

	default:
		return typedObj
	}
}

func sortedKeys(keys []interface{}) []interface{} {
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprintf("%s", keys[i]) < fmt.Sprintf("%s", keys[j])
	})
	return keys
}

// Set sets the value for key, keeping the key's original position if it was
// already present and appending it otherwise.
func (m *Map) Set(key, value interface{}) {
	for i, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			item.Value = value
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

// Get returns the value for key and whether the key was present.
func (m *Map) Get(key interface{}) (interface{}, bool) {
	for _, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			return item.Value, true
		}
	}
	return nil, false
}

// Delete removes key, reporting whether it was present.
func (m *Map) Delete(key interface{}) bool {
	for i, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Map) isKeyEq(key1, key2 interface{}) bool {
	return reflect.DeepEqual(key1, key2)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() (keys []interface{}) {
	m.Iterate(func(k, _ interface{}) {
		keys = append(keys, k)
	})
	return
}

// Iterate calls iterFunc for each entry in insertion order.
func (m *Map) Iterate(iterFunc func(k, v interface{})) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

// IterateErr calls iterFunc for each entry in insertion order, stopping at
// the first error.
func (m *Map) IterateErr(iterFunc func(k, v interface{}) error) error {
	for _, item := range m.items {
		err := iterFunc(item.Key, item.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.items) }

// Maps must go through the event converter; marshaling one directly loses
// key order.
func (*Map) MarshalYAML() (interface{}, error) { panic("Unexpected marshaling of *orderedmap.Map") }
func (*Map) MarshalJSON() ([]byte, error)      { panic("Unexpected marshaling of *orderedmap.Map") }
