// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"reflect"
	"testing"

	"github.com/cwize1/saphyr-parser/pkg/orderedmap"
)

func TestSetKeepsInsertionOrder(t *testing.T) {
	m := orderedmap.NewMap()
	m.Set("z", 1)
	m.Set("a", 2)
	m.Set("m", 3)
	m.Set("z", 4) // update must not move the key

	expectedKeys := []interface{}{"z", "a", "m"}
	if !reflect.DeepEqual(m.Keys(), expectedKeys) {
		t.Fatalf("Expected keys %v, got %v", expectedKeys, m.Keys())
	}

	val, found := m.Get("z")
	if !found || val != 4 {
		t.Fatalf("Expected updated value 4 for key z, got %v (found=%v)", val, found)
	}
}

func TestDelete(t *testing.T) {
	m := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
	})

	if !m.Delete("a") {
		t.Fatalf("Expected delete of existing key to report true")
	}
	if m.Delete("a") {
		t.Fatalf("Expected delete of missing key to report false")
	}
	if m.Len() != 1 {
		t.Fatalf("Expected 1 remaining entry, got %d", m.Len())
	}
}

func TestFromUnorderedSortsKeysAndDoesNotMutateInput(t *testing.T) {
	inputA := map[string]interface{}{
		"key": []interface{}{map[string]interface{}{"nestedKey": "nestedValue"}},
	}
	inputB := map[string]interface{}{
		"key": []interface{}{map[string]interface{}{"nestedKey": "nestedValue"}},
	}

	result := orderedmap.FromUnordered(inputA)

	if !reflect.DeepEqual(inputA, inputB) {
		t.Fatalf("Nested input object was modified. Got: %v, Expected: %v", inputA, inputB)
	}

	m, ok := result.(*orderedmap.Map)
	if !ok {
		t.Fatalf("Expected *orderedmap.Map, got %T", result)
	}
	if !reflect.DeepEqual(m.Keys(), []interface{}{"key"}) {
		t.Fatalf("Unexpected keys: %v", m.Keys())
	}
}

func TestFromUnorderedSortsMixedKeys(t *testing.T) {
	result := orderedmap.FromUnordered(map[interface{}]interface{}{
		"b": 1,
		"a": 2,
		"c": 3,
	})

	m := result.(*orderedmap.Map)
	if !reflect.DeepEqual(m.Keys(), []interface{}{"a", "b", "c"}) {
		t.Fatalf("Expected sorted keys, got %v", m.Keys())
	}
}
