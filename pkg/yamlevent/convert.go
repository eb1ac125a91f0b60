// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevent

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwize1/saphyr-parser/pkg/orderedmap"
	"github.com/cwize1/saphyr-parser/pkg/yamlwriter"
)

// ValueEvents converts a plain Go value into the event sequence for a
// single-document stream.
//
// Supported values: nil, bool, string, signed and unsigned integers,
// floats, []interface{}, *orderedmap.Map, and native Go maps (which are
// converted through orderedmap.FromUnordered, so their keys come out
// sorted; use *orderedmap.Map directly to control entry order).
func ValueEvents(val interface{}) ([]yamlwriter.WriteEvent, error) {
	events := []yamlwriter.WriteEvent{
		yamlwriter.StreamStartEvent(),
		yamlwriter.DocumentStartEvent(),
	}

	events, err := appendValueEvents(events, val)
	if err != nil {
		return nil, err
	}

	return append(events,
		yamlwriter.DocumentEndEvent(),
		yamlwriter.StreamEndEvent(),
	), nil
}

func appendValueEvents(events []yamlwriter.WriteEvent, val interface{}) ([]yamlwriter.WriteEvent, error) {
	var err error

	switch typedVal := val.(type) {
	case nil:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.NullScalar())), nil

	case bool:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.BooleanScalar(typedVal))), nil

	case string:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.StringScalar(typedVal))), nil

	case int:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.IntegerScalar(int64(typedVal)))), nil
	case int8:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.IntegerScalar(int64(typedVal)))), nil
	case int16:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.IntegerScalar(int64(typedVal)))), nil
	case int32:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.IntegerScalar(int64(typedVal)))), nil
	case int64:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.IntegerScalar(typedVal))), nil
	case uint:
		return appendValueEvents(events, uint64(typedVal))
	case uint8:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.IntegerScalar(int64(typedVal)))), nil
	case uint16:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.IntegerScalar(int64(typedVal)))), nil
	case uint32:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.IntegerScalar(int64(typedVal)))), nil
	case uint64:
		if typedVal > math.MaxInt64 {
			return nil, fmt.Errorf("value %d overflows a signed 64-bit integer", typedVal)
		}
		return append(events, yamlwriter.ScalarEvent(yamlwriter.IntegerScalar(int64(typedVal)))), nil

	case float32:
		return appendValueEvents(events, float64(typedVal))
	case float64:
		return append(events, yamlwriter.ScalarEvent(yamlwriter.RealScalar(formatFloat(typedVal)))), nil

	case []interface{}:
		events = append(events, yamlwriter.SequenceStartEvent())
		for _, item := range typedVal {
			events, err = appendValueEvents(events, item)
			if err != nil {
				return nil, err
			}
		}
		return append(events, yamlwriter.SequenceEndEvent()), nil

	case map[string]interface{}:
		return appendValueEvents(events, orderedmap.FromUnordered(typedVal))
	case map[interface{}]interface{}:
		return appendValueEvents(events, orderedmap.FromUnordered(typedVal))

	case *orderedmap.Map:
		events = append(events, yamlwriter.MappingStartEvent())
		err = typedVal.IterateErr(func(k, v interface{}) error {
			events, err = appendValueEvents(events, k)
			if err != nil {
				return err
			}
			events, err = appendValueEvents(events, v)
			return err
		})
		if err != nil {
			return nil, err
		}
		return append(events, yamlwriter.MappingEndEvent()), nil

	default:
		return nil, fmt.Errorf("unsupported value of type %T", val)
	}
}

// formatFloat renders f under the core schema float grammar, keeping a
// fractional part on integral floats so the value re-parses as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
