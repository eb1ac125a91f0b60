// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlwriter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CoreSchemaTagHandle is the tag handle of the YAML core schema.
const CoreSchemaTagHandle = "tag:yaml.org,2002:"

// ScalarKind identifies the type of a ScalarValue.
type ScalarKind int

const (
	// ScalarString is a string value.
	ScalarString ScalarKind = iota
	// ScalarReal is a floating point value, kept as its source text.
	ScalarReal
	// ScalarBoolean is a boolean value.
	ScalarBoolean
	// ScalarInteger is a signed 64-bit integer value.
	ScalarInteger
	// ScalarNull is the null value.
	ScalarNull
	// ScalarBadValue marks a failed type conversion. It renders like null
	// but keeps lossy conversions from silently becoming another type.
	ScalarBadValue
)

// ScalarValue holds one typed YAML scalar.
//
// String and Real carry their text in Str. Real's text must parse under the
// core schema float grammar; constructors that take a float format it, and
// RealScalar trusts its caller. Text is always copied, never borrowed.
type ScalarValue struct {
	Kind ScalarKind
	Str  string
	Bool bool
	Int  int64
}

// StringScalar returns a string scalar.
func StringScalar(value string) ScalarValue {
	return ScalarValue{Kind: ScalarString, Str: value}
}

// RealScalar returns a float scalar rendered verbatim as value. The text
// must be valid under the core schema float grammar.
func RealScalar(value string) ScalarValue {
	return ScalarValue{Kind: ScalarReal, Str: value}
}

// BooleanScalar returns a boolean scalar.
func BooleanScalar(value bool) ScalarValue {
	return ScalarValue{Kind: ScalarBoolean, Bool: value}
}

// IntegerScalar returns an integer scalar.
func IntegerScalar(value int64) ScalarValue {
	return ScalarValue{Kind: ScalarInteger, Int: value}
}

// NullScalar returns the null scalar.
func NullScalar() ScalarValue { return ScalarValue{Kind: ScalarNull} }

// BadValueScalar returns the invalid-conversion sentinel.
func BadValueScalar() ScalarValue { return ScalarValue{Kind: ScalarBadValue} }

// ScalarStyle is the presentation style a scalar was parsed with.
type ScalarStyle int

const (
	// StylePlain is an unquoted scalar, subject to type inference.
	StylePlain ScalarStyle = iota
	// StyleSingleQuoted is a single-quoted scalar.
	StyleSingleQuoted
	// StyleDoubleQuoted is a double-quoted scalar.
	StyleDoubleQuoted
	// StyleLiteral is a literal block scalar.
	StyleLiteral
	// StyleFolded is a folded block scalar.
	StyleFolded
)

// Tag is an explicit YAML type tag attached to a parsed scalar.
type Tag struct {
	Handle string
	Suffix string
}

// ScalarFromEvent converts a parser scalar event into a ScalarValue.
//
// Quoting suppresses type inference: any non-plain style yields a string.
// A core schema tag coerces the value to the tagged type, producing
// BadValue when the text does not fit. Other tags yield a string, and an
// untagged plain scalar falls back to ScalarFromString.
func ScalarFromEvent(value string, style ScalarStyle, tag *Tag) ScalarValue {
	if style != StylePlain {
		return StringScalar(value)
	}
	if tag == nil {
		return ScalarFromString(value)
	}
	if tag.Handle != CoreSchemaTagHandle {
		return StringScalar(value)
	}
	switch tag.Suffix {
	case "bool":
		switch value {
		case "true":
			return BooleanScalar(true)
		case "false":
			return BooleanScalar(false)
		default:
			return BadValueScalar()
		}
	case "int":
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return BadValueScalar()
		}
		return IntegerScalar(i)
	case "float":
		if _, ok := parseFloat(value); ok {
			return RealScalar(value)
		}
		return BadValueScalar()
	case "null":
		switch value {
		case "~", "null":
			return NullScalar()
		default:
			return BadValueScalar()
		}
	default:
		// Datatype is unrecognized.
		return StringScalar(value)
	}
}

// ScalarFromString infers a scalar's type from plain text using the core
// schema rules. It falls back to a string scalar when nothing else matches,
// so the conversion cannot fail.
func ScalarFromString(value string) ScalarValue {
	if number, ok := strings.CutPrefix(value, "0x"); ok {
		if i, err := strconv.ParseInt(number, 16, 64); err == nil {
			return IntegerScalar(i)
		}
	} else if number, ok := strings.CutPrefix(value, "0o"); ok {
		if i, err := strconv.ParseInt(number, 8, 64); err == nil {
			return IntegerScalar(i)
		}
	} else if number, ok := strings.CutPrefix(value, "+"); ok {
		if i, err := strconv.ParseInt(number, 10, 64); err == nil {
			return IntegerScalar(i)
		}
	}
	switch value {
	case "~", "null":
		return NullScalar()
	case "true":
		return BooleanScalar(true)
	case "false":
		return BooleanScalar(false)
	}
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return IntegerScalar(i)
	}
	if _, ok := parseFloat(value); ok {
		return RealScalar(value)
	}
	return StringScalar(value)
}

// String returns the canonical YAML rendering of the value.
func (v ScalarValue) String() string {
	switch v.Kind {
	case ScalarReal, ScalarString:
		return v.Str
	case ScalarBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case ScalarInteger:
		return strconv.FormatInt(v.Int, 10)
	case ScalarNull, ScalarBadValue:
		return "~"
	default:
		panic(fmt.Sprintf("Unexpected scalar kind %d", v.Kind))
	}
}

// parseFloat parses a float per the core schema: dotted infinity and NaN
// spellings, else a standard decimal float.
func parseFloat(value string) (float64, bool) {
	switch value {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return math.Inf(1), true
	case "-.inf", "-.Inf", "-.INF":
		return math.Inf(-1), true
	case ".nan", "NaN", ".NAN":
		return math.NaN(), true
	}
	if !isDecimalFloat(value) {
		return 0, false
	}
	f, _ := strconv.ParseFloat(value, 64)
	return f, true
}

// isDecimalFloat reports whether value parses as a decimal float.
// strconv.ParseFloat also accepts hex mantissas, which the core schema
// float grammar does not.
func isDecimalFloat(value string) bool {
	rest := value
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}
	if len(rest) > 1 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		return false
	}
	_, err := strconv.ParseFloat(value, 64)
	if err == nil {
		return true
	}
	// Out-of-range values still have valid float syntax.
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
