// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlwriter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwize1/saphyr-parser/pkg/yamlwriter"
)

func TestScalarFromStringInfersIntegers(t *testing.T) {
	assert.Equal(t, yamlwriter.IntegerScalar(42), yamlwriter.ScalarFromString("42"))
	assert.Equal(t, yamlwriter.IntegerScalar(-7), yamlwriter.ScalarFromString("-7"))
	assert.Equal(t, yamlwriter.IntegerScalar(42), yamlwriter.ScalarFromString("0x2A"))
	assert.Equal(t, yamlwriter.IntegerScalar(42), yamlwriter.ScalarFromString("0o52"))
	assert.Equal(t, yamlwriter.IntegerScalar(42), yamlwriter.ScalarFromString("+42"))
}

func TestScalarFromStringInfersNullAndBool(t *testing.T) {
	assert.Equal(t, yamlwriter.NullScalar(), yamlwriter.ScalarFromString("~"))
	assert.Equal(t, yamlwriter.NullScalar(), yamlwriter.ScalarFromString("null"))
	assert.Equal(t, yamlwriter.BooleanScalar(true), yamlwriter.ScalarFromString("true"))
	assert.Equal(t, yamlwriter.BooleanScalar(false), yamlwriter.ScalarFromString("false"))

	// Only the lowercase spellings are typed; the rest stay strings.
	assert.Equal(t, yamlwriter.ScalarString, yamlwriter.ScalarFromString("True").Kind)
	assert.Equal(t, yamlwriter.ScalarString, yamlwriter.ScalarFromString("Null").Kind)
	assert.Equal(t, yamlwriter.ScalarString, yamlwriter.ScalarFromString("yes").Kind)
}

func TestScalarFromStringInfersFloats(t *testing.T) {
	for _, text := range []string{"3.14", "-0.5", "12e7", "1e1000", ".inf", "+.INF", "-.inf", ".nan", "NaN"} {
		value := yamlwriter.ScalarFromString(text)
		assert.Equal(t, yamlwriter.ScalarReal, value.Kind, "text %q", text)
		assert.Equal(t, text, value.String(), "text %q", text)
	}
}

func TestScalarFromStringIntegerNeverClassifiedReal(t *testing.T) {
	assert.Equal(t, yamlwriter.ScalarInteger, yamlwriter.ScalarFromString("123").Kind)
	assert.Equal(t, yamlwriter.ScalarInteger, yamlwriter.ScalarFromString("-123").Kind)
}

func TestScalarFromStringFallsBackToString(t *testing.T) {
	for _, text := range []string{"foo", "0xzz", "0o99", "hello world", "2014-12-31", ""} {
		assert.Equal(t, yamlwriter.StringScalar(text), yamlwriter.ScalarFromString(text), "text %q", text)
	}

	// Hex float syntax is not part of the core schema float grammar.
	assert.Equal(t, yamlwriter.ScalarString, yamlwriter.ScalarFromString("0x1p3").Kind)
}

func TestScalarFromEventQuotingSuppressesInference(t *testing.T) {
	for _, style := range []yamlwriter.ScalarStyle{
		yamlwriter.StyleSingleQuoted,
		yamlwriter.StyleDoubleQuoted,
		yamlwriter.StyleLiteral,
		yamlwriter.StyleFolded,
	} {
		value := yamlwriter.ScalarFromEvent("true", style, nil)
		assert.Equal(t, yamlwriter.StringScalar("true"), value, "style %d", style)
	}

	assert.Equal(t, yamlwriter.BooleanScalar(true),
		yamlwriter.ScalarFromEvent("true", yamlwriter.StylePlain, nil))
}

func TestScalarFromEventCoreSchemaTags(t *testing.T) {
	coreTag := func(suffix string) *yamlwriter.Tag {
		return &yamlwriter.Tag{Handle: yamlwriter.CoreSchemaTagHandle, Suffix: suffix}
	}

	assert.Equal(t, yamlwriter.BooleanScalar(false),
		yamlwriter.ScalarFromEvent("false", yamlwriter.StylePlain, coreTag("bool")))
	assert.Equal(t, yamlwriter.BadValueScalar(),
		yamlwriter.ScalarFromEvent("yes", yamlwriter.StylePlain, coreTag("bool")))

	assert.Equal(t, yamlwriter.IntegerScalar(17),
		yamlwriter.ScalarFromEvent("17", yamlwriter.StylePlain, coreTag("int")))
	assert.Equal(t, yamlwriter.BadValueScalar(),
		yamlwriter.ScalarFromEvent("seventeen", yamlwriter.StylePlain, coreTag("int")))

	assert.Equal(t, yamlwriter.RealScalar("2.5"),
		yamlwriter.ScalarFromEvent("2.5", yamlwriter.StylePlain, coreTag("float")))
	assert.Equal(t, yamlwriter.BadValueScalar(),
		yamlwriter.ScalarFromEvent("x", yamlwriter.StylePlain, coreTag("float")))

	assert.Equal(t, yamlwriter.NullScalar(),
		yamlwriter.ScalarFromEvent("~", yamlwriter.StylePlain, coreTag("null")))
	assert.Equal(t, yamlwriter.NullScalar(),
		yamlwriter.ScalarFromEvent("null", yamlwriter.StylePlain, coreTag("null")))
	assert.Equal(t, yamlwriter.BadValueScalar(),
		yamlwriter.ScalarFromEvent("Null", yamlwriter.StylePlain, coreTag("null")))

	// Unrecognized suffixes under the core handle stay strings.
	assert.Equal(t, yamlwriter.StringScalar("2001-12-14"),
		yamlwriter.ScalarFromEvent("2001-12-14", yamlwriter.StylePlain, coreTag("timestamp")))
}

func TestScalarFromEventForeignTagStaysString(t *testing.T) {
	tag := &yamlwriter.Tag{Handle: "!", Suffix: "custom"}
	assert.Equal(t, yamlwriter.StringScalar("42"),
		yamlwriter.ScalarFromEvent("42", yamlwriter.StylePlain, tag))
}

func TestScalarCanonicalRendering(t *testing.T) {
	assert.Equal(t, "hello", yamlwriter.StringScalar("hello").String())
	assert.Equal(t, "3.14", yamlwriter.RealScalar("3.14").String())
	assert.Equal(t, "true", yamlwriter.BooleanScalar(true).String())
	assert.Equal(t, "false", yamlwriter.BooleanScalar(false).String())
	assert.Equal(t, "-12", yamlwriter.IntegerScalar(-12).String())
	assert.Equal(t, "~", yamlwriter.NullScalar().String())
	assert.Equal(t, "~", yamlwriter.BadValueScalar().String())
}
