// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlwriter

import (
	"fmt"
	"strconv"
	"strings"
)

// reservedPlainWords are strings a YAML parser would read as a boolean or
// null instead of a string, so they must be quoted.
//
// Note: 'y', 'Y', 'n', 'N' are not quoted deliberately, as in libyaml.
// PyYAML also parses them as strings, not booleans, although that violates
// the YAML 1.1 specification.
// See https://github.com/dtolnay/serde-yaml/pull/83#discussion_r152628088.
var reservedPlainWords = map[string]struct{}{
	// http://yaml.org/type/bool.html
	"yes": {}, "Yes": {}, "YES": {},
	"no": {}, "No": {}, "NO": {},
	"True": {}, "TRUE": {}, "true": {},
	"False": {}, "FALSE": {}, "false": {},
	"on": {}, "On": {}, "ON": {},
	"off": {}, "Off": {}, "OFF": {},
	// http://yaml.org/type/null.html
	"null": {}, "Null": {}, "NULL": {}, "~": {},
}

// needsQuotes reports whether a string cannot be written as a plain scalar
// and must be double-quoted.
//
// That is the case when the string is empty, starts or ends with a space,
// starts with an indicator character, contains a character or control code
// that is illegal in plain context, is a reserved boolean/null word, or
// would be read back as a number.
func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return true
	}
	switch s[0] {
	case '&', '*', '?', '|', '-', '<', '>', '=', '!', '%', '@':
		return true
	}
	if strings.ContainsFunc(s, func(r rune) bool {
		switch r {
		case ':', '{', '}', '[', ']', ',', '#', '`', '"', '\'', '\\':
			return true
		}
		switch {
		case r <= 0x06,
			r == '\t', r == '\n', r == '\r',
			r >= 0x0e && r <= 0x1a,
			r >= 0x1c && r <= 0x1f:
			return true
		}
		return false
	}) {
		return true
	}
	if _, ok := reservedPlainWords[s]; ok {
		return true
	}
	if strings.HasPrefix(s, ".") || strings.HasPrefix(s, "0x") {
		return true
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	return isDecimalFloat(s)
}

// escapeString writes s double-quoted with C0 controls, DEL, `"` and `\`
// escaped. Everything else is already valid text and is copied verbatim in
// bulk runs between escape points.
func escapeString(w *Writer, s string) error {
	if err := w.writeString(`"`); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(s); i++ {
		var escaped string
		switch b := s[i]; b {
		case '"':
			escaped = `\"`
		case '\\':
			escaped = `\\`
		case '\b':
			escaped = `\b`
		case '\t':
			escaped = `\t`
		case '\n':
			escaped = `\n`
		case '\f':
			escaped = `\f`
		case '\r':
			escaped = `\r`
		default:
			if b >= 0x20 && b != 0x7f {
				continue
			}
			escaped = fmt.Sprintf(`\u%04x`, b)
		}

		if start < i {
			if err := w.writeString(s[start:i]); err != nil {
				return err
			}
		}
		if err := w.writeString(escaped); err != nil {
			return err
		}
		start = i + 1
	}

	if start != len(s) {
		if err := w.writeString(s[start:]); err != nil {
			return err
		}
	}
	return w.writeString(`"`)
}

// isValidLiteralBlock reports whether s can be reproduced exactly by a
// literal block scalar. Lines with leading whitespace are out (indentation
// detection would swallow it, and whitespace-only lines would come back
// empty), as are control characters that cannot appear literally and more
// than one trailing newline (clip chomping keeps at most one).
func isValidLiteralBlock(s string) bool {
	if strings.HasSuffix(s, "\n\n") {
		return false
	}
	for _, line := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		if line == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			return false
		}
		for _, r := range line {
			if r != '\t' && (r < 0x20 || r == 0x7f) {
				return false
			}
		}
	}
	return true
}

// writeLiteralBlock renders s in literal block style: a `|` header
// (`|-` when s has no trailing newline to reproduce), then each line
// unescaped at one deeper indentation level.
func (w *Writer) writeLiteralBlock(s string) error {
	header := "|-"
	if strings.HasSuffix(s, "\n") {
		header = "|"
	}
	if err := w.writeString(header); err != nil {
		return err
	}

	w.level++
	defer func() { w.level-- }()
	for _, line := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		if err := w.writeString("\n"); err != nil {
			return err
		}
		if err := w.writeIndent(); err != nil {
			return err
		}
		// It's literal text, so don't escape special chars.
		if err := w.writeString(line); err != nil {
			return err
		}
	}
	return nil
}
