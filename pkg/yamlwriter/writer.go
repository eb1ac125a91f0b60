// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlwriter

import (
	"io"
	"strings"
)

// Writer emits a YAML stream one event at a time.
//
// A Writer is driven by repeated calls to Event. Events are validated
// against the YAML grammar as they arrive; an illegal event or a sink
// failure puts the writer into a permanent error state (see Event). A
// Writer is not safe for concurrent use.
type Writer struct {
	sink                  io.Writer
	indent                int
	compact               bool
	multilineStrings      bool
	omitFirstDocSeparator bool

	// level is the current indentation depth. It starts at -1 ("no indent
	// yet") and only becomes >= 0 inside the first document.
	level int
	stack []stackFrame
}

// NewWriter creates a writer emitting into sink.
func NewWriter(sink io.Writer) *Writer {
	return &Writer{
		sink:                  sink,
		indent:                2,
		compact:               true,
		multilineStrings:      true,
		omitFirstDocSeparator: true,
		level:                 -1,
		stack:                 []stackFrame{startFrame{}},
	}
}

// SetIndent sets the number of spaces per indentation level (default 2).
// Negative widths are treated as 0.
func (w *Writer) SetIndent(width int) {
	if width < 0 {
		width = 0
	}
	w.indent = width
}

// SetCompact turns compact inline notation on or off, as described for
// block sequences and mappings in the YAML 1.2 spec. When on (the
// default), a collection nested directly as a value starts on the same
// line as its `-` or `:` indicator.
func (w *Writer) SetCompact(compact bool) { w.compact = compact }

// IsCompact reports whether this writer uses compact inline notation.
func (w *Writer) IsCompact() bool { return w.compact }

// SetMultilineStrings controls whether strings containing newlines are
// rendered in literal block style (default on). When off, such strings are
// double-quoted with escaped newlines.
func (w *Writer) SetMultilineStrings(multiline bool) { w.multilineStrings = multiline }

// IsMultilineStrings reports whether this writer emits literal blocks for
// multi-line strings.
func (w *Writer) IsMultilineStrings() bool { return w.multilineStrings }

// SetOmitFirstDocSeparator controls whether the `---` directive is skipped
// for the very first document (default on).
func (w *Writer) SetOmitFirstDocSeparator(omit bool) { w.omitFirstDocSeparator = omit }

// IsOmitFirstDocSeparator reports whether this writer skips the `---`
// directive for the first document.
func (w *Writer) IsOmitFirstDocSeparator() bool { return w.omitFirstDocSeparator }

// Event writes one event.
//
// The returned error is either a *StateError (the event is not legal right
// now) or a *FormatError (the sink failed). Errors are not recoverable:
// after any failure every later call returns a *StateError with
// StateExistingError, and a fresh Writer must be created to retry.
func (w *Writer) Event(event WriteEvent) error {
	if len(w.stack) == 0 {
		return &StateError{State: StateExistingError, Event: event}
	}
	frame := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	if err := frame.run(w, event); err != nil {
		// Recovery isn't supported, so drop the whole stack to prevent
		// further events from being processed.
		w.stack = nil
		return err
	}
	return nil
}

func (w *Writer) push(frame stackFrame) {
	w.stack = append(w.stack, frame)
}

func (w *Writer) writeString(s string) error {
	if _, err := io.WriteString(w.sink, s); err != nil {
		return &FormatError{Err: err}
	}
	return nil
}

func (w *Writer) writeIndent() error {
	if w.level <= 0 {
		return nil
	}
	return w.writeString(strings.Repeat(" ", w.level*w.indent))
}
