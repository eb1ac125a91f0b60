// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlwriter

import (
	"fmt"
	"strings"
)

// stackFrame is one pending continuation of the emission automaton. The
// writer's stack of frames is the full ancestor chain of what the writer is
// currently waiting for, replacing recursive descent so the writer can be
// driven by an external event stream.
//
// A frame is popped from the stack before run is called; run may push zero
// or more replacement frames. Each variant accepts exactly the events its
// grammar position allows and reports a StateError for everything else.
type stackFrame interface {
	run(w *Writer, event WriteEvent) error
}

// startFrame: the writer has been initialized.
type startFrame struct{}

func (startFrame) run(w *Writer, event WriteEvent) error {
	switch event.Kind {
	case EventStreamStart:
		w.push(docListFrame{first: true})
		return nil
	default:
		return &StateError{State: StateStart, Event: event}
	}
}

// endFrame: the stream has ended; no event is legal.
type endFrame struct{}

func (endFrame) run(_ *Writer, event WriteEvent) error {
	return &StateError{State: StateEnd, Event: event}
}

// docListFrame: between documents.
type docListFrame struct {
	first bool
}

func (f docListFrame) run(w *Writer, event WriteEvent) error {
	switch event.Kind {
	case EventDocumentStart:
		if !f.first {
			if err := w.writeString("\n"); err != nil {
				return err
			}
		}
		if !f.first || !w.omitFirstDocSeparator {
			if err := w.writeString("---\n"); err != nil {
				return err
			}
		}
		w.push(docListFrame{first: false})
		w.push(docFrame{})
		return nil
	case EventStreamEnd:
		w.push(endFrame{})
		return nil
	default:
		return &StateError{State: StateDocumentList, Event: event}
	}
}

// docFrame: waiting for a document's value.
type docFrame struct{}

func (docFrame) run(w *Writer, event WriteEvent) error {
	switch event.Kind {
	case EventSequenceStart, EventMappingStart, EventScalar:
		w.push(docEndFrame{})
		return w.runNode(event)
	case EventDocumentEnd:
		// Empty document.
		return nil
	default:
		return &StateError{State: StateDocument, Event: event}
	}
}

// docEndFrame: the document's value has been written.
type docEndFrame struct{}

func (docEndFrame) run(_ *Writer, event WriteEvent) error {
	switch event.Kind {
	case EventDocumentEnd:
		return nil
	default:
		return &StateError{State: StateDocumentEnd, Event: event}
	}
}

// runNode writes a standalone node: a scalar immediately, or a frame for an
// opening collection.
func (w *Writer) runNode(event WriteEvent) error {
	switch event.Kind {
	case EventSequenceStart:
		w.push(sequenceFrame{first: true})
		return nil
	case EventMappingStart:
		w.push(mappingFrame{first: true})
		return nil
	case EventScalar:
		return w.writeScalar(event.Scalar)
	default:
		// Callers do not pass in other kinds of events.
		panic(fmt.Sprintf("Unexpected %s in runNode", event))
	}
}

// sequenceFrame: in the middle of a block sequence.
type sequenceFrame struct {
	first bool
}

func (f sequenceFrame) run(w *Writer, event WriteEvent) error {
	switch event.Kind {
	case EventSequenceStart, EventMappingStart, EventScalar:
		if f.first {
			w.level++
		} else {
			if err := w.writeString("\n"); err != nil {
				return err
			}
			if err := w.writeIndent(); err != nil {
				return err
			}
		}
		if err := w.writeString("-"); err != nil {
			return err
		}
		w.push(sequenceFrame{first: false})
		return w.runValue(event, true)
	case EventSequenceEnd:
		if f.first {
			return w.writeString("[]")
		}
		w.level--
		return nil
	default:
		return &StateError{State: StateSequence, Event: event}
	}
}

// mappingFrame: in the middle of a block mapping, at a key slot.
type mappingFrame struct {
	first bool
}

func (f mappingFrame) run(w *Writer, event WriteEvent) error {
	switch event.Kind {
	case EventSequenceStart, EventMappingStart, EventScalar:
		if f.first {
			w.level++
		} else {
			if err := w.writeString("\n"); err != nil {
				return err
			}
			if err := w.writeIndent(); err != nil {
				return err
			}
		}

		// A collection as a key needs the `?` explicit-key indicator.
		complexKey := event.Kind == EventSequenceStart || event.Kind == EventMappingStart
		w.push(mappingValueFrame{complexKey: complexKey})

		if complexKey {
			if err := w.writeString("?"); err != nil {
				return err
			}
			return w.runValue(event, true)
		}
		return w.runNode(event)
	case EventMappingEnd:
		if f.first {
			return w.writeString("{}")
		}
		w.level--
		return nil
	default:
		return &StateError{State: StateMapping, Event: event}
	}
}

// mappingValueFrame: waiting for a mapping entry's value.
type mappingValueFrame struct {
	complexKey bool
}

func (f mappingValueFrame) run(w *Writer, event WriteEvent) error {
	switch event.Kind {
	case EventSequenceStart, EventMappingStart, EventScalar:
		if f.complexKey {
			if err := w.writeString("\n"); err != nil {
				return err
			}
			if err := w.writeIndent(); err != nil {
				return err
			}
		}
		if err := w.writeString(":"); err != nil {
			return err
		}
		w.push(mappingFrame{first: false})
		return w.runValue(event, f.complexKey)
	default:
		return &StateError{State: StateMappingEntryValue, Event: event}
	}
}

// runValue writes a node in value position (child of a sequence item or
// mapping entry): a scalar after one space, or a value frame that decides
// inline vs indented placement once the collection's first event arrives.
func (w *Writer) runValue(event WriteEvent, inline bool) error {
	switch event.Kind {
	case EventSequenceStart:
		w.push(valSequenceFrame{inline: inline})
		return nil
	case EventMappingStart:
		w.push(valMappingFrame{inline: inline})
		return nil
	case EventScalar:
		if err := w.writeString(" "); err != nil {
			return err
		}
		return w.writeScalar(event.Scalar)
	default:
		// Callers do not pass in other kinds of events.
		panic(fmt.Sprintf("Unexpected %s in runValue", event))
	}
}

// valSequenceFrame: a sequence in value position whose placement is still
// undecided.
type valSequenceFrame struct {
	inline bool
}

func (f valSequenceFrame) run(w *Writer, event WriteEvent) error {
	var empty bool
	switch event.Kind {
	case EventSequenceStart, EventMappingStart, EventScalar:
		empty = false
	case EventSequenceEnd:
		empty = true
	default:
		return &StateError{State: StateSequence, Event: event}
	}

	if err := w.openValueCollection(f.inline, empty); err != nil {
		return err
	}
	return sequenceFrame{first: true}.run(w, event)
}

// valMappingFrame: a mapping in value position whose placement is still
// undecided.
type valMappingFrame struct {
	inline bool
}

func (f valMappingFrame) run(w *Writer, event WriteEvent) error {
	var empty bool
	switch event.Kind {
	case EventSequenceStart, EventMappingStart, EventScalar:
		empty = false
	case EventMappingEnd:
		empty = true
	default:
		return &StateError{State: StateMapping, Event: event}
	}

	if err := w.openValueCollection(f.inline, empty); err != nil {
		return err
	}
	return mappingFrame{first: true}.run(w, event)
}

// openValueCollection places a nested collection either on the same line
// (compact inline placement, or the collection turned out empty) or at the
// start of its own indented line.
func (w *Writer) openValueCollection(inline, empty bool) error {
	if (inline && w.compact) || empty {
		return w.writeString(" ")
	}
	if err := w.writeString("\n"); err != nil {
		return err
	}
	w.level++
	err := w.writeIndent()
	w.level--
	return err
}

// writeScalar renders a scalar at the current position. Strings go through
// the lexical policy (literal block, quoted, or bare); typed scalars use
// their canonical, known-safe forms.
func (w *Writer) writeScalar(value ScalarValue) error {
	switch value.Kind {
	case ScalarString:
		// A literal block needs a parent to indent its body under. At the
		// document root (level still -1) the body would sit at column 0,
		// where parsers cannot read it back, so root strings are quoted.
		if w.multilineStrings && w.level >= 0 && strings.Contains(value.Str, "\n") && isValidLiteralBlock(value.Str) {
			return w.writeLiteralBlock(value.Str)
		}
		if needsQuotes(value.Str) {
			return escapeString(w, value.Str)
		}
		return w.writeString(value.Str)
	case ScalarBoolean, ScalarInteger, ScalarReal, ScalarNull, ScalarBadValue:
		return w.writeString(value.String())
	default:
		panic(fmt.Sprintf("Unexpected scalar kind %d", value.Kind))
	}
}
