// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlwriter

import "fmt"

// EventKind identifies the structural meaning of a WriteEvent.
type EventKind int

const (
	// EventNothing is reserved for internal use. It is the zero value and
	// is never legal to submit.
	EventNothing EventKind = iota
	// EventStreamStart opens the event stream.
	EventStreamStart
	// EventStreamEnd is the last event of a stream.
	EventStreamEnd
	// EventDocumentStart opens a document (the `---` directive).
	EventDocumentStart
	// EventDocumentEnd closes a document.
	EventDocumentEnd
	// EventSequenceStart opens a YAML sequence (array).
	EventSequenceStart
	// EventSequenceEnd closes a YAML sequence.
	EventSequenceEnd
	// EventMappingStart opens a YAML mapping (object, hash).
	EventMappingStart
	// EventMappingEnd closes a YAML mapping.
	EventMappingEnd
	// EventScalar carries a single value.
	EventScalar
)

// WriteEvent describes the next node to write to the YAML document.
// The zero value is the Nothing event.
type WriteEvent struct {
	Kind   EventKind
	Scalar ScalarValue
}

// StreamStartEvent returns the event that opens the stream.
func StreamStartEvent() WriteEvent { return WriteEvent{Kind: EventStreamStart} }

// StreamEndEvent returns the event that closes the stream.
func StreamEndEvent() WriteEvent { return WriteEvent{Kind: EventStreamEnd} }

// DocumentStartEvent returns the event that opens a document.
func DocumentStartEvent() WriteEvent { return WriteEvent{Kind: EventDocumentStart} }

// DocumentEndEvent returns the event that closes a document.
func DocumentEndEvent() WriteEvent { return WriteEvent{Kind: EventDocumentEnd} }

// SequenceStartEvent returns the event that opens a sequence.
func SequenceStartEvent() WriteEvent { return WriteEvent{Kind: EventSequenceStart} }

// SequenceEndEvent returns the event that closes a sequence.
func SequenceEndEvent() WriteEvent { return WriteEvent{Kind: EventSequenceEnd} }

// MappingStartEvent returns the event that opens a mapping.
func MappingStartEvent() WriteEvent { return WriteEvent{Kind: EventMappingStart} }

// MappingEndEvent returns the event that closes a mapping.
func MappingEndEvent() WriteEvent { return WriteEvent{Kind: EventMappingEnd} }

// ScalarEvent returns the event carrying the given scalar value.
func ScalarEvent(value ScalarValue) WriteEvent {
	return WriteEvent{Kind: EventScalar, Scalar: value}
}

func (e WriteEvent) String() string {
	switch e.Kind {
	case EventNothing:
		return "Nothing"
	case EventStreamStart:
		return "StreamStart"
	case EventStreamEnd:
		return "StreamEnd"
	case EventDocumentStart:
		return "DocumentStart"
	case EventDocumentEnd:
		return "DocumentEnd"
	case EventSequenceStart:
		return "SequenceStart"
	case EventSequenceEnd:
		return "SequenceEnd"
	case EventMappingStart:
		return "MappingStart"
	case EventMappingEnd:
		return "MappingEnd"
	case EventScalar:
		return e.Scalar.String()
	default:
		panic(fmt.Sprintf("Unexpected event kind %d", e.Kind))
	}
}
