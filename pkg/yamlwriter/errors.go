// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlwriter

import "fmt"

// StateKind names the class of event the writer was waiting for when a
// state error occurred.
type StateKind int

const (
	// StateStart: the writer has been initialized. Waiting for StreamStart.
	StateStart StateKind = iota
	// StateEnd: the writer has finished. Expecting no more events.
	StateEnd
	// StateDocumentList: between documents. Waiting for DocumentStart or
	// StreamEnd.
	StateDocumentList
	// StateDocumentEnd: waiting for DocumentEnd.
	StateDocumentEnd
	// StateDocument: waiting for a document's value.
	StateDocument
	// StateSequence: in the middle of a sequence.
	StateSequence
	// StateMapping: in the middle of a mapping, waiting for an entry's key.
	StateMapping
	// StateMappingEntryValue: waiting for a mapping entry's value.
	StateMappingEntryValue
	// StateExistingError: an error already occurred. Cannot continue.
	StateExistingError
)

func (k StateKind) expecting() string {
	switch k {
	case StateStart:
		return "start of stream (StreamStart)"
	case StateEnd:
		return "no more events due to end of stream"
	case StateDocumentList:
		return "document (DocumentStart, StreamEnd)"
	case StateDocumentEnd:
		return "end of document (DocumentEnd)"
	case StateDocument:
		return "document value (SequenceStart, MappingStart, Scalar)"
	case StateSequence:
		return "sequence item (SequenceStart, MappingStart, Scalar, SequenceEnd)"
	case StateMapping:
		return "mapping entry key (SequenceStart, MappingStart, Scalar, MappingEnd)"
	case StateMappingEntryValue:
		return "mapping entry value (SequenceStart, MappingStart, Scalar)"
	case StateExistingError:
		return "no more events due to previous error"
	default:
		panic(fmt.Sprintf("Unexpected state kind %d", k))
	}
}

// StateError reports an event that is not legal in the writer's current
// state. It carries the state's expected event class and the offending
// event for diagnostics.
type StateError struct {
	State StateKind
	Event WriteEvent
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid YAML write event, expecting %s, got: %s", e.State.expecting(), e.Event)
}

// FormatError reports a failure to write to the output sink.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("writing YAML output: %s", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
