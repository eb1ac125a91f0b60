// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevent

import (
	"io"

	"github.com/cwize1/saphyr-parser/pkg/yamlwriter"
)

// Emit feeds events to dst in order, stopping at the first error.
func Emit(dst *yamlwriter.Writer, events []yamlwriter.WriteEvent) error {
	for _, event := range events {
		if err := dst.Event(event); err != nil {
			return err
		}
	}
	return nil
}

// EmitValue renders a plain Go value as a single-document stream through
// dst.
func EmitValue(dst *yamlwriter.Writer, val interface{}) error {
	events, err := ValueEvents(val)
	if err != nil {
		return err
	}
	return Emit(dst, events)
}

// Reformat parses a YAML stream and re-emits it through a writer with
// default configuration, returning the canonical text.
func Reformat(r io.Reader, w io.Writer) error {
	events, err := StreamEvents(r)
	if err != nil {
		return err
	}
	return Emit(yamlwriter.NewWriter(w), events)
}
