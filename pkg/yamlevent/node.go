// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlevent

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwize1/saphyr-parser/pkg/yamlwriter"
)

// StreamEvents parses a YAML stream and returns the complete event
// sequence for it, bracketed by StreamStart/StreamEnd, one
// DocumentStart/DocumentEnd pair per document.
func StreamEvents(r io.Reader) ([]yamlwriter.WriteEvent, error) {
	events := []yamlwriter.WriteEvent{yamlwriter.StreamStartEvent()}

	dec := yaml.NewDecoder(r)
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing YAML stream: %w", err)
		}

		events, err = appendNodeEvents(events, &doc)
		if err != nil {
			return nil, err
		}
	}

	return append(events, yamlwriter.StreamEndEvent()), nil
}

// DocumentEvents converts one parsed document node into its event sequence
// (DocumentStart, the document's value, DocumentEnd).
func DocumentEvents(doc *yaml.Node) ([]yamlwriter.WriteEvent, error) {
	if doc.Kind != yaml.DocumentNode {
		return nil, fmt.Errorf("expected a document node, got kind %d", doc.Kind)
	}
	return appendNodeEvents(nil, doc)
}

func appendNodeEvents(events []yamlwriter.WriteEvent, node *yaml.Node) ([]yamlwriter.WriteEvent, error) {
	var err error

	switch node.Kind {
	case yaml.DocumentNode:
		events = append(events, yamlwriter.DocumentStartEvent())
		for _, child := range node.Content {
			events, err = appendNodeEvents(events, child)
			if err != nil {
				return nil, err
			}
		}
		return append(events, yamlwriter.DocumentEndEvent()), nil

	case yaml.SequenceNode:
		events = append(events, yamlwriter.SequenceStartEvent())
		for _, child := range node.Content {
			events, err = appendNodeEvents(events, child)
			if err != nil {
				return nil, err
			}
		}
		return append(events, yamlwriter.SequenceEndEvent()), nil

	case yaml.MappingNode:
		// Content holds keys and values flattened pairwise.
		events = append(events, yamlwriter.MappingStartEvent())
		for _, child := range node.Content {
			events, err = appendNodeEvents(events, child)
			if err != nil {
				return nil, err
			}
		}
		return append(events, yamlwriter.MappingEndEvent()), nil

	case yaml.ScalarNode:
		value := yamlwriter.ScalarFromEvent(node.Value, scalarStyle(node), scalarTag(node))
		return append(events, yamlwriter.ScalarEvent(value)), nil

	case yaml.AliasNode:
		return nil, fmt.Errorf("alias node on line %d: aliases are not supported", node.Line)

	default:
		return nil, fmt.Errorf("unexpected node kind %d on line %d", node.Kind, node.Line)
	}
}

func scalarStyle(node *yaml.Node) yamlwriter.ScalarStyle {
	switch {
	case node.Style&yaml.SingleQuotedStyle != 0:
		return yamlwriter.StyleSingleQuoted
	case node.Style&yaml.DoubleQuotedStyle != 0:
		return yamlwriter.StyleDoubleQuoted
	case node.Style&yaml.LiteralStyle != 0:
		return yamlwriter.StyleLiteral
	case node.Style&yaml.FoldedStyle != 0:
		return yamlwriter.StyleFolded
	default:
		return yamlwriter.StylePlain
	}
}

// scalarTag returns node's type tag only when the source text spelled it
// out; yaml.v3 also records resolved tags, which must not suppress
// inference.
func scalarTag(node *yaml.Node) *yamlwriter.Tag {
	if node.Style&yaml.TaggedStyle == 0 {
		return nil
	}
	if suffix, ok := strings.CutPrefix(node.Tag, "!!"); ok {
		return &yamlwriter.Tag{Handle: yamlwriter.CoreSchemaTagHandle, Suffix: suffix}
	}
	return &yamlwriter.Tag{Handle: "!", Suffix: strings.TrimPrefix(node.Tag, "!")}
}
