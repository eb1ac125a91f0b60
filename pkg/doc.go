// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the YAML writer.

The codebase is organized into layers, each package depending only on the
layers below it.

# Emission Core

At the bottom sits the writer itself: a push-down automaton that accepts
one structural event at a time, validates it against the YAML grammar, and
renders block-style output. It owns the scalar type model (core schema
inference and tag coercion) and the lexical policy deciding between plain,
quoted, and literal-block scalar rendering.

	pkg/yamlwriter

# Event Sources

Above the core are the adapters that produce event streams: from YAML text
parsed with gopkg.in/yaml.v3 (round-tripping and reformatting) and from
plain Go values (programmatic document construction).

	pkg/yamlevent:
	- pkg/yamlwriter
	- pkg/orderedmap

# Utilities

An order-preserving map keeps programmatically built mappings
deterministic, since emission order is exactly event order.

	pkg/orderedmap
*/
package pkg
