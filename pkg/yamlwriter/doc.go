// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlwriter emits YAML documents from a stream of structural events
(stream/document boundaries, sequence and mapping open/close, scalars).

It is the write-side counterpart of a YAML parser: events pushed one at a
time are checked against the grammar and rendered in block style, so that
re-parsing the output reproduces the submitted event sequence. Events that
are not legal in the writer's current state fail with a StateError, after
which the writer refuses all further events.
*/
package yamlwriter
