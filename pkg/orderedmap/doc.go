// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

Mapping entries are emitted in the order the event stream supplies them, so
callers building documents programmatically use this map flavor to keep the
output deterministic and stable.
*/
package orderedmap
