// Copyright 2026 The saphyr-parser Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlevent produces yamlwriter event streams from the two sources a
caller typically has: YAML text already parsed by gopkg.in/yaml.v3, and
plain Go values built programmatically.

Parsed scalars keep their style and explicit type tag, so quoted "true"
stays a string while a plain true becomes a boolean. Alias nodes are not
supported and fail the conversion.
*/
package yamlevent
