// Package schemas embeds the JSON Schemas used for structural validation of
// project artifacts.
package schemas

import _ "embed"

// ComposeSchemaJSON is the schema for container-composition files. It only
// constrains structure (a non-empty top-level services mapping), not the
// semantics of individual service definitions.
//
//go:embed compose.schema.json
var ComposeSchemaJSON string
