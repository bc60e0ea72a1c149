// Package spec embeds the OpenAPI description of the Planner API.
// The HTTP server serves it at /openapi.yaml, and the handler/gen package
// is generated from it.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
