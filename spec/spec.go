// Package spec embeds the OpenAPI description of the trip-planning API.
// It is imported by the HTTP server to serve the document at /openapi.yaml.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// Serving it from the binary means the document and the running code are
// always in sync.
//
//go:embed openapi.yaml
var OpenAPI []byte
