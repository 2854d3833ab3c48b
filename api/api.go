// Package api embeds the OpenAPI document served and enforced by the HTTP adapter.
package api

import _ "embed"

// OpenAPI is the raw openapi.yaml document.
//
//go:embed openapi.yaml
var OpenAPI []byte
