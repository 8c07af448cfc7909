// Package api holds the OpenAPI contract of the dispatch HTTP API.
package api

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types,server -package servers -o ../internal/generated/servers/server.gen.go openapi.json

// OpenAPI is the raw contract document.
//
//go:embed openapi.json
var OpenAPI []byte

// Load parses and validates the contract.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(OpenAPI)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}
