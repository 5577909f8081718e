// Package api holds the OpenAPI document of the HTTP interface together
// with its request and response types and the echo route bindings.
package api

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

// RolesExtension lists the role labels an operation requires. Operations
// without it are public.
const RolesExtension = "x-roles"

// GetSwagger parses the embedded document. Every call returns a fresh copy
// the caller may modify.
func GetSwagger() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	return doc, nil
}

// RawSpec returns the embedded document as written.
func RawSpec() []byte {
	return rawSpec
}

// swaggerDoc serves the document to echo-swagger.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	doc, err := GetSwagger()
	if err != nil {
		return "{}"
	}
	data, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
