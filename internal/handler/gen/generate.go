// Package gen holds the server interface, models, and chi routing generated
// from spec/openapi.yaml. Do not edit api.gen.go by hand; edit openapi.yaml and
// run go generate.
package gen

//go:generate oapi-codegen -config cfg.yaml ../../../spec/openapi.yaml
