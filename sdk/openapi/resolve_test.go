// Copyright 2022, Pulumi Corporation.  All rights reserved.

package openapi

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstore = `swagger: "2.0"
info:
  title: Petstore
  version: 1.0.0
  x-logo: logo.png
paths:
  /pets:
    get:
      summary: List pets
      responses:
        200:
          description: ok
definitions:
  Pet:
    type: object
`

func names(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

func TestResolveRootFields(t *testing.T) {
	fields, err := ResolveFields(&Swagger{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"swagger", "info", "host", "basePath", "schemes", "consumes",
		"produces", "paths", "definitions", "parameters", "responses",
		"securityDefinitions", "security", "tags", "externalDocs",
	}, names(fields))

	// A nil graph resolves like an empty one.
	again, err := ResolveFields(nil, []string{})
	require.NoError(t, err)
	assert.Equal(t, fields, again)
}

func TestResolveFields(t *testing.T) {
	t.Parallel()
	doc, err := Decode(petstore)
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     []string
		expected []string
	}{
		{
			name:     "info",
			path:     []string{"info"},
			expected: []string{"title", "description", "termsOfService", "contact", "license", "version"},
		},
		{
			name:     "map key is consumed",
			path:     []string{"paths", "/pets"},
			expected: []string{"$ref", "get", "put", "post", "delete", "options", "head", "patch", "parameters"},
		},
		{
			name:     "through a map key",
			path:     []string{"paths", "/pets", "get", "responses", "200"},
			expected: []string{"$ref", "description", "schema", "headers", "examples"},
		},
		{
			name:     "nil pointer",
			path:     []string{"info", "contact"},
			expected: []string{"name", "url", "email"},
		},
		{
			name:     "schema",
			path:     []string{"definitions", "Pet", "xml"},
			expected: []string{"name", "namespace", "prefix", "attribute", "wrapped"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fields, err := ResolveFields(doc, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names(fields))

			again, err := ResolveFields(doc, tt.path)
			require.NoError(t, err)
			assert.Equal(t, fields, again)
		})
	}
}

func TestResolveFieldsEmpty(t *testing.T) {
	doc, err := Decode(petstore)
	require.NoError(t, err)

	for _, path := range [][]string{
		{"paths"},
		{"info", "title"},
		{"schemes"},
		{"definitions", "Pet", "additionalProperties"},
	} {
		fields, err := ResolveFields(doc, path)
		assert.NoError(t, err, "%v", path)
		assert.Empty(t, fields, "%v", path)
	}
}

func TestResolveFieldsErrors(t *testing.T) {
	doc, err := Decode(petstore)
	require.NoError(t, err)

	_, err = ResolveFields(doc, []string{"notaswaggerfield"})
	var fieldErr *UnknownFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Swagger", fieldErr.Type)
	assert.Equal(t, "notaswaggerfield", fieldErr.Field)

	// Extensions are not fields.
	_, err = ResolveFields(doc, []string{"info", "x-logo"})
	assert.ErrorAs(t, err, &fieldErr)

	_, err = ResolveFields(doc, []string{"info", "title", "deeper"})
	assert.ErrorAs(t, err, &fieldErr)

	_, err = ResolveFields(doc, []string{"paths", "/dogs", "get"})
	var keyErr *UnknownKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "paths", keyErr.Field)
	assert.Equal(t, "/dogs", keyErr.Key)
}

func TestFieldDetails(t *testing.T) {
	fields, err := ResolveFields(nil, nil)
	require.NoError(t, err)
	details := map[string]Field{}
	for _, f := range fields {
		details[f.Name] = f
	}
	assert.Equal(t, Field{Name: "info", Kind: Object, Detail: "Info"}, details["info"])
	assert.Equal(t, Field{Name: "tags", Kind: List, Detail: "[]Tag"}, details["tags"])
	assert.Equal(t, Field{Name: "paths", Kind: Map, Detail: "map[string]PathItem"}, details["paths"])
	assert.Equal(t, Field{Name: "host", Kind: Scalar, Detail: "string"}, details["host"])
	assert.NotContains(t, details, "Extensions")
}

func TestRegistryCoversModel(t *testing.T) {
	for _, v := range []any{
		Swagger{}, Info{}, Contact{}, License{}, PathItem{}, Operation{},
		Parameter{}, Items{}, Response{}, Header{}, Schema{}, XML{},
		SecurityScheme{}, Tag{}, ExternalDocs{},
	} {
		_, ok := registry[reflect.TypeOf(v)]
		assert.True(t, ok, "%T", v)
	}
}
