// Copyright 2022, Pulumi Corporation.  All rights reserved.

// Package openapi holds the Swagger 2.0 object model, its decoder and the
// field resolver used to drive completion.
//
// Every model type carries an inline Extensions map. It receives the keys the
// type does not declare (vendor extensions such as x-foo as well as typos) so
// that a document in the middle of an edit still decodes.
package openapi

// Swagger is the root document object.
type Swagger struct {
	Swagger             string                     `yaml:"swagger"`
	Info                *Info                      `yaml:"info"`
	Host                string                     `yaml:"host"`
	BasePath            string                     `yaml:"basePath"`
	Schemes             []string                   `yaml:"schemes"`
	Consumes            []string                   `yaml:"consumes"`
	Produces            []string                   `yaml:"produces"`
	Paths               map[string]*PathItem       `yaml:"paths"`
	Definitions         map[string]*Schema         `yaml:"definitions"`
	Parameters          map[string]*Parameter      `yaml:"parameters"`
	Responses           map[string]*Response       `yaml:"responses"`
	SecurityDefinitions map[string]*SecurityScheme `yaml:"securityDefinitions"`
	Security            []map[string][]string      `yaml:"security"`
	Tags                []*Tag                     `yaml:"tags"`
	ExternalDocs        *ExternalDocs              `yaml:"externalDocs"`

	Extensions map[string]any `yaml:",inline"`
}

type Info struct {
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	TermsOfService string   `yaml:"termsOfService"`
	Contact        *Contact `yaml:"contact"`
	License        *License `yaml:"license"`
	Version        string   `yaml:"version"`

	Extensions map[string]any `yaml:",inline"`
}

type Contact struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	Email string `yaml:"email"`

	Extensions map[string]any `yaml:",inline"`
}

type License struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`

	Extensions map[string]any `yaml:",inline"`
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref        string       `yaml:"$ref"`
	Get        *Operation   `yaml:"get"`
	Put        *Operation   `yaml:"put"`
	Post       *Operation   `yaml:"post"`
	Delete     *Operation   `yaml:"delete"`
	Options    *Operation   `yaml:"options"`
	Head       *Operation   `yaml:"head"`
	Patch      *Operation   `yaml:"patch"`
	Parameters []*Parameter `yaml:"parameters"`

	Extensions map[string]any `yaml:",inline"`
}

type Operation struct {
	Tags         []string              `yaml:"tags"`
	Summary      string                `yaml:"summary"`
	Description  string                `yaml:"description"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs"`
	OperationID  string                `yaml:"operationId"`
	Consumes     []string              `yaml:"consumes"`
	Produces     []string              `yaml:"produces"`
	Parameters   []*Parameter          `yaml:"parameters"`
	Responses    map[string]*Response  `yaml:"responses"`
	Schemes      []string              `yaml:"schemes"`
	Deprecated   bool                  `yaml:"deprecated"`
	Security     []map[string][]string `yaml:"security"`

	Extensions map[string]any `yaml:",inline"`
}

// Parameter covers body parameters (which carry a Schema) as well as the
// other locations (which are described by the validation keywords).
type Parameter struct {
	Ref              string   `yaml:"$ref"`
	Name             string   `yaml:"name"`
	In               string   `yaml:"in"`
	Description      string   `yaml:"description"`
	Required         bool     `yaml:"required"`
	Schema           *Schema  `yaml:"schema"`
	Type             string   `yaml:"type"`
	Format           string   `yaml:"format"`
	AllowEmptyValue  bool     `yaml:"allowEmptyValue"`
	Items            *Items   `yaml:"items"`
	CollectionFormat string   `yaml:"collectionFormat"`
	Default          any      `yaml:"default"`
	Maximum          *float64 `yaml:"maximum"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum"`
	Minimum          *float64 `yaml:"minimum"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum"`
	MaxLength        *int64   `yaml:"maxLength"`
	MinLength        *int64   `yaml:"minLength"`
	Pattern          string   `yaml:"pattern"`
	MaxItems         *int64   `yaml:"maxItems"`
	MinItems         *int64   `yaml:"minItems"`
	UniqueItems      bool     `yaml:"uniqueItems"`
	Enum             []any    `yaml:"enum"`
	MultipleOf       *float64 `yaml:"multipleOf"`

	Extensions map[string]any `yaml:",inline"`
}

// Items describes the elements of a non-body array parameter or header.
type Items struct {
	Type             string   `yaml:"type"`
	Format           string   `yaml:"format"`
	Items            *Items   `yaml:"items"`
	CollectionFormat string   `yaml:"collectionFormat"`
	Default          any      `yaml:"default"`
	Maximum          *float64 `yaml:"maximum"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum"`
	Minimum          *float64 `yaml:"minimum"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum"`
	MaxLength        *int64   `yaml:"maxLength"`
	MinLength        *int64   `yaml:"minLength"`
	Pattern          string   `yaml:"pattern"`
	MaxItems         *int64   `yaml:"maxItems"`
	MinItems         *int64   `yaml:"minItems"`
	UniqueItems      bool     `yaml:"uniqueItems"`
	Enum             []any    `yaml:"enum"`
	MultipleOf       *float64 `yaml:"multipleOf"`

	Extensions map[string]any `yaml:",inline"`
}

type Response struct {
	Ref         string             `yaml:"$ref"`
	Description string             `yaml:"description"`
	Schema      *Schema            `yaml:"schema"`
	Headers     map[string]*Header `yaml:"headers"`
	Examples    map[string]any     `yaml:"examples"`

	Extensions map[string]any `yaml:",inline"`
}

type Header struct {
	Description      string   `yaml:"description"`
	Type             string   `yaml:"type"`
	Format           string   `yaml:"format"`
	Items            *Items   `yaml:"items"`
	CollectionFormat string   `yaml:"collectionFormat"`
	Default          any      `yaml:"default"`
	Maximum          *float64 `yaml:"maximum"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum"`
	Minimum          *float64 `yaml:"minimum"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum"`
	MaxLength        *int64   `yaml:"maxLength"`
	MinLength        *int64   `yaml:"minLength"`
	Pattern          string   `yaml:"pattern"`
	MaxItems         *int64   `yaml:"maxItems"`
	MinItems         *int64   `yaml:"minItems"`
	UniqueItems      bool     `yaml:"uniqueItems"`
	Enum             []any    `yaml:"enum"`
	MultipleOf       *float64 `yaml:"multipleOf"`

	Extensions map[string]any `yaml:",inline"`
}

// Schema is the Swagger subset of JSON Schema draft 4.
type Schema struct {
	Ref                  string             `yaml:"$ref"`
	Format               string             `yaml:"format"`
	Title                string             `yaml:"title"`
	Description          string             `yaml:"description"`
	Default              any                `yaml:"default"`
	MultipleOf           *float64           `yaml:"multipleOf"`
	Maximum              *float64           `yaml:"maximum"`
	ExclusiveMaximum     bool               `yaml:"exclusiveMaximum"`
	Minimum              *float64           `yaml:"minimum"`
	ExclusiveMinimum     bool               `yaml:"exclusiveMinimum"`
	MaxLength            *int64             `yaml:"maxLength"`
	MinLength            *int64             `yaml:"minLength"`
	Pattern              string             `yaml:"pattern"`
	MaxItems             *int64             `yaml:"maxItems"`
	MinItems             *int64             `yaml:"minItems"`
	UniqueItems          bool               `yaml:"uniqueItems"`
	MaxProperties        *int64             `yaml:"maxProperties"`
	MinProperties        *int64             `yaml:"minProperties"`
	Required             []string           `yaml:"required"`
	Enum                 []any              `yaml:"enum"`
	Type                 string             `yaml:"type"`
	Items                *Schema            `yaml:"items"`
	AllOf                []*Schema          `yaml:"allOf"`
	Properties           map[string]*Schema `yaml:"properties"`
	AdditionalProperties any                `yaml:"additionalProperties"`
	Discriminator        string             `yaml:"discriminator"`
	ReadOnly             bool               `yaml:"readOnly"`
	XML                  *XML               `yaml:"xml"`
	ExternalDocs         *ExternalDocs      `yaml:"externalDocs"`
	Example              any                `yaml:"example"`

	Extensions map[string]any `yaml:",inline"`
}

type XML struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`
	Prefix    string `yaml:"prefix"`
	Attribute bool   `yaml:"attribute"`
	Wrapped   bool   `yaml:"wrapped"`

	Extensions map[string]any `yaml:",inline"`
}

type SecurityScheme struct {
	Type             string            `yaml:"type"`
	Description      string            `yaml:"description"`
	Name             string            `yaml:"name"`
	In               string            `yaml:"in"`
	Flow             string            `yaml:"flow"`
	AuthorizationURL string            `yaml:"authorizationUrl"`
	TokenURL         string            `yaml:"tokenUrl"`
	Scopes           map[string]string `yaml:"scopes"`

	Extensions map[string]any `yaml:",inline"`
}

type Tag struct {
	Name         string        `yaml:"name"`
	Description  string        `yaml:"description"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs"`

	Extensions map[string]any `yaml:",inline"`
}

type ExternalDocs struct {
	Description string `yaml:"description"`
	URL         string `yaml:"url"`

	Extensions map[string]any `yaml:",inline"`
}
