// Copyright 2022, Pulumi Corporation.  All rights reserved.

package swagger

import (
	"context"
	"errors"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/swaggerls/swagger-lsp/sdk/fieldpath"
	"github.com/swaggerls/swagger-lsp/sdk/openapi"
	"github.com/swaggerls/swagger-lsp/sdk/step"
)

// UnparsableError is returned when the document cannot be analyzed at all.
type UnparsableError struct {
	msg string
	err error
}

func (e UnparsableError) Error() string {
	var post string
	if e.msg != "" {
		post = ": " + e.msg
	}
	if e.err != nil {
		post += ": " + e.err.Error()
	}
	return fmt.Sprintf("could not parse document%s", post)
}

func (e UnparsableError) Unwrap() error {
	return e.err
}

// Analysis is the result of analyzing a document at a cursor.
type Analysis struct {
	// The cursor after its line was sanitized.
	Cursor protocol.Position
	// The keys enclosing the cursor.
	Path fieldpath.Path
	// The fields that may be written at the cursor.
	Fields []openapi.Field
	// Problems that did not prevent the analysis, such as values of the wrong
	// type or a path that leads outside the model.
	Warnings []error
}

// Analyze computes the fields that can be written at pos in text.
//
// The line holding pos is blanked before parsing, so a partially typed key
// does not break the document. The structure and the typed model are then
// read concurrently from the same text.
func Analyze(ctx context.Context, text string, pos protocol.Position) (*Analysis, error) {
	sanitized, cursor, err := fieldpath.Sanitize(text, pos)
	if err != nil {
		return nil, UnparsableError{"invalid cursor", err}
	}

	structure := step.New(ctx, func() (*fieldpath.File, error) {
		return fieldpath.Parse(sanitized)
	})
	model := step.New(ctx, func() (*openapi.Swagger, error) {
		return openapi.Decode(sanitized)
	})

	path := step.Then(structure, func(f *fieldpath.File) (fieldpath.Path, error) {
		return fieldpath.ResolveFile(f, cursor), nil
	})

	a := &Analysis{Cursor: cursor}
	a.Path, err = path.GetResult()
	if err != nil {
		return nil, UnparsableError{"structure", err}
	}

	doc, err := model.GetResult()
	var partial *openapi.PartialDecodeError
	switch {
	case errors.As(err, &partial):
		a.Warnings = append(a.Warnings, partial)
	case err != nil:
		return nil, UnparsableError{"model", err}
	}
	if doc.Swagger != "" {
		if err := openapi.CheckVersion(doc.Swagger); err != nil {
			a.Warnings = append(a.Warnings, err)
		}
	}

	fields, err := openapi.ResolveFields(doc, a.Path)
	var unknownField *openapi.UnknownFieldError
	var unknownKey *openapi.UnknownKeyError
	switch {
	case errors.As(err, &unknownField), errors.As(err, &unknownKey):
		a.Warnings = append(a.Warnings, err)
		return a, nil
	case err != nil:
		return nil, err
	}
	a.Fields = fields
	return a, nil
}

// Complete returns the fields that can be written at pos in text.
func Complete(ctx context.Context, text string, pos protocol.Position) ([]openapi.Field, error) {
	a, err := Analyze(ctx, text, pos)
	if err != nil {
		return nil, err
	}
	return a.Fields, nil
}
