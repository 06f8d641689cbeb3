// Copyright 2022, Pulumi Corporation.  All rights reserved.

package openapi

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blang/semver"
	"gopkg.in/yaml.v3"
)

// PartialDecodeError reports values that did not fit their declared types.
// The graph returned alongside it holds everything else.
type PartialDecodeError struct {
	Err *yaml.TypeError
}

func (e *PartialDecodeError) Error() string {
	return fmt.Sprintf("document decoded partially: %s", strings.Join(e.Err.Errors, "; "))
}

func (e *PartialDecodeError) Unwrap() error {
	return e.Err
}

// Decode reads the first document of text into the Swagger model.
//
// Syntax errors return a nil graph. Type mismatches return the partially
// decoded graph and a *PartialDecodeError. Empty text decodes to an empty
// document.
func Decode(text string) (*Swagger, error) {
	var doc Swagger
	err := yaml.NewDecoder(strings.NewReader(text)).Decode(&doc)
	var typeErr *yaml.TypeError
	switch {
	case err == nil:
		return &doc, nil
	case errors.Is(err, io.EOF):
		return &Swagger{}, nil
	case errors.As(err, &typeErr):
		return &doc, &PartialDecodeError{Err: typeErr}
	default:
		return nil, fmt.Errorf("decoding swagger document: %w", err)
	}
}

// SupportedVersion is the major version of the specification the model
// describes.
const SupportedVersion = 2

// CheckVersion validates the value of a document's swagger field.
func CheckVersion(v string) error {
	if v == "" {
		return errors.New("document does not declare a swagger version")
	}
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return fmt.Errorf("invalid swagger version %q: %w", v, err)
	}
	if parsed.Major != SupportedVersion {
		return fmt.Errorf("unsupported swagger version %s: only %d.x documents are understood",
			parsed, SupportedVersion)
	}
	return nil
}
