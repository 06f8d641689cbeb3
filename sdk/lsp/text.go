// Copyright 2022, Pulumi Corporation.  All rights reserved.

package lsp

import (
	"fmt"
	"strings"

	"go.lsp.dev/protocol"
)

// An immutable snapshot of an open text document. Updating a document
// produces a new snapshot, so a Document can be read from any goroutine
// without locking.
type Document struct {
	text  string
	lines []string
	uri   protocol.DocumentURI

	version    int32
	languageID protocol.LanguageIdentifier
}

// Create a new document from a TextDocumentItem.
func NewDocument(item protocol.TextDocumentItem) Document {
	return Document{
		text:       item.Text,
		lines:      strings.Split(item.Text, lineDeliminator),
		uri:        item.URI,
		version:    item.Version,
		languageID: item.LanguageID,
	}
}

// WithText returns a copy of the document holding the new content.
func (d Document) WithText(version int32, text string) Document {
	d.text = text
	d.lines = strings.Split(text, lineDeliminator)
	d.version = version
	return d
}

const lineDeliminator = "\n"

// Retrieve the URI of the Document.
func (d Document) URI() protocol.DocumentURI {
	return d.uri
}

func (d Document) Version() int32 {
	return d.version
}

func (d Document) LanguageID() protocol.LanguageIdentifier {
	return d.languageID
}

// Returns the whole document as a string.
func (d Document) String() string {
	return d.text
}

// Retrieve a specific line in the document. If the index is out of range (or
// negative), an error is returned.
func (d Document) Line(i int) (string, error) {
	if i < 0 {
		return "", fmt.Errorf("Cannot access negative line")
	}
	if i >= len(d.lines) {
		return "", fmt.Errorf("Line index is %d but there are only %d lines", i, len(d.lines))
	}
	return d.lines[i], nil
}

func (d Document) LineLen() int {
	return len(d.lines)
}
