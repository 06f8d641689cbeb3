// Copyright 2022, Pulumi Corporation.  All rights reserved.

package fieldpath

import (
	"fmt"
	"strings"
	"unicode"

	"go.lsp.dev/protocol"
)

// Sanitize blanks the line holding pos so that a half-typed key on it cannot
// make the rest of the document unparsable.
//
// Every non-whitespace character on the line is replaced by a space. The
// returned position is on the same line, at the column given by the number of
// whitespace characters the line held. For a line still being typed, that is
// its indentation.
func Sanitize(text string, pos protocol.Position) (string, protocol.Position, error) {
	lines := strings.Split(text, "\n")
	line := int(pos.Line)
	if line >= len(lines) {
		return "", pos, fmt.Errorf("line %d is outside of a document with %d lines", line, len(lines))
	}

	content, cr := strings.CutSuffix(lines[line], "\r")
	var blanked strings.Builder
	kept := 0
	for _, r := range content {
		if unicode.IsSpace(r) {
			blanked.WriteRune(r)
			kept++
		} else {
			blanked.WriteByte(' ')
		}
	}
	if cr {
		blanked.WriteByte('\r')
	}
	lines[line] = blanked.String()

	return strings.Join(lines, "\n"), protocol.Position{
		Line:      pos.Line,
		Character: uint32(kept),
	}, nil
}
