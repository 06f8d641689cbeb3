// Copyright 2022, Pulumi Corporation.  All rights reserved.

package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
)

func TestSanitize(t *testing.T) {
	text := "swagger: \"2.0\"\ninfo:\n  tit\n"
	out, pos, err := Sanitize(text, protocol.Position{Line: 2, Character: 5})
	require.NoError(t, err)
	assert.Equal(t, "swagger: \"2.0\"\ninfo:\n     \n", out)
	assert.Equal(t, protocol.Position{Line: 2, Character: 2}, pos)

	// The blanked document resolves to the enclosing mapping.
	f, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, Path{"info"}, ResolveFile(f, pos))
}

func TestSanitizeKeepsCarriageReturn(t *testing.T) {
	out, pos, err := Sanitize("a:\r\n  b: c\r\n", protocol.Position{Line: 1, Character: 6})
	require.NoError(t, err)
	assert.Equal(t, "a:\r\n      \r\n", out)
	assert.Equal(t, uint32(3), pos.Character)
}

func TestSanitizeOutOfRange(t *testing.T) {
	_, _, err := Sanitize("a: 1", protocol.Position{Line: 4})
	assert.Error(t, err)
}
