// Copyright 2022, Pulumi Corporation.  All rights reserved.

package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"

	"github.com/swaggerls/swagger-lsp/sdk/config"
	"github.com/swaggerls/swagger-lsp/sdk/lsp"
)

const testURI = protocol.DocumentURI("untitled:swagger.yaml")

func completionAt(t *testing.T, m *lsp.Methods, line, char uint32) []string {
	t.Helper()
	list, err := m.CompletionFunc(lsp.Client{}, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: line, Character: char},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, list)
	labels := make([]string, len(list.Items))
	for i, item := range list.Items {
		labels[i] = item.Label
	}
	return labels
}

func TestHandlers(t *testing.T) {
	docs := lsp.NewDocumentStore(nil)
	m := Methods(docs, nil, config.Default())

	// Nothing is open yet.
	assert.Empty(t, completionAt(t, m, 0, 0))

	require.NoError(t, m.DidOpenFunc(lsp.Client{}, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        testURI,
			LanguageID: "yaml",
			Version:    1,
			Text:       "swagger: \"2.0\"\n",
		},
	}))
	assert.True(t, docs.IsOpen(testURI))

	require.NoError(t, m.DidChangeFunc(lsp.Client{}, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{Text: "swagger: \"2.0\"\ninfo:\n  title: demo\n  "},
		},
	}))
	assert.Contains(t, completionAt(t, m, 3, 2), "title")

	require.NoError(t, m.DidCloseFunc(lsp.Client{}, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}))
	assert.False(t, docs.IsOpen(testURI))
	assert.Empty(t, completionAt(t, m, 3, 2))
}

func TestCompletionNeverFails(t *testing.T) {
	docs := lsp.NewDocumentStore(nil)
	m := Methods(docs, nil, config.Default())
	// The cursor line is blanked before parsing, so the broken line must be
	// another one.
	docs.Open(protocol.TextDocumentItem{URI: testURI, Text: "info: [\n\n"})
	assert.Empty(t, completionAt(t, m, 1, 0))
	assert.Empty(t, completionAt(t, m, 40, 0))
}

func TestChangeUnopened(t *testing.T) {
	docs := lsp.NewDocumentStore(nil)
	m := Methods(docs, nil, config.Default())
	err := m.DidChangeFunc(lsp.Client{}, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "a: 1"}},
	})
	assert.NoError(t, err)
	assert.False(t, docs.IsOpen(testURI))
}
