// Copyright 2022, Pulumi Corporation.  All rights reserved.

package lsp

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

func item(u protocol.DocumentURI, text string) protocol.TextDocumentItem {
	return protocol.TextDocumentItem{
		URI:        u,
		LanguageID: "yaml",
		Version:    1,
		Text:       text,
	}
}

func TestStoreLifecycle(t *testing.T) {
	s := NewDocumentStore(nil)
	u := protocol.DocumentURI("file:///tmp/does-not-exist/swagger.yaml")

	assert.False(t, s.IsOpen(u))
	_, ok := s.Read(u)
	assert.False(t, ok)

	s.Open(item(u, "swagger: \"2.0\"\n"))
	assert.True(t, s.IsOpen(u))
	doc, ok := s.Read(u)
	require.True(t, ok)
	assert.Equal(t, "swagger: \"2.0\"\n", doc.String())
	assert.Equal(t, int32(1), doc.Version())

	assert.True(t, s.Update(u, 2, "swagger: \"2.0\"\ninfo:\n"))
	doc, ok = s.Read(u)
	require.True(t, ok)
	assert.Equal(t, int32(2), doc.Version())
	assert.Equal(t, 3, doc.LineLen())

	s.Close(u)
	assert.False(t, s.IsOpen(u))
	assert.Equal(t, 0, s.Len())
}

func TestStoreNoOps(t *testing.T) {
	s := NewDocumentStore(nil)
	u := protocol.DocumentURI("untitled:Untitled-1")

	// Updating or closing a document that is not open changes nothing.
	assert.False(t, s.Update(u, 2, "ignored"))
	s.Close(u)
	assert.False(t, s.IsOpen(u))

	// A second open keeps the first content.
	s.Open(item(u, "first"))
	s.Open(item(u, "second"))
	doc, ok := s.Read(u)
	require.True(t, ok)
	assert.Equal(t, "first", doc.String())
	assert.Equal(t, 1, s.Len())
}

func TestStoreSnapshotsAreStable(t *testing.T) {
	s := NewDocumentStore(nil)
	u := protocol.DocumentURI("untitled:a")
	s.Open(item(u, "old"))
	before, _ := s.Read(u)
	s.Update(u, 2, "new")
	after, _ := s.Read(u)
	assert.Equal(t, "old", before.String())
	assert.Equal(t, "new", after.String())
}

func TestStoreSameFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "swagger.yaml")
	require.NoError(t, os.WriteFile(target, []byte("swagger: \"2.0\"\n"), 0o600))
	link := filepath.Join(dir, "link.yaml")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks are not supported: %v", err)
	}

	s := NewDocumentStore(nil)
	s.Open(item(uri.File(link), "swagger: \"2.0\"\n"))
	assert.True(t, s.IsOpen(uri.File(target)))

	assert.True(t, s.Update(uri.File(target), 2, "host: x\n"))
	doc, ok := s.Read(uri.File(link))
	require.True(t, ok)
	assert.Equal(t, "host: x\n", doc.String())

	s.Close(uri.File(target))
	assert.Equal(t, 0, s.Len())
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewDocumentStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := protocol.DocumentURI(fmt.Sprintf("untitled:%d", i))
			s.Open(item(u, "a"))
			for v := int32(2); v < 50; v++ {
				s.Update(u, v, fmt.Sprint(v))
				_, _ = s.Read(u)
			}
			doc, ok := s.Read(u)
			assert.True(t, ok)
			assert.Equal(t, "49", doc.String())
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, s.Len())
}
