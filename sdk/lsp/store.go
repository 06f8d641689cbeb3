// Copyright 2022, Pulumi Corporation.  All rights reserved.

package lsp

import (
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"
)

// DocumentStore holds the documents the client has open.
//
// Two URIs name the same document when they resolve to the same file on disk,
// so a file opened through a symlink is found under its target's URI too.
// Non-file URIs are compared as strings.
type DocumentStore struct {
	mu     sync.RWMutex
	docs   map[string]Document
	logger *zap.SugaredLogger
}

func NewDocumentStore(logger *zap.SugaredLogger) *DocumentStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &DocumentStore{
		docs:   map[string]Document{},
		logger: logger,
	}
}

// documentKey returns the file path of a file URI, or the URI itself.
func documentKey(u protocol.DocumentURI) string {
	parsed, err := url.ParseRequestURI(string(u))
	if err != nil || parsed.Scheme != uri.FileScheme {
		return string(u)
	}
	return filepath.FromSlash(parsed.Path)
}

// lookup finds the key of the open document u names. The caller must hold
// s.mu.
func (s *DocumentStore) lookup(u protocol.DocumentURI) (string, bool) {
	key := documentKey(u)
	if _, ok := s.docs[key]; ok {
		return key, true
	}
	target, err := os.Stat(key)
	if err != nil {
		return key, false
	}
	for other := range s.docs {
		info, err := os.Stat(other)
		if err == nil && os.SameFile(target, info) {
			return other, true
		}
	}
	return key, false
}

// IsOpen reports whether the document u names is open.
func (s *DocumentStore) IsOpen(u protocol.DocumentURI) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.lookup(u)
	return ok
}

// Open starts tracking a document. Opening a document that is already open
// does nothing.
func (s *DocumentStore) Open(item protocol.TextDocumentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.lookup(item.URI)
	if ok {
		s.logger.Warnf("Document %s is already open", item.URI)
		return
	}
	s.docs[key] = NewDocument(item)
	s.logger.Debugf("Opened %s (version %d)", item.URI, item.Version)
}

// Update replaces the content of an open document. It reports false, and
// does nothing, if the document is not open.
func (s *DocumentStore) Update(u protocol.DocumentURI, version int32, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.lookup(u)
	if !ok {
		s.logger.Errorf("Cannot update %s: document is not open", u)
		return false
	}
	s.docs[key] = s.docs[key].WithText(version, text)
	return true
}

// Close stops tracking a document.
func (s *DocumentStore) Close(u protocol.DocumentURI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.lookup(u)
	if !ok {
		s.logger.Warnf("Cannot close %s: document is not open", u)
		return
	}
	delete(s.docs, key)
	s.logger.Debugf("Closed %s", u)
}

// Read returns the current snapshot of an open document.
func (s *DocumentStore) Read(u protocol.DocumentURI) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.lookup(u)
	if !ok {
		return Document{}, false
	}
	return s.docs[key], true
}

// Len returns the number of open documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
