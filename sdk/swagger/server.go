// Copyright 2022, Pulumi Corporation.  All rights reserved.

// Package swagger provides field completion for Swagger 2.0 documents
// written in YAML.
package swagger

import (
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/swaggerls/swagger-lsp/sdk/config"
	"github.com/swaggerls/swagger-lsp/sdk/lsp"
	"github.com/swaggerls/swagger-lsp/sdk/openapi"
	"github.com/swaggerls/swagger-lsp/sdk/version"
)

// Name is the name the server reports to clients.
const Name = "swagger-lsp"

type server struct {
	docs   *lsp.DocumentStore
	logger *zap.SugaredLogger
}

// Methods returns the LSP handlers of the server. Documents are kept in docs.
func Methods(docs *lsp.DocumentStore, logger *zap.SugaredLogger, cfg config.Config) *lsp.Methods {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	server := &server{
		docs:   docs,
		logger: logger,
	}
	return lsp.Methods{
		DidOpenFunc:       server.didOpen,
		DidCloseFunc:      server.didClose,
		DidChangeFunc:     server.didChange,
		CompletionFunc:    server.completion,
		TriggerCharacters: cfg.TriggerCharacters,
	}.DefaultInitializer(Name, version.Version)
}

func (s *server) didOpen(client lsp.Client, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.docs.Open(params.TextDocument)
	doc, ok := s.docs.Read(uri)
	if !ok {
		return client.LogWarningf("Failed to open file %s", uri)
	}
	err := client.LogDebugf("Opened file %s (%s, version %d)", uri, doc.LanguageID(), doc.Version())
	s.checkVersion(client, uri, doc.String())
	return err
}

func (s *server) didClose(client lsp.Client, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	err := client.LogDebugf("Closing file %s", uri)
	s.docs.Close(uri)
	return err
}

func (s *server) didChange(client lsp.Client, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// With full synchronization every change holds the whole document.
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	if !s.docs.Update(uri, params.TextDocument.Version, text) {
		return client.LogWarningf("Attempted to change unopened file %s", uri)
	}
	return nil
}

func (s *server) completion(client lsp.Client, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	uri := params.TextDocument.URI
	empty := &protocol.CompletionList{Items: []protocol.CompletionItem{}}
	doc, ok := s.docs.Read(uri)
	if !ok {
		s.logger.Warnf("Completion requested for unopened file %s", uri)
		client.LogWarningf("Could not find an opened document %s", uri)
		return empty, nil
	}

	pos := params.Position
	if _, err := doc.Line(int(pos.Line)); err != nil {
		s.logger.Debugf("No completion for %s (version %d): %v", uri, doc.Version(), err)
		return empty, nil
	}

	a, err := Analyze(client.Context(), doc.String(), pos)
	if err != nil {
		s.logger.Debugf("No completion for %s (version %d) at %d:%d: %v",
			uri, doc.Version(), pos.Line, pos.Character, err)
		return empty, nil
	}
	for _, w := range a.Warnings {
		s.logger.Debugf("Completing %s: %v", uri, w)
	}
	s.logger.Debugf("Completing %s (version %d) at %s: %d candidates",
		uri, doc.Version(), a.Path, len(a.Fields))
	return &protocol.CompletionList{Items: completionItems(a.Fields)}, nil
}

// checkVersion tells the user when a document declares a version the model
// does not describe. Completion still runs.
func (s *server) checkVersion(client lsp.Client, uri protocol.DocumentURI, text string) {
	doc, _ := openapi.Decode(text)
	if doc == nil || doc.Swagger == "" {
		return
	}
	if err := openapi.CheckVersion(doc.Swagger); err != nil {
		s.logger.Warnf("%s: %v", uri, err)
		if err := client.ShowMessage(&protocol.ShowMessageParams{
			Type:    protocol.MessageTypeWarning,
			Message: err.Error(),
		}); err != nil {
			s.logger.Errorf("Failed to show message: %v", err)
		}
	}
}
