// Copyright 2022, Pulumi Corporation.  All rights reserved.

package lsp

import (
	"context"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"go.lsp.dev/protocol"
)

// Methods provides the interface to define methods for the LSP server.
//
// Only the methods listed here can be handled. Every other request is
// answered with an empty result.
type Methods struct {
	// A pointer back to the server
	server *Server

	InitializeFunc  func(client Client, params *protocol.InitializeParams) (result *protocol.InitializeResult, err error)
	InitializedFunc func(client Client, params *protocol.InitializedParams) (err error)
	ShutdownFunc    func(client Client) (err error)
	ExitFunc        func(client Client) (err error)
	DidOpenFunc     func(client Client, params *protocol.DidOpenTextDocumentParams) (err error)
	DidChangeFunc   func(client Client, params *protocol.DidChangeTextDocumentParams) (err error)
	DidCloseFunc    func(client Client, params *protocol.DidCloseTextDocumentParams) (err error)
	CompletionFunc  func(client Client, params *protocol.CompletionParams) (result *protocol.CompletionList, err error)

	// The characters that trigger a completion request, besides explicit
	// invocation.
	TriggerCharacters []string
}

// Guess what capabilities should be enabled from what functions are registered.
//
// This function will panic if a `InitializeFunc` is already set.
func (m Methods) DefaultInitializer(name, version string) *Methods {
	contract.Assertf(m.InitializeFunc == nil, "Won't override an already set initializer")
	m.InitializeFunc = func(client Client, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
		var completion *protocol.CompletionOptions
		if m.CompletionFunc != nil {
			completion = &protocol.CompletionOptions{
				TriggerCharacters: m.TriggerCharacters,
			}
		}
		return &protocol.InitializeResult{
			Capabilities: protocol.ServerCapabilities{
				TextDocumentSync: &protocol.TextDocumentSyncOptions{
					OpenClose: m.DidOpenFunc != nil || m.DidCloseFunc != nil,
					Change:    protocol.TextDocumentSyncKindFull,
				},
				CompletionProvider: completion,
			},
			ServerInfo: &protocol.ServerInfo{
				Name:    name,
				Version: version,
			},
		}, nil
	}
	return &m
}

func (m *methods) client(ctx context.Context) Client {
	return Client{
		inner: m.server.protocolClient(),
		ctx:   ctx,
	}
}

func (m *Methods) serve() *methods {
	return &methods{
		Methods:   m,
		unhandled: unhandled{logger: m.server.Logger},
	}
}

// validate the protocol.Server implementation.
var _ protocol.Server = (*methods)(nil)

// The actual implementer of the protocol.Server trait. We do this to prevent
// calling a method on `Methods`, and to keep auto-complete uncluttered.
type methods struct {
	*Methods
	unhandled
}

func (m *methods) warnUninitialized(name string) {
	m.server.Logger.Debugf("'%s' was called but no handler was provided", name)
}

func (m *methods) Initialize(ctx context.Context, params *protocol.InitializeParams) (result *protocol.InitializeResult, err error) {
	if m.InitializeFunc != nil {
		result, err = m.InitializeFunc(m.client(ctx), params)
	} else {
		m.warnUninitialized("initialize")
	}
	m.server.isInitialized.Store(true)
	return
}
func (m *methods) Initialized(ctx context.Context, params *protocol.InitializedParams) (err error) {
	if m.InitializedFunc != nil {
		err = m.InitializedFunc(m.client(ctx), params)
	} else {
		m.warnUninitialized("initialized")
	}
	return
}
func (m *methods) Shutdown(ctx context.Context) (err error) {
	if m.ShutdownFunc != nil {
		err = m.ShutdownFunc(m.client(ctx))
	} else {
		m.warnUninitialized("shutdown")
	}
	m.server.isShutdown.Store(true)
	return
}
func (m *methods) Exit(ctx context.Context) (err error) {
	if m.ExitFunc != nil {
		err = m.ExitFunc(m.client(ctx))
	} else {
		m.warnUninitialized("exit")
	}
	m.server.exit()
	return
}
func (m *methods) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) (err error) {
	if m.DidChangeFunc != nil {
		err = m.DidChangeFunc(m.client(ctx), params)
	} else {
		m.warnUninitialized("didChange")
	}
	return
}
func (m *methods) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) (err error) {
	if m.DidCloseFunc != nil {
		err = m.DidCloseFunc(m.client(ctx), params)
	} else {
		m.warnUninitialized("didClose")
	}
	return
}
func (m *methods) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) (err error) {
	if m.DidOpenFunc != nil {
		err = m.DidOpenFunc(m.client(ctx), params)
	} else {
		m.warnUninitialized("didOpen")
	}
	return
}
func (m *methods) Completion(ctx context.Context, params *protocol.CompletionParams) (result *protocol.CompletionList, err error) {
	if m.CompletionFunc != nil {
		result, err = m.CompletionFunc(m.client(ctx), params)
	} else {
		m.warnUninitialized("completion")
	}
	return
}
