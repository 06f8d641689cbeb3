// Copyright 2022, Pulumi Corporation.  All rights reserved.

package lsp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

func testMethods() *Methods {
	m := Methods{
		CompletionFunc: func(client Client, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
			return &protocol.CompletionList{}, nil
		},
		TriggerCharacters: []string{":"},
	}
	return m.DefaultInitializer("test-server", "0.1.0")
}

func TestDefaultInitializer(t *testing.T) {
	m := testMethods()
	result, err := m.InitializeFunc(Client{}, &protocol.InitializeParams{})
	require.NoError(t, err)
	require.NotNil(t, result.Capabilities.CompletionProvider)
	assert.Equal(t, []string{":"}, result.Capabilities.CompletionProvider.TriggerCharacters)
	sync, ok := result.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, sync.Change)
	assert.Equal(t, "test-server", result.ServerInfo.Name)
}

func TestDefaultInitializerRefusesOverride(t *testing.T) {
	m := testMethods()
	assert.Panics(t, func() { m.DefaultInitializer("again", "0.1.0") })
}

func TestExitAfterShutdown(t *testing.T) {
	s := NewServer(testMethods(), nil)
	s.Logger = zap.NewNop().Sugar()
	s.methods.server = s
	m := s.methods.serve()
	ctx := context.Background()

	_, err := m.Initialize(ctx, &protocol.InitializeParams{})
	require.NoError(t, err)
	assert.True(t, s.IsInitialized())

	// Requests without a handler get an empty answer.
	hover, err := m.Hover(ctx, &protocol.HoverParams{})
	assert.NoError(t, err)
	assert.Nil(t, hover)

	require.NoError(t, m.Shutdown(ctx))
	require.NoError(t, m.Exit(ctx))
	// A repeated exit does not close the channel twice.
	require.NoError(t, m.Exit(ctx))

	select {
	case <-s.exited:
	default:
		t.Fatal("exit did not stop the server")
	}
	assert.True(t, s.isShutdown.Load())
}

func TestRunServesRequests(t *testing.T) {
	serverSide, clientSide := net.Pipe()
	s := NewServer(testMethods(), serverSide)
	s.Logger = zap.NewNop().Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(clientSide))
	conn.Go(ctx, jsonrpc2.MethodNotFoundHandler)
	defer conn.Close()

	var result protocol.InitializeResult
	_, err := conn.Call(ctx, protocol.MethodInitialize, &protocol.InitializeParams{}, &result)
	require.NoError(t, err)
	require.NotNil(t, result.ServerInfo)
	assert.Equal(t, "test-server", result.ServerInfo.Name)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
