// Copyright 2022, Pulumi Corporation.  All rights reserved.

// The lsp package implements a convenience wrapper around the
// go.lsp.dev/protocol package. It handles setting up a server that replies to
// only some lsp requests, as well as providing other helpful LSP intrinsics.

package lsp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrExitWithoutShutdown is returned by Run when the client sent `exit`
// without a preceding `shutdown`.
var ErrExitWithoutShutdown = errors.New("exit received before shutdown")

// A Server combines a set of LSP methods with the infrastructure needed to
// fullfill the server side of the LSP contract.
type Server struct {
	methods       *Methods
	conn          io.ReadWriteCloser
	isInitialized atomic.Bool
	isShutdown    atomic.Bool
	exited        chan struct{}
	exitOnce      sync.Once
	client        atomic.Value

	// The logger used by the server.
	Logger *zap.SugaredLogger
}

// Create a new server backed by `Methods`. The server reads requests and writes
// responses via `conn`.
func NewServer(methods *Methods, conn io.ReadWriteCloser) *Server {
	return &Server{
		methods: methods,
		conn:    conn,
		exited:  make(chan struct{}),
	}
}

// Synchronously run the server. The server is rooted in the given context,
// which can be used to cancel the server.
//
// Run returns once the client sends `exit`, the connection is closed or ctx is
// canceled.
func (s *Server) Run(ctx context.Context) error {
	if s.Logger == nil {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		s.Logger = logger.Sugar()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	conn := s.run(ctx)

	var err error
	select {
	case <-s.exited:
		if !s.isShutdown.Load() {
			err = ErrExitWithoutShutdown
		}
	case <-conn.Done():
		if connErr := conn.Err(); connErr != nil && !errors.Is(connErr, io.EOF) {
			err = fmt.Errorf("connection closed: %w", connErr)
		}
		return err
	case <-ctx.Done():
	}
	return multierr.Append(err, conn.Close())
}

// Actually kick off the server
func (s *Server) run(ctx context.Context) jsonrpc2.Conn {
	s.methods.server = s
	stream := jsonrpc2.NewStream(s.conn)
	_, conn, client := protocol.NewServer(ctx, s.methods.serve(), stream, s.Logger.Desugar())
	s.client.Store(client)
	return conn
}

// IsInitialized reports whether the client has sent `initialize`.
func (s *Server) IsInitialized() bool {
	return s.isInitialized.Load()
}

func (s *Server) exit() {
	s.exitOnce.Do(func() { close(s.exited) })
}

func (s *Server) protocolClient() protocol.Client {
	c, _ := s.client.Load().(protocol.Client)
	return c
}
