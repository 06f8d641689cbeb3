// Copyright 2022, Pulumi Corporation.  All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/swaggerls/swagger-lsp/sdk/config"
	"github.com/swaggerls/swagger-lsp/sdk/lsp"
	"github.com/swaggerls/swagger-lsp/sdk/swagger"
	"github.com/swaggerls/swagger-lsp/sdk/version"
)

func main() {
	defer panicHandler()
	if err := newLSPCommand().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		// We ignore the error, since there is nothing to do with it
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	port       int
	logLevel   string
	logFile    string
}

func newLSPCommand() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           swagger.Name,
		Short:         "A LSP for Swagger 2.0 YAML documents",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write logs to this file instead of stderr")
	cmd.Flags().IntVar(&flags.port, "port", 0, "dial this local TCP port instead of serving over stdio")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompleteCmd(&flags))
	return cmd
}

// loadConfig layers the flags the user set over the loaded configuration.
func loadConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Port = flags.port
	}
	return cfg, cfg.Validate()
}

func serve(ctx context.Context, cfg config.Config) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() {
		// Sync on stderr can fail harmlessly.
		if syncErr := logger.Sync(); syncErr != nil && cfg.LogFile != "" {
			err = multierr.Append(err, syncErr)
		}
	}()
	sugar := logger.Sugar()

	var conn io.ReadWriteCloser = &stdio{false}
	if cfg.Port > 0 {
		c, err := net.Dial("tcp", fmt.Sprintf(":%d", cfg.Port))
		if err != nil {
			return fmt.Errorf("dialing port %d: %w", cfg.Port, err)
		}
		conn = c
	}

	docs := lsp.NewDocumentStore(sugar.Named("documents"))
	server := lsp.NewServer(swagger.Methods(docs, sugar, cfg), conn)
	server.Logger = sugar
	sugar.Infow("Starting server", "version", version.Version, "port", cfg.Port)
	if err := server.Run(ctx); err != nil {
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			sugar.Warn("Client exited without a shutdown request")
		}
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server's version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := version.Semver()
			if err != nil {
				return fmt.Errorf("malformed build version %q: %w", version.Version, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v\n", v)
			return err
		},
	}
}

func panicHandler() {
	if panicPayload := recover(); panicPayload != nil {
		stack := string(debug.Stack())
		fmt.Fprintln(os.Stderr, "================================================================================")
		fmt.Fprintln(os.Stderr, "swagger-lsp encountered a fatal error. This is a bug!")
		fmt.Fprintln(os.Stderr, "Please provide all of the below text in your report.")
		fmt.Fprintln(os.Stderr, "================================================================================")
		fmt.Fprintf(os.Stderr, "swagger-lsp Version:  %s\n", version.Version)
		fmt.Fprintf(os.Stderr, "Go Version:           %s\n", runtime.Version())
		fmt.Fprintf(os.Stderr, "Go Compiler:          %s\n", runtime.Compiler)
		fmt.Fprintf(os.Stderr, "Architecture:         %s\n", runtime.GOARCH)
		fmt.Fprintf(os.Stderr, "Operating System:     %s\n", runtime.GOOS)
		fmt.Fprintf(os.Stderr, "Panic:                %s\n\n", panicPayload)
		fmt.Fprintln(os.Stderr, stack)
		os.Exit(1)
	}
}

// An io.ReadWriteCloser, whose value indicates if the closer is closed.
type stdio struct{ bool }

func (s *stdio) Read(p []byte) (n int, err error) {
	if s.bool {
		return 0, io.EOF
	}
	return os.Stdin.Read(p)
}

func (s *stdio) Write(p []byte) (n int, err error) {
	if s.bool {
		return 0, io.EOF
	}
	return os.Stdout.Write(p)
}

func (s *stdio) Close() error {
	s.bool = true
	return nil
}
