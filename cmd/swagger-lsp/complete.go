// Copyright 2022, Pulumi Corporation.  All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.lsp.dev/protocol"

	"github.com/swaggerls/swagger-lsp/sdk/swagger"
)

type completeFlags struct {
	line      uint32
	character uint32
	json      bool
}

type completeOutput struct {
	Path     []string          `json:"path"`
	Fields   []completeField   `json:"fields"`
	Warnings []string          `json:"warnings,omitempty"`
	Cursor   protocol.Position `json:"cursor"`
}

type completeField struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// newCompleteCmd runs a single completion request against a file, without a
// client.
func newCompleteCmd(root *rootFlags) *cobra.Command {
	var flags completeFlags
	cmd := &cobra.Command{
		Use:   "complete FILE",
		Short: "Print the fields that can be written at a position in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *root)
			if err != nil {
				return err
			}
			logger, err := cfg.Logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			a, err := swagger.Analyze(cmd.Context(), string(text), protocol.Position{
				Line:      flags.line,
				Character: flags.character,
			})
			if err != nil {
				return err
			}
			for _, w := range a.Warnings {
				logger.Sugar().Warnf("%s: %v", args[0], w)
			}
			return printCompletion(cmd.OutOrStdout(), a, flags.json)
		},
	}
	cmd.Flags().Uint32Var(&flags.line, "line", 0, "zero-based line of the cursor")
	cmd.Flags().Uint32Var(&flags.character, "character", 0, "zero-based character of the cursor")
	cmd.Flags().BoolVar(&flags.json, "json", false, "print the result as JSON")
	return cmd
}

func printCompletion(w io.Writer, a *swagger.Analysis, asJSON bool) error {
	if !asJSON {
		for _, f := range a.Fields {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Detail); err != nil {
				return err
			}
		}
		return nil
	}

	out := completeOutput{
		Path:   a.Path,
		Fields: []completeField{},
		Cursor: a.Cursor,
	}
	for _, f := range a.Fields {
		out.Fields = append(out.Fields, completeField{
			Name:   f.Name,
			Kind:   f.Kind.String(),
			Detail: f.Detail,
		})
	}
	for _, warning := range a.Warnings {
		out.Warnings = append(out.Warnings, warning.Error())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
