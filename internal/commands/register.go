// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/typegen/internal/emit"
	"github.com/dacolabs/typegen/internal/logger"
)

type rootOptions struct {
	logLevel string
	logJSON  bool
}

// NewRootCmd creates and returns the root command for the CLI. getenv is
// consulted for TYPEGEN_LOG_LEVEL when --log-level is not given.
func NewRootCmd(emitters emit.Register, getenv func(string) string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "typegen",
		Short: "Generate typed modules from API schema documents",
		Long: `typegen turns a directory of API schema documents (structures, enums and
audit-log change keys) into one typed module per document.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger(cmd, opts, getenv)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logger.EnvLevel+" or warn")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(newInitCmd(emitters))
	rootCmd.AddCommand(newGenerateCmd(emitters))
	rootCmd.AddCommand(newModulesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func initLogger(cmd *cobra.Command, opts *rootOptions, getenv func(string) string) error {
	level := opts.logLevel
	if level == "" && getenv != nil {
		level = getenv(logger.EnvLevel)
	}

	return logger.Initialize(logger.Options{
		Level:  level,
		JSON:   opts.logJSON,
		Output: cmd.ErrOrStderr(),
	})
}
