// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/typegen/internal/config"
	"github.com/dacolabs/typegen/internal/emit"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/prompts"
)

type initOptions struct {
	answers        prompts.InitAnswers
	nonInteractive bool
}

func newInitCmd(emitters emit.Register) *cobra.Command {
	opts := &initOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new typegen project",
		Long: `Initialize a new typegen project with a typegen.yaml configuration file.
The schema directory is created when it does not exist.`,
		Example: `  # Interactive mode
  typegen init

  # Non-interactive
  typegen init --schemas api --output gen --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, "failed to get current directory")
			}
			return runInit(cwd, emitters, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.answers.Schemas, "schemas", "s", defaults.Schemas, "Schema directory")
	cmd.Flags().StringVarP(&opts.answers.Output, "output", "o", defaults.Output, "Output directory")
	cmd.Flags().StringVarP(&opts.answers.Format, "format", "f", defaults.Format, "Output format")
	cmd.Flags().StringVar(&opts.answers.BaseModule, "base-module", defaults.BaseModule, "Name of the shared base module")
	cmd.Flags().BoolVar(&opts.answers.EmitBase, "emit-base", defaults.EmitBase, "Write the base module with the generated modules")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(dir string, emitters emit.Register, opts *initOptions) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("typegen.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.answers, nil, emitters.Available()); err != nil {
			return err
		}
	}

	if _, err := emitters.Get(opts.answers.Format); err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Schemas = opts.answers.Schemas
	cfg.Output = opts.answers.Output
	cfg.Format = opts.answers.Format
	cfg.BaseModule = opts.answers.BaseModule
	cfg.EmitBase = opts.answers.EmitBase

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	schemaDir := cfg.Schemas
	if !filepath.IsAbs(schemaDir) {
		schemaDir = filepath.Join(dir, schemaDir)
	}
	if err := os.MkdirAll(schemaDir, 0o750); err != nil {
		return errors.Wrap(err, "failed to create schema directory")
	}

	if err := cfg.Save(cfgPath); err != nil {
		return errors.Wrap(err, "config file couldn't be saved")
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: config.FileName},
		{Label: "Schemas", Value: cfg.Schemas},
		{Label: "Output", Value: cfg.Output},
		{Label: "Format", Value: cfg.Format},
	}, "Initialization completed")
	return nil
}
