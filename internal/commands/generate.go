// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dacolabs/typegen/internal/config"
	"github.com/dacolabs/typegen/internal/emit"
	"github.com/dacolabs/typegen/internal/emit/python"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/generate"
	"github.com/dacolabs/typegen/internal/prompts"
	"github.com/dacolabs/typegen/internal/session"
)

type generateOptions struct {
	modules        []string
	all            bool
	format         string
	output         string
	dryRun         bool
	workers        int
	nonInteractive bool
}

func newGenerateCmd(emitters emit.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate typed modules from the schema documents",
		Long: fmt.Sprintf(`Generate one module per schema document, plus one module per circular type.

Every document of the project is generated and linked, so references across
modules always resolve; --module only limits which files are written. Nothing
is written when any document fails.

Available formats: %s`, strings.Join(emitters.Available(), ", ")),
		Example: `  # Interactive mode
  typegen generate

  # Generate everything
  typegen generate --all

  # Write only two modules as JSON Schema
  typegen generate --module user,guild --format jsonschema

  # Show what would be written
  typegen generate --all --dry-run`,
		Args:    cobra.NoArgs,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, ctx, emitters, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.modules, "module", "m", nil, "Module(s) to write, comma-separated")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Write all modules")
	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Output format (%s); defaults to the config format", strings.Join(emitters.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory; defaults to the config output")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Generate without writing files")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Documents processed concurrently (0 uses all CPUs)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Never prompt; generate all modules unless --module is given")

	return cmd
}

func runGenerate(cmd *cobra.Command, ctx *session.Context, emitters emit.Register, opts *generateOptions) error {
	if len(ctx.Documents) == 0 {
		return errors.Newf("no schema documents in %s", ctx.Config.Schemas)
	}

	if opts.all && len(opts.modules) > 0 {
		return errors.New("--all and --module are mutually exclusive")
	}

	var selected []string
	for _, m := range opts.modules {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if ctx.Document(m) == nil {
			return errors.Newf("module %q not found in %s", m, ctx.Config.Schemas)
		}
		selected = append(selected, m)
	}

	format := opts.format
	if !cmd.Flags().Changed("format") {
		format = ctx.Config.Format
	}

	if !opts.all && len(selected) == 0 {
		if opts.nonInteractive || !isInteractive() {
			selected = ctx.Modules()
		} else if err := prompts.RunGenerateForm(&selected, &format, ctx.Modules(), emitters.Available()); err != nil {
			return err
		}
	}

	e, err := emitters.Get(format)
	if err != nil {
		return errors.WithHintf(errors.Newf("unsupported format %q", format),
			"available formats: %s", strings.Join(emitters.Available(), ", "))
	}
	e = configureEmitter(e, ctx.Config)

	output := opts.output
	if output == "" {
		output = ctx.Path(ctx.Config.Output)
	}

	res, err := generate.Run(cmd.Context(), ctx.Documents, generate.Options{
		Circular:  ctx.Config.Circular,
		Skip:      ctx.Config.Skip,
		Overrides: ctx.Config.Overrides,
	}, opts.workers)
	if err != nil {
		return err
	}

	var sources []string
	if !opts.all {
		sources = selected
	}
	files, err := generate.Render(res, e, sources)
	if err != nil {
		return err
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}

	if !opts.dryRun {
		if err := generate.WriteAll(generate.DirSink{Dir: output}, files); err != nil {
			return err
		}
	}

	msg := fmt.Sprintf("Generated %d file(s)", len(files))
	if opts.dryRun {
		msg = fmt.Sprintf("Dry run: %d file(s) not written", len(files))
	}
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Format", Value: e.Name()},
		{Label: "Modules", Value: strconv.Itoa(len(res.Registry.Modules()))},
		{Label: "Output", Value: filepath.Clean(output)},
		{Label: "Files", Value: strings.Join(names, ", ")},
	}, msg)
	return nil
}

// configureEmitter applies project settings to emitters that have any.
func configureEmitter(e emit.Emitter, cfg *config.Config) emit.Emitter {
	if p, ok := e.(*python.Emitter); ok {
		c := *p
		c.BaseModule = cfg.BaseModule
		c.EmitBase = cfg.EmitBase
		return &c
	}
	return e
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // file descriptors fit in int
}
