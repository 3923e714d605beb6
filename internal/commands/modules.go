// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/prompts"
	"github.com/dacolabs/typegen/internal/registry"
	"github.com/dacolabs/typegen/internal/schema"
	"github.com/dacolabs/typegen/internal/session"
)

func newModulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List the schema modules of the project",
		Long: `List every schema document found in the schema directory with the number of
structures and enums it declares. Circular types that are written to their own
module are listed next to the module that declares them.`,
		Example: `  # List modules
  typegen modules`,
		Args:    cobra.NoArgs,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runModules(ctx)
		},
	}
	return cmd
}

func runModules(ctx *session.Context) error {
	if len(ctx.Documents) == 0 {
		return errors.Newf("no schema documents in %s", ctx.Config.Schemas)
	}

	prompts.PrintResult(moduleSummaries(ctx), "")
	return nil
}

func moduleSummaries(ctx *session.Context) []prompts.ResultField {
	reg := registry.New(ctx.Config.Circular)

	fields := make([]prompts.ResultField, 0, len(ctx.Documents))
	for _, doc := range ctx.Documents {
		counts := map[schema.Kind]int{}
		var isolated []string
		for _, e := range doc.Entries {
			counts[e.Kind()]++
			if reg.IsCircular(e.Key()) {
				isolated = append(isolated, registry.DedicatedModule(e.Key()))
			}
		}

		value := fmt.Sprintf("%d structures, %d enums", counts[schema.KindStructure], counts[schema.KindEnum]+counts[schema.KindAuditLogKeys])
		if len(isolated) > 0 {
			value += " (+ " + strings.Join(isolated, ", ") + ")"
		}
		fields = append(fields, prompts.ResultField{Label: doc.Module, Value: value})
	}
	return fields
}
