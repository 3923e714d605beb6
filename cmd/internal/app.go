// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"strings"

	"github.com/dacolabs/typegen/internal/commands"
	"github.com/dacolabs/typegen/internal/emit"
	"github.com/dacolabs/typegen/internal/emit/jsonschema"
	"github.com/dacolabs/typegen/internal/emit/python"
	"github.com/dacolabs/typegen/internal/errors"
)

// RegisterEmitters returns every output format.
func RegisterEmitters() emit.Register {
	emitters := make(emit.Register)
	emitters.Add(&python.Emitter{})
	emitters.Add(&jsonschema.Emitter{})
	return emitters
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(RegisterEmitters(), getenv)
	rootCmd.SilenceErrors = true
	return rootCmd.ExecuteContext(ctx)
}

// Describe renders err with its details and hints on separate lines.
func Describe(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())
	for _, d := range errors.GetAllDetails(err) {
		b.WriteString("\n  detail: " + d)
	}
	for _, h := range errors.GetAllHints(err) {
		b.WriteString("\n  hint: " + h)
	}
	return b.String()
}
