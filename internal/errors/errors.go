// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package errors provides error handling for typegen.
//
// It re-exports github.com/cockroachdb/errors so call sites get stack traces,
// wrapping and user-facing hints from a single import, and it defines the
// generator's error taxonomy. Every taxonomy error is fatal: a schema defect
// invalidates the whole batch and no artifact is written.
//
//	if errors.Is(err, errors.ErrUnsupportedType) {
//	    // schema authoring defect
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithMessage = crdb.WithMessage
)

// User-facing messages and details
var (
	WithHint       = crdb.WithHint
	WithHintf      = crdb.WithHintf
	WithDetail     = crdb.WithDetail
	WithDetailf    = crdb.WithDetailf
	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenDetails = crdb.FlattenDetails
)

// Error inspection
var (
	Is    = crdb.Is
	IsAny = crdb.IsAny
	As    = crdb.As
	Mark  = crdb.Mark
)

var (
	// ErrUnsupportedType indicates a type descriptor outside the supported grammar.
	ErrUnsupportedType = New("unsupported type")

	// ErrModuleNotFound indicates a reference that no artifact declares.
	ErrModuleNotFound = New("module not found")

	// ErrAmbiguousModule indicates a reference declared by more than one artifact.
	ErrAmbiguousModule = New("ambiguous module")

	// ErrSchemaInvariant indicates a schema entry with an unexpected shape.
	ErrSchemaInvariant = New("schema invariant violated")
)

// UnsupportedType wraps ErrUnsupportedType for the given descriptor.
func UnsupportedType(descriptor string) error {
	return WithHint(
		Wrapf(ErrUnsupportedType, "%q", descriptor),
		"map the descriptor in the type resolver or add an override in typegen.yaml",
	)
}

// SchemaInvariantf wraps ErrSchemaInvariant with a formatted message.
func SchemaInvariantf(format string, args ...any) error {
	return Wrapf(ErrSchemaInvariant, format, args...)
}

// InEntry annotates err with the schema entry (and optional field) it was raised for.
func InEntry(err error, entry string, field ...string) error {
	if err == nil {
		return nil
	}
	if len(field) > 0 && field[0] != "" {
		return Wrapf(err, "%s.%s", entry, field[0])
	}
	return Wrapf(err, "%s", entry)
}
