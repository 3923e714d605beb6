// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/schema"
)

// Overrides replaces the descriptor of individual fields, keyed by "entry.field".
type Overrides map[string]string

// Lookup returns the override for a field of entry, if any.
func (o Overrides) Lookup(entry, field string) (string, bool) {
	d, ok := o[entry+"."+field]
	return d, ok
}

// BuildFields resolves every field of a structure and returns the record
// fields with all required fields first and all optional fields after them,
// each group in schema order, plus the union of their dependencies.
func BuildFields(entry string, fields []schema.Field, overrides Overrides) ([]artifact.Field, artifact.Deps, error) {
	required := make([]artifact.Field, 0, len(fields))
	var deferred []artifact.Field
	deps := artifact.NewDeps()
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if !IsIdentifier(f.Name) {
			return nil, deps, errors.WithHintf(
				errors.InEntry(errors.SchemaInvariantf("field name %q is not a valid identifier", f.Name), entry),
				"add %q to skip in typegen.yaml", entry)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, deps, errors.InEntry(errors.SchemaInvariantf("duplicate field"), entry, f.Name)
		}
		seen[f.Name] = struct{}{}

		descriptor := f.Type
		if o, ok := overrides.Lookup(entry, f.Name); ok {
			descriptor = o
		}

		expr, fdeps, err := ResolveString(descriptor)
		if err != nil {
			return nil, deps, errors.InEntry(err, entry, f.Name)
		}

		if f.Nullable {
			expr = artifact.NullableOf(expr)
			fdeps = fdeps.With(artifact.FacilityContainers)
		}

		field := artifact.Field{Name: f.Name, Description: f.Description}
		if f.Optional {
			field.Type = artifact.UnsetOf(expr)
			field.Unset = true
			fdeps = fdeps.With(artifact.FacilityBase)
			deferred = append(deferred, field)
		} else {
			field.Type = expr
			required = append(required, field)
		}

		deps = deps.Merge(fdeps)
	}

	return append(required, deferred...), deps, nil
}
