// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate resolves schema type descriptors into language-neutral
// type expressions and builds record and enum declarations from schema entries.
package translate

import (
	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/schema"
)

// AuditLogChangeKeyName is the declaration synthesized from the audit-log change-key entry.
const AuditLogChangeKeyName = "AuditLogChangeKey"

// Resolve maps a parsed descriptor to a type expression and the facilities
// and references it depends on. It is pure and total over parsed descriptors.
func Resolve(d Descriptor) (artifact.Expr, artifact.Deps) {
	switch d.Kind {
	case DescPrimitive:
		expr := artifact.Prim(d.Primitive)
		switch d.Primitive {
		case artifact.PrimTimestamp:
			return expr, artifact.NewDeps(artifact.FacilityDateTime)
		case artifact.PrimSnowflake:
			return expr, artifact.NewDeps(artifact.FacilityBase)
		default:
			return expr, artifact.NewDeps()
		}

	case DescOpaqueMap:
		return artifact.OpaqueMap(), artifact.NewDeps(artifact.FacilityContainers)

	case DescSizePair:
		return artifact.TupleOf(artifact.Prim(artifact.PrimInteger), artifact.Prim(artifact.PrimInteger)),
			artifact.NewDeps(artifact.FacilityContainers)

	case DescArray:
		elem, deps := Resolve(d.Elems[0])
		return artifact.SequenceOf(elem), deps.With(artifact.FacilityContainers)

	case DescUnion:
		left, ldeps := Resolve(d.Elems[0])
		right, rdeps := Resolve(d.Elems[1])
		return artifact.UnionOf(left, right), ldeps.Merge(rdeps).With(artifact.FacilityContainers)

	case DescReference:
		name := DeclName(d.Raw)
		return artifact.Ref(name), artifact.NewDeps().WithRef(artifact.TypeRef{Key: d.Raw, Name: name})

	case DescAuditLogKey:
		return artifact.Ref(AuditLogChangeKeyName),
			artifact.NewDeps().WithRef(artifact.TypeRef{Key: schema.AuditLogChangeKey, Name: AuditLogChangeKeyName})

	default:
		panic("translate: unresolvable descriptor kind")
	}
}

// ResolveString parses and resolves a descriptor string.
func ResolveString(s string) (artifact.Expr, artifact.Deps, error) {
	d, err := ParseDescriptor(s)
	if err != nil {
		return artifact.Expr{}, artifact.Deps{}, err
	}
	expr, deps := Resolve(d)
	return expr, deps, nil
}
