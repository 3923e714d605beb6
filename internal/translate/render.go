// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/typegen/internal/artifact"

// TypeRenderer maps type expressions to target-language type strings.
// Each emitter implements this interface to control how expressions are spelled.
type TypeRenderer interface {
	// PrimitiveType spells a primitive.
	PrimitiveType(p artifact.Primitive) string

	// ReferenceType spells a reference to a named declaration.
	ReferenceType(name string) string

	// SequenceType wraps an element type in an ordered sequence.
	SequenceType(elem string) string

	// UnionType spells a binary tagged union.
	UnionType(left, right string) string

	// TupleType spells a fixed-size tuple.
	TupleType(elems []string) string

	// MapType spells the opaque string-keyed map.
	MapType() string

	// NullableType wraps a type whose value may be null.
	NullableType(inner string) string

	// UnsetType wraps a type whose field may be absent.
	UnsetType(inner string) string
}

// Render spells e using r, innermost first.
func Render(e artifact.Expr, r TypeRenderer) string {
	switch e.Kind {
	case artifact.ExprPrimitive:
		return r.PrimitiveType(e.Primitive)
	case artifact.ExprReference:
		return r.ReferenceType(e.Name)
	case artifact.ExprSequence:
		return r.SequenceType(Render(e.Elems[0], r))
	case artifact.ExprUnion:
		return r.UnionType(Render(e.Elems[0], r), Render(e.Elems[1], r))
	case artifact.ExprTuple:
		elems := make([]string, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = Render(el, r)
		}
		return r.TupleType(elems)
	case artifact.ExprMap:
		return r.MapType()
	case artifact.ExprNullable:
		return r.NullableType(Render(e.Elems[0], r))
	case artifact.ExprUnset:
		return r.UnsetType(Render(e.Elems[0], r))
	default:
		return ""
	}
}
