// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package artifact

import "strings"

// Primitive is a terminal schema type.
type Primitive int

const (
	PrimString Primitive = iota + 1
	PrimInteger
	PrimBoolean
	PrimNull
	PrimAny
	PrimTimestamp
	PrimSnowflake
)

var primitiveNames = map[Primitive]string{
	PrimString:    "string",
	PrimInteger:   "integer",
	PrimBoolean:   "boolean",
	PrimNull:      "null",
	PrimAny:       "any",
	PrimTimestamp: "timestamp",
	PrimSnowflake: "snowflake",
}

func (p Primitive) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return "unknown"
}

// ExprKind discriminates Expr nodes.
type ExprKind int

const (
	ExprPrimitive ExprKind = iota + 1
	ExprReference          // named structure or enum
	ExprSequence           // ordered sequence of Elems[0]
	ExprUnion              // tagged union of Elems[0] and Elems[1]
	ExprTuple              // fixed tuple of Elems
	ExprMap                // opaque string-keyed map of any
	ExprNullable           // value may be null
	ExprUnset              // field may be absent; carries the unset sentinel default
)

// Expr is a language-neutral type expression. Emitters render it through
// their own type vocabulary.
type Expr struct {
	Kind      ExprKind
	Primitive Primitive // ExprPrimitive
	Name      string    // ExprReference
	Elems     []Expr
}

// Prim returns a primitive expression.
func Prim(p Primitive) Expr { return Expr{Kind: ExprPrimitive, Primitive: p} }

// Ref returns a reference to a named declaration.
func Ref(name string) Expr { return Expr{Kind: ExprReference, Name: name} }

// SequenceOf returns an ordered sequence of elem.
func SequenceOf(elem Expr) Expr { return Expr{Kind: ExprSequence, Elems: []Expr{elem}} }

// UnionOf returns a binary tagged union.
func UnionOf(left, right Expr) Expr { return Expr{Kind: ExprUnion, Elems: []Expr{left, right}} }

// TupleOf returns a fixed-size tuple.
func TupleOf(elems ...Expr) Expr { return Expr{Kind: ExprTuple, Elems: elems} }

// OpaqueMap returns a string-keyed map of any value.
func OpaqueMap() Expr { return Expr{Kind: ExprMap} }

// NullableOf wraps inner in an optional-value wrapper.
func NullableOf(inner Expr) Expr { return Expr{Kind: ExprNullable, Elems: []Expr{inner}} }

// UnsetOf wraps inner in a may-be-unset wrapper.
func UnsetOf(inner Expr) Expr { return Expr{Kind: ExprUnset, Elems: []Expr{inner}} }

// String renders the expression in a neutral notation, e.g. "unset<nullable<string>>".
func (e Expr) String() string {
	switch e.Kind {
	case ExprPrimitive:
		return e.Primitive.String()
	case ExprReference:
		return e.Name
	case ExprMap:
		return "map"
	case ExprSequence, ExprUnion, ExprTuple, ExprNullable, ExprUnset:
		elems := make([]string, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = el.String()
		}
		return e.kindName() + "<" + strings.Join(elems, ", ") + ">"
	default:
		return "invalid"
	}
}

func (e Expr) kindName() string {
	switch e.Kind {
	case ExprSequence:
		return "sequence"
	case ExprUnion:
		return "union"
	case ExprTuple:
		return "tuple"
	case ExprNullable:
		return "nullable"
	case ExprUnset:
		return "unset"
	default:
		return ""
	}
}

// References returns the names of all declarations the expression refers to, in order.
func (e Expr) References() []string {
	var names []string
	var walk func(Expr)
	walk = func(x Expr) {
		if x.Kind == ExprReference {
			names = append(names, x.Name)
		}
		for _, el := range x.Elems {
			walk(el)
		}
	}
	walk(e)
	return names
}
