// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"

	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/schema"
)

// DescriptorKind discriminates parsed type descriptors.
type DescriptorKind int

const (
	DescPrimitive   DescriptorKind = iota + 1
	DescOpaqueMap                  // "map" and the irregular structural aliases
	DescSizePair                   // fixed pair of integers
	DescArray                      // array<T>
	DescUnion                      // A | B
	DescReference                  // <name>_structure, <name>_enum
	DescAuditLogKey                // the synthesized audit-log change-key enum
)

// Descriptor is a parsed schema type descriptor.
type Descriptor struct {
	Kind      DescriptorKind
	Raw       string
	Primitive artifact.Primitive // DescPrimitive
	Elems     []Descriptor       // DescArray: 1, DescUnion: 2
}

// Irregular structures that resolve to an opaque map instead of a reference;
// their upstream shape is undocumented.
var opaqueAliases = map[string]struct{}{
	"map":                               {},
	"partial_voice_state_structure":     {},
	"partial_presence_update_structure": {},
	"unavailable_guild_structure":       {},
}

// sizePairAlias is an irregular name for a (current_size, max_size) pair.
const sizePairAlias = "two_integers_(current_size,_max_size)_structure"

var primitives = map[string]artifact.Primitive{
	"string":    artifact.PrimString,
	"integer":   artifact.PrimInteger,
	"boolean":   artifact.PrimBoolean,
	"null":      artifact.PrimNull,
	"any":       artifact.PrimAny,
	"timestamp": artifact.PrimTimestamp,
	"snowflake": artifact.PrimSnowflake,
}

// ParseDescriptor parses a descriptor string. Anything outside the grammar
// fails with errors.ErrUnsupportedType.
func ParseDescriptor(s string) (Descriptor, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Descriptor{}, errors.UnsupportedType(s)
	}

	left, right, n := splitUnion(t)
	switch {
	case n > 1:
		return Descriptor{}, errors.WithDetail(errors.UnsupportedType(s), "only binary unions are supported")
	case n == 1:
		l, err := ParseDescriptor(left)
		if err != nil {
			return Descriptor{}, err
		}
		r, err := ParseDescriptor(right)
		if err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Kind: DescUnion, Raw: t, Elems: []Descriptor{l, r}}, nil
	}

	if p, ok := primitives[t]; ok {
		return Descriptor{Kind: DescPrimitive, Raw: t, Primitive: p}, nil
	}
	if _, ok := opaqueAliases[t]; ok {
		return Descriptor{Kind: DescOpaqueMap, Raw: t}, nil
	}
	if t == sizePairAlias {
		return Descriptor{Kind: DescSizePair, Raw: t}, nil
	}
	if t == schema.AuditLogChangeKey {
		return Descriptor{Kind: DescAuditLogKey, Raw: t}, nil
	}

	if inner, ok := strings.CutPrefix(t, "array<"); ok {
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return Descriptor{}, errors.UnsupportedType(s)
		}
		elem, err := ParseDescriptor(inner)
		if err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Kind: DescArray, Raw: t, Elems: []Descriptor{elem}}, nil
	}

	if strings.HasSuffix(t, schema.StructureSuffix) || strings.HasSuffix(t, schema.EnumSuffix) {
		if name := DeclName(t); IsIdentifier(name) && trimKind(t) != "" {
			return Descriptor{Kind: DescReference, Raw: t}, nil
		}
	}

	return Descriptor{}, errors.UnsupportedType(s)
}

// splitUnion splits t at its top-level "|" separators, ignoring any nested
// inside angle brackets. It returns the two sides of a binary union and the
// number of top-level separators found.
func splitUnion(t string) (string, string, int) {
	depth, count, at := 0, 0, -1
	for i, r := range t {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case '|':
			if depth == 0 {
				count++
				if at < 0 {
					at = i
				}
			}
		}
	}
	if count != 1 {
		return "", "", count
	}
	return strings.TrimSpace(t[:at]), strings.TrimSpace(t[at+1:]), 1
}

func trimKind(key string) string {
	return schema.TrimKind(key)
}
