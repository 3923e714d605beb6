// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/schema"
)

var shiftPattern = regexp.MustCompile(`^(\d+)\s*<<\s*(\d+)$`)

// EvalShift evaluates a bit-shift literal of the form "<integer> << <integer>".
// A label around the literal is tolerated in either position:
// "ROLE_CREATE (1 << 0)" and "1 << 0 (ROLE_CREATE)" both evaluate to 1.
// Anything else fails with errors.ErrSchemaInvariant.
func EvalShift(text string) (int64, error) {
	expr := strings.TrimSpace(text)
	if open := strings.Index(expr, "("); open >= 0 {
		outer := expr[:open]
		inner := strings.TrimSuffix(strings.TrimSpace(expr[open+1:]), ")")
		if strings.Contains(outer, "<<") {
			expr = outer
		} else {
			expr = inner
		}
		expr = strings.TrimSpace(expr)
	}

	m := shiftPattern.FindStringSubmatch(expr)
	if m == nil {
		return 0, errors.SchemaInvariantf("bit-shift literal %q must have the form <integer> << <integer>", text)
	}

	base, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, errors.SchemaInvariantf("bit-shift literal %q: %v", text, err)
	}
	shift, err := strconv.ParseUint(m[2], 10, 8)
	if err != nil || shift > 62 || base > math.MaxInt64>>shift {
		return 0, errors.SchemaInvariantf("bit-shift literal %q overflows a 64-bit integer", text)
	}

	return base << shift, nil
}

// BuildEnum normalizes enum members into declarations in schema order.
//
// Bit-shift literals on either side are evaluated, numeric keys become
// integers, and a numeric key paired with a symbolic value is swapped so the
// member is always NAME = value. Names are normalized with NormalizeSymbol.
func BuildEnum(e *schema.Enum) ([]artifact.Member, error) {
	members := make([]artifact.Member, 0, len(e.Members))
	seen := make(map[string]struct{}, len(e.Members))

	for _, m := range e.Members {
		key, keyNumeric, err := normalizeKey(m.Key)
		if err != nil {
			return nil, errors.InEntry(err, e.Name, m.Key)
		}
		value, err := normalizeValue(m.Value)
		if err != nil {
			return nil, errors.InEntry(err, e.Name, m.Key)
		}

		name := key
		if keyNumeric {
			// "value -> flag" layout: the symbolic side is the name
			name, value = value.Text, artifact.Int(key)
		}

		name = NormalizeSymbol(name)
		if !IsIdentifier(name) {
			return nil, errors.InEntry(
				errors.SchemaInvariantf("member name %q is not a valid identifier", name), e.Name, m.Key)
		}
		if _, dup := seen[name]; dup {
			return nil, errors.InEntry(errors.SchemaInvariantf("duplicate member %s", name), e.Name, m.Key)
		}
		seen[name] = struct{}{}

		member := artifact.Member{Name: name, Value: value}
		if m.Description != "" {
			member.Comments = []string{m.Description}
		}
		members = append(members, member)
	}

	return members, nil
}

// normalizeKey evaluates bit-shift keys and recognizes numeric keys.
func normalizeKey(key string) (string, bool, error) {
	if strings.Contains(key, "<<") {
		n, err := EvalShift(key)
		if err != nil {
			return "", false, err
		}
		return strconv.FormatInt(n, 10), true, nil
	}
	if isDigits(key) {
		n, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return "", false, errors.SchemaInvariantf("numeric key %q: %v", key, err)
		}
		return strconv.FormatInt(n, 10), true, nil
	}
	return key, false, nil
}

// normalizeValue evaluates bit-shift values and decides whether a value is emitted bare or quoted.
func normalizeValue(v schema.Scalar) (artifact.Value, error) {
	switch {
	case v.Numeric:
		return artifact.Int(v.Text), nil
	case strings.Contains(v.Text, "<<"):
		n, err := EvalShift(v.Text)
		if err != nil {
			return artifact.Value{}, err
		}
		return artifact.Int(strconv.FormatInt(n, 10)), nil
	case isDigits(v.Text):
		n, err := strconv.ParseInt(v.Text, 10, 64)
		if err != nil {
			return artifact.Value{}, errors.SchemaInvariantf("numeric value %q: %v", v.Text, err)
		}
		return artifact.Int(strconv.FormatInt(n, 10)), nil
	default:
		return artifact.Str(v.Text), nil
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BuildAuditLogKeys builds the members of the audit-log change-key enum.
// Each member's value is its raw key; the object that changed and the type of
// the changed value are kept as comments only.
func BuildAuditLogKeys(a *schema.AuditLogKeys) ([]artifact.Member, error) {
	members := make([]artifact.Member, 0, len(a.Keys))
	seen := make(map[string]struct{}, len(a.Keys))

	for _, k := range a.Keys {
		name := strings.Trim(NormalizeSymbol(k.Key), "$")
		if !IsIdentifier(name) {
			return nil, errors.InEntry(
				errors.SchemaInvariantf("member name %q is not a valid identifier", name), a.Name, k.Key)
		}
		if _, dup := seen[name]; dup {
			return nil, errors.InEntry(errors.SchemaInvariantf("duplicate member %s", name), a.Name, k.Key)
		}
		seen[name] = struct{}{}

		members = append(members, artifact.Member{
			Name:  name,
			Value: artifact.Str(k.Key),
			Comments: []string{
				fmt.Sprintf("a %q just changed. the values are of type %s", k.ObjectChanged, k.Type),
				"description: " + k.Description,
			},
		})
	}

	return members, nil
}
