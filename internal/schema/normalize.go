// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dacolabs/typegen/internal/errors"
)

// Normalize classifies every top-level entry of a decoded document and
// converts it to its typed form. Entry and field order is preserved.
func Normalize(module string, raw Object) (*Document, error) {
	doc := &Document{Module: module, Entries: make([]Entry, 0, len(raw))}

	for _, p := range raw {
		body, ok := p.Value.(Object)
		if !ok {
			return nil, errors.InEntry(
				errors.SchemaInvariantf("entry body must be a mapping, got %s", describe(p.Value)), p.Key)
		}

		var (
			entry Entry
			err   error
		)
		switch {
		case p.Key == AuditLogChangeKey:
			entry, err = normalizeAuditLogKeys(p.Key, body)
		case strings.HasSuffix(p.Key, StructureSuffix):
			entry, err = normalizeStructure(p.Key, body)
		case strings.HasSuffix(p.Key, EnumSuffix):
			entry, err = normalizeEnum(p.Key, body)
		default:
			err = errors.WithHintf(
				errors.SchemaInvariantf("cannot tell whether entry is a structure or an enum"),
				"entry names must end in %q or %q", StructureSuffix, EnumSuffix)
		}
		if err != nil {
			return nil, errors.InEntry(err, p.Key)
		}
		doc.Entries = append(doc.Entries, entry)
	}

	return doc, nil
}

func normalizeStructure(key string, body Object) (*Structure, error) {
	s := &Structure{Name: key, Fields: make([]Field, 0, len(body))}

	for _, p := range body {
		attrs, ok := p.Value.(Object)
		if !ok {
			return nil, errors.InEntry(
				errors.SchemaInvariantf("field attributes must be a mapping, got %s", describe(p.Value)), p.Key)
		}

		f := Field{Name: p.Key}
		for _, a := range attrs {
			var err error
			switch a.Key {
			case "type":
				f.Type, err = stringAttr(a)
			case "desc":
				f.Description, err = optionalStringAttr(a)
			case "optional":
				f.Optional, err = boolAttr(a)
			case "nullable":
				f.Nullable, err = boolAttr(a)
			default:
				err = errors.SchemaInvariantf("unrecognized field attribute %q", a.Key)
			}
			if err != nil {
				return nil, errors.InEntry(err, p.Key)
			}
		}
		if f.Type == "" {
			return nil, errors.InEntry(errors.SchemaInvariantf("field has no type"), p.Key)
		}

		s.Fields = append(s.Fields, f)
	}

	return s, nil
}

func normalizeEnum(key string, body Object) (*Enum, error) {
	e := &Enum{Name: key, Members: make([]Member, 0, len(body))}

	for _, p := range body {
		m := Member{Key: p.Key}

		switch v := p.Value.(type) {
		case Object:
			hasValue := false
			for _, a := range v {
				var err error
				switch a.Key {
				case "value":
					m.Value, err = scalarAttr(a)
					hasValue = true
				case "desc":
					m.Description, err = optionalStringAttr(a)
				case "optional", "nullable":
					var set bool
					if set, err = boolAttr(a); err == nil && set {
						err = errors.SchemaInvariantf("enum members cannot be %s", a.Key)
					}
				case "type":
					// member type tags carry no information for enums
				default:
					err = errors.SchemaInvariantf("unrecognized enum member attribute %q", a.Key)
				}
				if err != nil {
					return nil, errors.InEntry(err, p.Key)
				}
			}
			if !hasValue {
				return nil, errors.InEntry(errors.SchemaInvariantf("enum member has no value"), p.Key)
			}
		default:
			s, err := scalarAttr(Pair{Key: "value", Value: v})
			if err != nil {
				return nil, errors.InEntry(err, p.Key)
			}
			m.Value = s
		}

		e.Members = append(e.Members, m)
	}

	return e, nil
}

func normalizeAuditLogKeys(key string, body Object) (*AuditLogKeys, error) {
	a := &AuditLogKeys{Name: key, Keys: make([]ChangeKey, 0, len(body))}

	for _, p := range body {
		attrs, ok := p.Value.(Object)
		if !ok {
			return nil, errors.InEntry(
				errors.SchemaInvariantf("change key attributes must be a mapping, got %s", describe(p.Value)), p.Key)
		}

		ck := ChangeKey{Key: p.Key}
		for _, attr := range attrs {
			var err error
			switch attr.Key {
			case "object_changed":
				ck.ObjectChanged, err = optionalStringAttr(attr)
			case "type":
				ck.Type, err = optionalStringAttr(attr)
			case "desc":
				ck.Description, err = optionalStringAttr(attr)
			default:
				err = errors.SchemaInvariantf("unrecognized change key attribute %q", attr.Key)
			}
			if err != nil {
				return nil, errors.InEntry(err, p.Key)
			}
		}

		a.Keys = append(a.Keys, ck)
	}

	return a, nil
}

func stringAttr(p Pair) (string, error) {
	s, ok := p.Value.(string)
	if !ok || s == "" {
		return "", errors.SchemaInvariantf("attribute %q must be a non-empty string, got %s", p.Key, describe(p.Value))
	}
	return s, nil
}

func optionalStringAttr(p Pair) (string, error) {
	if p.Value == nil {
		return "", nil
	}
	s, ok := p.Value.(string)
	if !ok {
		return "", errors.SchemaInvariantf("attribute %q must be a string, got %s", p.Key, describe(p.Value))
	}
	return s, nil
}

func boolAttr(p Pair) (bool, error) {
	if p.Value == nil {
		return false, nil
	}
	b, ok := p.Value.(bool)
	if !ok {
		return false, errors.SchemaInvariantf("attribute %q must be a boolean, got %s", p.Key, describe(p.Value))
	}
	return b, nil
}

func scalarAttr(p Pair) (Scalar, error) {
	switch v := p.Value.(type) {
	case string:
		return Scalar{Text: v}, nil
	case json.Number:
		return Scalar{Text: v.String(), Numeric: true}, nil
	default:
		return Scalar{}, errors.SchemaInvariantf("attribute %q must be a string or a number, got %s", p.Key, describe(p.Value))
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case Object:
		return "mapping"
	case []any:
		return "list"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
