// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema models API schema documents: named structures (records),
// enums and the distinguished audit-log change-key table.
package schema

import "strings"

// Entry name conventions.
const (
	StructureSuffix = "_structure"
	EnumSuffix      = "_enum"

	// AuditLogChangeKey is the distinguished entry listing audit-log change keys.
	AuditLogChangeKey = "audit_log_change_key"
)

// Kind classifies a schema entry.
type Kind int

const (
	KindStructure Kind = iota + 1
	KindEnum
	KindAuditLogKeys
)

func (k Kind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindEnum:
		return "enum"
	case KindAuditLogKeys:
		return "audit-log-keys"
	default:
		return "unknown"
	}
}

// Entry is one named schema entry. The concrete type is *Structure, *Enum
// or *AuditLogKeys; the kind is decided once when the document is normalized.
type Entry interface {
	Key() string
	Kind() Kind
}

// Structure is a record type with named, typed fields in schema order.
type Structure struct {
	Name   string
	Fields []Field
}

func (s *Structure) Key() string { return s.Name }
func (s *Structure) Kind() Kind  { return KindStructure }

// Field is one structure field. Optional governs presence, Nullable governs
// the value; the two are independent.
type Field struct {
	Name        string
	Type        string
	Description string
	Optional    bool
	Nullable    bool
}

// Enum is a set of symbolic members in schema order.
type Enum struct {
	Name    string
	Members []Member
}

func (e *Enum) Key() string { return e.Name }
func (e *Enum) Kind() Kind  { return KindEnum }

// Member is a raw enum member. Either side may be numeric, symbolic or a
// bit-shift literal; normalization happens in the enum builder.
type Member struct {
	Key         string
	Value       Scalar
	Description string
}

// Scalar is a raw scalar value as written in the document.
type Scalar struct {
	Text    string
	Numeric bool // written as a number literal rather than a string
}

// AuditLogKeys is the distinguished audit-log change-key table.
type AuditLogKeys struct {
	Name string
	Keys []ChangeKey
}

func (a *AuditLogKeys) Key() string { return a.Name }
func (a *AuditLogKeys) Kind() Kind  { return KindAuditLogKeys }

// ChangeKey describes one audit-log change key and the type of the value that changed.
type ChangeKey struct {
	Key           string
	ObjectChanged string
	Type          string
	Description   string
}

// Document is one schema document. Its entries generate one module.
type Document struct {
	Module  string
	Entries []Entry
}

// Keys returns the entry keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		keys = append(keys, e.Key())
	}
	return keys
}

// Lookup returns the entry with the given key.
func (d *Document) Lookup(key string) (Entry, bool) {
	for _, e := range d.Entries {
		if e.Key() == key {
			return e, true
		}
	}
	return nil, false
}

// TrimKind strips the _structure or _enum suffix from an entry key.
func TrimKind(key string) string {
	if name, ok := strings.CutSuffix(key, StructureSuffix); ok {
		return name
	}
	if name, ok := strings.CutSuffix(key, EnumSuffix); ok {
		return name
	}
	return key
}
