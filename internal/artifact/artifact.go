// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package artifact defines the generator's output model: declarations, the
// dependencies they need and the module artifacts that group them.
package artifact

import "sort"

// DeclKind discriminates declarations.
type DeclKind int

const (
	DeclRecord DeclKind = iota + 1
	DeclEnum
	DeclAlias
)

func (k DeclKind) String() string {
	switch k {
	case DeclRecord:
		return "record"
	case DeclEnum:
		return "enum"
	case DeclAlias:
		return "alias"
	default:
		return "unknown"
	}
}

// Decl is one generated declaration.
type Decl struct {
	Kind    DeclKind
	Key     string   // schema key the declaration was generated from
	Name    string   // declared symbol
	Fields  []Field  // DeclRecord, required fields first
	Members []Member // DeclEnum
	Target  Expr     // DeclAlias
	Comment string
}

// Field is one record field.
type Field struct {
	Name        string
	Type        Expr
	Unset       bool // defaults to the unset sentinel
	Description string
}

// Member is one enum member.
type Member struct {
	Name     string
	Value    Value
	Comments []string
}

// Value is an enum member value. Numeric values are emitted bare, others quoted.
type Value struct {
	Text    string
	Numeric bool
}

// Int returns a numeric value.
func Int(text string) Value { return Value{Text: text, Numeric: true} }

// Str returns a string value.
func Str(text string) Value { return Value{Text: text} }

// Import is a resolved cross-module dependency.
type Import struct {
	Module  string
	Symbols []string
}

// Artifact is one generated output unit. Deps holds what the declarations
// need; Imports is filled by linking Deps' references against a registry.
type Artifact struct {
	Module   string
	Source   string // module of the schema document the artifact was generated from
	Isolated string // schema key of the single type of an isolated artifact
	Decls    []Decl
	Deps     Deps
	Imports  []Import
}

// IsIsolated reports whether this artifact holds exactly one cycle-breaking type.
func (a *Artifact) IsIsolated() bool {
	return a.Isolated != ""
}

// Declares returns the schema keys of all declarations in the artifact.
func (a *Artifact) Declares() []string {
	keys := make([]string, 0, len(a.Decls))
	for _, d := range a.Decls {
		keys = append(keys, d.Key)
	}
	return keys
}

// Symbols returns the declared symbol names.
func (a *Artifact) Symbols() []string {
	names := make([]string, 0, len(a.Decls))
	for _, d := range a.Decls {
		names = append(names, d.Name)
	}
	return names
}

// AddImport records that symbol must be imported from module.
// Imports stay sorted by module and symbol, without duplicates.
func (a *Artifact) AddImport(module, symbol string) {
	i := sort.Search(len(a.Imports), func(i int) bool { return a.Imports[i].Module >= module })
	if i == len(a.Imports) || a.Imports[i].Module != module {
		a.Imports = append(a.Imports, Import{})
		copy(a.Imports[i+1:], a.Imports[i:])
		a.Imports[i] = Import{Module: module}
	}

	syms := a.Imports[i].Symbols
	j := sort.SearchStrings(syms, symbol)
	if j < len(syms) && syms[j] == symbol {
		return
	}
	syms = append(syms, "")
	copy(syms[j+1:], syms[j:])
	syms[j] = symbol
	a.Imports[i].Symbols = syms
}
