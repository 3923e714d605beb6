// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package python emits artifacts as Python modules of dataclasses and enums.
package python

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/emit"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/translate"
)

//go:embed python.py.tmpl base.py.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "python.py.tmpl", "base.py.tmpl"))

const indent = "    "

// DefaultBaseModule is the module providing Snowflake, UNKNOWN and Unknownish.
const DefaultBaseModule = "base"

// Emitter renders Python modules.
type Emitter struct {
	// BaseModule names the shared base module; DefaultBaseModule when empty.
	BaseModule string

	// EmitBase writes the base module next to the generated modules.
	EmitBase bool
}

// Name returns "python".
func (e *Emitter) Name() string {
	return "python"
}

// FileExtension returns the file extension for Python files.
func (e *Emitter) FileExtension() string {
	return ".py"
}

func (e *Emitter) baseModule() string {
	if e.BaseModule == "" {
		return DefaultBaseModule
	}
	return e.BaseModule
}

type fileData struct {
	Source string
	Header []string
	Decls  [][]string
}

// Emit renders a linked artifact as a Python module.
func (e *Emitter) Emit(a *artifact.Artifact) ([]byte, error) {
	data := fileData{
		Source: a.Source,
		Header: e.header(a),
	}

	for _, d := range a.Decls {
		lines, err := declLines(d)
		if err != nil {
			return nil, errors.Wrapf(err, "module %s", a.Module)
		}
		data.Decls = append(data.Decls, lines)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "python.py.tmpl", data); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}
	return buf.Bytes(), nil
}

// Support returns the base module when EmitBase is set.
func (e *Emitter) Support() ([]emit.File, error) {
	if !e.EmitBase {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.py.tmpl", nil); err != nil {
		return nil, errors.Wrap(err, "failed to execute template")
	}
	return []emit.File{{Name: emit.FileName(e, e.baseModule()), Data: buf.Bytes()}}, nil
}

func (e *Emitter) header(a *artifact.Artifact) []string {
	var lines []string
	for _, f := range a.Deps.Facilities() {
		switch f {
		case artifact.FacilityRecord:
			lines = append(lines, "from dataclasses import dataclass")
		case artifact.FacilityEnum:
			lines = append(lines, "from enum import Enum")
		case artifact.FacilityContainers:
			lines = append(lines, "import typing as t")
		case artifact.FacilityDateTime:
			lines = append(lines, "import datetime as dt")
		case artifact.FacilityBase:
			lines = append(lines, fmt.Sprintf("from .%s import (Snowflake, UNKNOWN, Unknownish)", e.baseModule()))
		}
	}

	for _, imp := range a.Imports {
		lines = append(lines, fmt.Sprintf("from .%s import %s", imp.Module, strings.Join(imp.Symbols, ", ")))
	}
	return lines
}

func declLines(d artifact.Decl) ([]string, error) {
	switch d.Kind {
	case artifact.DeclRecord:
		lines := []string{"@dataclass()", "class " + d.Name + ":"}
		if len(d.Fields) == 0 {
			return append(lines, indent+"pass"), nil
		}
		seen := make(map[string]string, len(d.Fields))
		for _, f := range d.Fields {
			ident := toPythonIdent(f.Name)
			if prev, dup := seen[ident]; dup {
				return nil, errors.InEntry(
					errors.SchemaInvariantf("fields %q and %q both render as %q", prev, f.Name, ident),
					d.Key, f.Name)
			}
			seen[ident] = f.Name
			lines = append(lines, docComment(indent, f.Description)...)
			decl := fmt.Sprintf("%s%s: %s", indent, ident, translate.Render(f.Type, typeRenderer{}))
			if f.Unset {
				decl += " = UNKNOWN"
			}
			lines = append(lines, decl)
		}
		return lines, nil

	case artifact.DeclEnum:
		lines := []string{"class " + d.Name + "(Enum):"}
		if len(d.Members) == 0 {
			return append(lines, indent+"pass"), nil
		}
		for _, m := range d.Members {
			for _, c := range m.Comments {
				lines = append(lines, docComment(indent, c)...)
			}
			lines = append(lines, fmt.Sprintf("%s%s = %s", indent, m.Name, literal(m.Value)))
		}
		return lines, nil

	case artifact.DeclAlias:
		lines := docComment("", d.Comment)
		return append(lines, d.Name+" = "+translate.Render(d.Target, typeRenderer{})), nil

	default:
		return nil, errors.Newf("%s: unsupported declaration kind %s", d.Name, d.Kind)
	}
}

// docComment renders text as "#:" attribute doc comments, one per line.
func docComment(prefix, text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		lines = append(lines, strings.TrimRight(prefix+"#: "+strings.TrimSpace(l), " "))
	}
	return lines
}

func literal(v artifact.Value) string {
	if v.Numeric {
		return v.Text
	}
	return strconv.Quote(v.Text)
}
