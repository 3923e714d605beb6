// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsonschema emits artifacts as JSON Schema 2020-12 documents, one
// document per module with every declaration under $defs.
package jsonschema

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
)

// Draft is the $schema of every emitted document.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Emitter renders JSON Schema documents.
type Emitter struct{}

// Name returns "jsonschema".
func (e *Emitter) Name() string {
	return "jsonschema"
}

// FileExtension returns the file extension for JSON Schema documents.
func (e *Emitter) FileExtension() string {
	return ".schema.json"
}

// Emit renders a linked artifact as a JSON Schema document.
func (e *Emitter) Emit(a *artifact.Artifact) ([]byte, error) {
	root := &jsonschema.Schema{
		Schema: Draft,
		ID:     a.Module + e.FileExtension(),
		Title:  a.Module,
		Defs:   make(map[string]*jsonschema.Schema, len(a.Decls)),
	}

	c := &converter{local: make(map[string]bool), imported: make(map[string]string)}
	for _, d := range a.Decls {
		c.local[d.Name] = true
	}
	for _, imp := range a.Imports {
		for _, sym := range imp.Symbols {
			c.imported[sym] = imp.Module + e.FileExtension()
		}
	}

	for _, d := range a.Decls {
		s, err := c.decl(d)
		if err != nil {
			return nil, errors.Wrapf(err, "module %s", a.Module)
		}
		root.Defs[d.Name] = s
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "module %s: marshal schema", a.Module)
	}
	return append(out, '\n'), nil
}

type converter struct {
	local    map[string]bool
	imported map[string]string // symbol -> document id
}

func (c *converter) decl(d artifact.Decl) (*jsonschema.Schema, error) {
	switch d.Kind {
	case artifact.DeclRecord:
		s := &jsonschema.Schema{
			Type:       "object",
			Properties: make(map[string]*jsonschema.Schema, len(d.Fields)),
		}
		for _, f := range d.Fields {
			fs, err := c.expr(f.Type)
			if err != nil {
				return nil, errors.Wrapf(err, "%s.%s", d.Name, f.Name)
			}
			if f.Description != "" {
				fs.Description = f.Description
			}
			s.Properties[f.Name] = fs
			if !f.Unset {
				s.Required = append(s.Required, f.Name)
			}
		}
		return s, nil

	case artifact.DeclEnum:
		return enumSchema(d), nil

	case artifact.DeclAlias:
		s, err := c.expr(d.Target)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", d.Name)
		}
		s.Description = d.Comment
		return s, nil

	default:
		return nil, errors.Newf("%s: unsupported declaration kind %s", d.Name, d.Kind)
	}
}

func enumSchema(d artifact.Decl) *jsonschema.Schema {
	s := &jsonschema.Schema{Title: d.Name}
	numeric, text := 0, 0
	for _, m := range d.Members {
		if m.Value.Numeric {
			s.Enum = append(s.Enum, json.Number(m.Value.Text))
			numeric++
		} else {
			s.Enum = append(s.Enum, m.Value.Text)
			text++
		}
	}

	switch {
	case numeric > 0 && text == 0:
		s.Type = "integer"
	case text > 0 && numeric == 0:
		s.Type = "string"
	}
	return s
}

func (c *converter) expr(e artifact.Expr) (*jsonschema.Schema, error) {
	switch e.Kind {
	case artifact.ExprPrimitive:
		return primitive(e.Primitive), nil

	case artifact.ExprReference:
		if c.local[e.Name] {
			return &jsonschema.Schema{Ref: "#/$defs/" + e.Name}, nil
		}
		if doc, ok := c.imported[e.Name]; ok {
			return &jsonschema.Schema{Ref: doc + "#/$defs/" + e.Name}, nil
		}
		return nil, errors.Newf("unresolved reference %s", e.Name)

	case artifact.ExprSequence:
		items, err := c.expr(e.Elems[0])
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{Type: "array", Items: items}, nil

	case artifact.ExprUnion:
		alts, err := c.exprs(e.Elems)
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{AnyOf: alts}, nil

	case artifact.ExprTuple:
		items, err := c.exprs(e.Elems)
		if err != nil {
			return nil, err
		}
		n := len(items)
		return &jsonschema.Schema{Type: "array", PrefixItems: items, MinItems: &n, MaxItems: &n}, nil

	case artifact.ExprMap:
		return &jsonschema.Schema{Type: "object"}, nil

	case artifact.ExprNullable:
		inner, err := c.expr(e.Elems[0])
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{inner, {Type: "null"}}}, nil

	case artifact.ExprUnset:
		// absence is expressed by leaving the field out of required
		return c.expr(e.Elems[0])

	default:
		return nil, errors.Newf("unsupported expression %s", e)
	}
}

func (c *converter) exprs(es []artifact.Expr) ([]*jsonschema.Schema, error) {
	out := make([]*jsonschema.Schema, 0, len(es))
	for _, e := range es {
		s, err := c.expr(e)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func primitive(p artifact.Primitive) *jsonschema.Schema {
	switch p {
	case artifact.PrimString:
		return &jsonschema.Schema{Type: "string"}
	case artifact.PrimInteger:
		return &jsonschema.Schema{Type: "integer"}
	case artifact.PrimBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case artifact.PrimNull:
		return &jsonschema.Schema{Type: "null"}
	case artifact.PrimTimestamp:
		return &jsonschema.Schema{Type: "string", Format: "date-time"}
	case artifact.PrimSnowflake:
		return &jsonschema.Schema{Type: "string", Pattern: "^[0-9]+$"}
	default:
		return &jsonschema.Schema{}
	}
}
