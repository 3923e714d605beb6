// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package generate turns schema documents into module artifacts.
package generate

import (
	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/logger"
	"github.com/dacolabs/typegen/internal/registry"
	"github.com/dacolabs/typegen/internal/schema"
	"github.com/dacolabs/typegen/internal/translate"
)

// Options configures generation.
type Options struct {
	// Circular lists type keys that take part in reference cycles. Each is
	// generated into its own dedicated artifact.
	Circular []string

	// Skip lists entries that cannot be generated as declared. Skipped
	// structures become opaque map aliases so references to them still resolve.
	Skip []string

	// Overrides replaces individual field descriptors, keyed by "entry.field".
	Overrides translate.Overrides
}

// BuiltinOverrides apply unless Options.Overrides maps the same field.
var BuiltinOverrides = translate.Overrides{
	"audit_log_change_structure.key": schema.AuditLogChangeKey,
}

// Generator is the per-module orchestrator.
type Generator struct {
	circular  map[string]struct{}
	skip      map[string]struct{}
	overrides translate.Overrides
}

// New creates a Generator.
func New(opts Options) *Generator {
	overrides := make(translate.Overrides, len(BuiltinOverrides)+len(opts.Overrides))
	for k, v := range BuiltinOverrides {
		overrides[k] = v
	}
	for k, v := range opts.Overrides {
		overrides[k] = v
	}
	return &Generator{
		circular:  toSet(opts.Circular),
		skip:      toSet(opts.Skip),
		overrides: overrides,
	}
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// accumulator collects declarations for one artifact. It is a value: add
// returns a new accumulator and never mutates the receiver.
type accumulator struct {
	decls []artifact.Decl
	deps  artifact.Deps
}

func (a accumulator) add(d artifact.Decl, deps artifact.Deps) accumulator {
	decls := make([]artifact.Decl, len(a.decls), len(a.decls)+1)
	copy(decls, a.decls)
	return accumulator{decls: append(decls, d), deps: a.deps.Merge(deps)}
}

func (a accumulator) flush(module, source, isolated string) *artifact.Artifact {
	return &artifact.Artifact{
		Module:   module,
		Source:   source,
		Isolated: isolated,
		Decls:    a.decls,
		Deps:     a.deps,
	}
}

// Module generates the artifacts of one document: its primary artifact,
// named after the document module, followed by one dedicated artifact per
// circular type in document order. References stay unresolved until the
// artifacts are linked against a sealed registry.
func (g *Generator) Module(doc *schema.Document) ([]*artifact.Artifact, error) {
	acc := accumulator{}
	var isolated []*artifact.Artifact

	for _, entry := range doc.Entries {
		key := entry.Key()

		if _, skip := g.skip[key]; skip {
			decl, deps, ok := skippedDecl(entry)
			logger.Logger.Warnw("skipping entry", "module", doc.Module, "entry", key, "alias", ok)
			if ok {
				acc = acc.add(decl, deps)
			}
			continue
		}

		logger.Logger.Debugw("generating entry", "module", doc.Module, "entry", key, "kind", entry.Kind().String())

		decl, deps, err := g.declare(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "module %s", doc.Module)
		}

		if _, cyclic := g.circular[key]; cyclic {
			// generated in isolation; the primary accumulator is left as it was
			a := accumulator{}.add(decl, deps).flush(registry.DedicatedModule(key), doc.Module, key)
			logFlush(a)
			isolated = append(isolated, a)
			continue
		}

		acc = acc.add(decl, deps)
	}

	primary := acc.flush(doc.Module, doc.Module, "")
	logFlush(primary)

	return append([]*artifact.Artifact{primary}, isolated...), nil
}

func (g *Generator) declare(entry schema.Entry) (artifact.Decl, artifact.Deps, error) {
	switch e := entry.(type) {
	case *schema.Structure:
		fields, deps, err := translate.BuildFields(e.Name, e.Fields, g.overrides)
		if err != nil {
			return artifact.Decl{}, deps, err
		}
		return artifact.Decl{
			Kind:   artifact.DeclRecord,
			Key:    e.Name,
			Name:   translate.DeclName(e.Name),
			Fields: fields,
		}, deps.With(artifact.FacilityRecord), nil

	case *schema.Enum:
		members, err := translate.BuildEnum(e)
		if err != nil {
			return artifact.Decl{}, artifact.Deps{}, err
		}
		return artifact.Decl{
			Kind:    artifact.DeclEnum,
			Key:     e.Name,
			Name:    translate.DeclName(e.Name),
			Members: members,
		}, artifact.NewDeps(artifact.FacilityEnum), nil

	case *schema.AuditLogKeys:
		members, err := translate.BuildAuditLogKeys(e)
		if err != nil {
			return artifact.Decl{}, artifact.Deps{}, err
		}
		return artifact.Decl{
			Kind:    artifact.DeclEnum,
			Key:     e.Name,
			Name:    translate.AuditLogChangeKeyName,
			Members: members,
		}, artifact.NewDeps(artifact.FacilityEnum), nil

	default:
		return artifact.Decl{}, artifact.Deps{}, errors.InEntry(
			errors.SchemaInvariantf("unknown entry kind %s", entry.Kind()), entry.Key())
	}
}

// skippedDecl returns the opaque alias standing in for a skipped structure.
func skippedDecl(entry schema.Entry) (artifact.Decl, artifact.Deps, bool) {
	if entry.Kind() != schema.KindStructure {
		return artifact.Decl{}, artifact.Deps{}, false
	}
	return artifact.Decl{
		Kind:    artifact.DeclAlias,
		Key:     entry.Key(),
		Name:    translate.DeclName(entry.Key()),
		Target:  artifact.OpaqueMap(),
		Comment: "fields are not valid identifiers; kept as an opaque map",
	}, artifact.NewDeps(artifact.FacilityContainers), true
}

func logFlush(a *artifact.Artifact) {
	logger.Logger.Infow("artifact flushed",
		"module", a.Module, "source", a.Source, "decls", len(a.Decls), "isolated", a.IsIsolated())
}
