// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package registry

import (
	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
)

// NeedsImport reports whether current must import from depModule.
//
// An isolated artifact skips imports from its own dedicated module; any
// other artifact skips imports from the module being generated.
func (r *Registry) NeedsImport(current *artifact.Artifact, depModule string) bool {
	if current.IsIsolated() && r.IsCircular(current.Isolated) {
		return depModule != DedicatedModule(current.Isolated)
	}
	return depModule != current.Module
}

// Link resolves every reference of a to a module and records the imports it needs.
func (r *Registry) Link(a *artifact.Artifact) error {
	for _, ref := range a.Deps.Refs() {
		module, err := r.ResolveModule(ref.Key)
		if err != nil {
			return errors.Wrapf(err, "module %s: resolve %s", a.Module, ref.Name)
		}
		if r.NeedsImport(a, module) {
			a.AddImport(module, ref.Name)
		}
	}
	return nil
}
