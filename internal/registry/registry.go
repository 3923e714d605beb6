// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package registry resolves schema type keys to the modules that declare them.
//
// A registry is filled while artifacts are flushed and sealed before any
// lookup: every artifact is declared before any cross-artifact reference is
// resolved. After Seal the registry is read-only and safe for concurrent use.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/schema"
)

// ErrSealed is returned when declaring into a sealed registry.
var ErrSealed = errors.New("registry is sealed")

// ErrNotSealed is returned when resolving before the registry is sealed.
var ErrNotSealed = errors.New("registry is not sealed")

// Registry maps declared schema keys to modules.
type Registry struct {
	mu       sync.RWMutex
	circular map[string]struct{}
	modules  map[string][]string // module -> declared keys
	sealed   bool
}

// New creates a registry. circular lists the type keys that are always
// isolated into their own dedicated module.
func New(circular []string) *Registry {
	r := &Registry{
		circular: make(map[string]struct{}, len(circular)),
		modules:  make(map[string][]string),
	}
	for _, key := range circular {
		r.circular[key] = struct{}{}
	}
	return r
}

// IsCircular reports whether key belongs to the circular set.
func (r *Registry) IsCircular(key string) bool {
	_, ok := r.circular[key]
	return ok
}

// DedicatedModule returns the module name of an isolated type: its key
// without the kind suffix.
func DedicatedModule(key string) string {
	return schema.TrimKind(key)
}

// Declare records that module declares keys. A module may be declared more
// than once; its keys accumulate.
func (r *Registry) Declare(module string, keys []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return errors.Wrapf(ErrSealed, "declare %s", module)
	}
	r.modules[module] = append(r.modules[module], keys...)
	return nil
}

// DeclareArtifact records every declaration of a flushed artifact.
func (r *Registry) DeclareArtifact(a *artifact.Artifact) error {
	return r.Declare(a.Module, a.Declares())
}

// Seal ends the declaration phase.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Modules returns the declared module names, sorted.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for m := range r.modules {
		names = append(names, m)
	}
	sort.Strings(names)
	return names
}

// ResolveModule returns the module that declares key. Circular keys resolve
// to their dedicated module without a lookup. Otherwise exactly one module
// must declare key: none is errors.ErrModuleNotFound, several is
// errors.ErrAmbiguousModule.
func (r *Registry) ResolveModule(key string) (string, error) {
	if r.IsCircular(key) {
		return DedicatedModule(key), nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.sealed {
		return "", errors.Wrapf(ErrNotSealed, "resolve %s", key)
	}

	var found []string
	for module, keys := range r.modules {
		for _, k := range keys {
			if k == key {
				found = append(found, module)
				break
			}
		}
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return "", errors.Wrapf(errors.ErrModuleNotFound, "%s", key)
	default:
		sort.Strings(found)
		return "", errors.WithDetailf(
			errors.Wrapf(errors.ErrAmbiguousModule, "%s", key),
			"declared by modules %s", strings.Join(found, ", "))
	}
}
