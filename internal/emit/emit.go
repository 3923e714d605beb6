// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package emit renders linked artifacts into target-language source files.
package emit

import (
	"sort"

	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
)

// Emitter defines the interface all output formats must implement.
type Emitter interface {
	// Name returns the emitter's identifier (e.g., "python", "jsonschema")
	Name() string

	// FileExtension returns the extension appended to the module name (e.g., ".py")
	FileExtension() string

	// Emit renders one linked artifact.
	Emit(a *artifact.Artifact) ([]byte, error)
}

// SupportEmitter is implemented by emitters that ship support files next to
// the generated modules, such as the shared base module.
type SupportEmitter interface {
	Emitter

	// Support returns the support files to write alongside the artifacts.
	Support() ([]File, error)
}

// File is a rendered output file.
type File struct {
	Name string
	Data []byte
}

// FileName returns the file name of a module for emitter e.
func FileName(e Emitter, module string) string {
	return module + e.FileExtension()
}

// Register holds the available emitters by name.
type Register map[string]Emitter

// Add registers e under its name.
func (r Register) Add(e Emitter) {
	r[e.Name()] = e
}

// Get retrieves an emitter by name.
func (r Register) Get(name string) (Emitter, error) {
	e, ok := r[name]
	if !ok {
		return nil, errors.Newf("unknown format: %s", name)
	}
	return e, nil
}

// Available returns all registered emitter names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
