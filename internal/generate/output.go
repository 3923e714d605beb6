// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/dacolabs/typegen/internal/emit"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/logger"
)

// Render emits the artifacts generated from the given source modules, or all
// artifacts when sources is empty, followed by the emitter's support files.
// Nothing is returned unless every artifact rendered.
func Render(res *Result, e emit.Emitter, sources []string) ([]emit.File, error) {
	want := toSet(sources)

	var files []emit.File
	for _, a := range res.Artifacts {
		if _, ok := want[a.Source]; len(want) > 0 && !ok {
			continue
		}
		data, err := e.Emit(a)
		if err != nil {
			return nil, err
		}
		files = append(files, emit.File{Name: emit.FileName(e, a.Module), Data: data})
	}

	if se, ok := e.(emit.SupportEmitter); ok {
		support, err := se.Support()
		if err != nil {
			return nil, errors.Wrapf(err, "%s support files", e.Name())
		}
		files = append(files, support...)
	}
	return files, nil
}

// Sink receives rendered files.
type Sink interface {
	Write(f emit.File) error
}

// DirSink writes files into a directory, creating it when missing.
type DirSink struct {
	Dir string
}

// Write writes f into the sink's directory.
func (s DirSink) Write(f emit.File) error {
	if err := os.MkdirAll(s.Dir, 0o750); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	path := filepath.Join(s.Dir, f.Name)
	if err := os.WriteFile(path, f.Data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	logger.Logger.Debugw("file written", "path", path, "bytes", len(f.Data))
	return nil
}

// MemorySink keeps files in memory, keyed by name.
type MemorySink map[string][]byte

// Write stores f.
func (s MemorySink) Write(f emit.File) error {
	s[f.Name] = f.Data
	return nil
}

// Names returns the stored file names, sorted.
func (s MemorySink) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// WriteAll writes files to sink in order.
func WriteAll(sink Sink, files []emit.File) error {
	for _, f := range files {
		if err := sink.Write(f); err != nil {
			return err
		}
	}
	return nil
}
