// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/dacolabs/typegen/internal/errors"
)

// Format is a schema document encoding.
type Format int

const (
	FormatJSON Format = iota + 1
	FormatYAML
)

// FormatFromPath derives the document format from a file extension.
func FormatFromPath(p string) (Format, bool) {
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return 0, false
	}
}

// ModuleName derives a module name from a document path: the base name without extension.
func ModuleName(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Parse decodes and normalizes a schema document.
func Parse(module string, data []byte, format Format) (*Document, error) {
	var (
		raw Object
		err error
	)
	switch format {
	case FormatJSON:
		raw, err = DecodeJSON(data)
	case FormatYAML:
		raw, err = DecodeYAML(data)
	default:
		return nil, errors.New("format not supported")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "module %s: decode", module)
	}

	doc, err := Normalize(module, raw)
	if err != nil {
		return nil, errors.Wrapf(err, "module %s", module)
	}
	return doc, nil
}

// Read parses a document from r.
func Read(module string, r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(module, data, format)
}

// Loader loads schema documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and normalizes a single schema document.
// The format is determined from the file extension and the module name from the stem.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	format, ok := FormatFromPath(filePath)
	if !ok {
		return nil, errors.Newf("%s: format not supported", filePath)
	}

	data, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, err
	}

	return Parse(ModuleName(filePath), data, format)
}

// LoadDir loads every .json, .yaml and .yml document directly under dir,
// sorted by module name. Two documents mapping to the same module are an error.
func (l *Loader) LoadDir(dir string) ([]*Document, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := FormatFromPath(e.Name()); ok {
			files = append(files, path.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	seen := make(map[string]string, len(files))
	docs := make([]*Document, 0, len(files))
	for _, f := range files {
		module := ModuleName(f)
		if prev, ok := seen[module]; ok {
			return nil, errors.Newf("module %q defined by both %s and %s", module, prev, f)
		}
		seen[module] = f

		doc, err := l.LoadFile(f)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
