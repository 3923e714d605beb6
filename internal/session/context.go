// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dacolabs/typegen/internal/config"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/logger"
	"github.com/dacolabs/typegen/internal/schema"
)

var (
	// ErrNotInitialized indicates no typegen.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a typegen project (typegen.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemasNotFound indicates the schema directory referenced by config doesn't exist.
	ErrSchemasNotFound = errors.New("schema directory not found")

	// ErrInvalidSchema indicates a schema document couldn't be loaded.
	ErrInvalidSchema = errors.New("invalid schema document")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and its schema documents.
type Context struct {
	// Dir is the project directory holding typegen.yaml.
	Dir string

	// Config is the loaded and validated configuration.
	Config *config.Config

	// Documents are the schema documents, sorted by module name.
	Documents []*schema.Document
}

// Path resolves p relative to the project directory.
func (c *Context) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// Document returns the document of module, or nil.
func (c *Context) Document(module string) *schema.Document {
	for _, d := range c.Documents {
		if d.Module == module {
			return d
		}
	}
	return nil
}

// Modules returns the module names in load order.
func (c *Context) Modules() []string {
	names := make([]string, len(c.Documents))
	for i, d := range c.Documents {
		names[i] = d.Module
	}
	return names
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the typegen Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current directory")
	}
	return LoadDir(ctx, cwd)
}

// LoadDir loads the project context rooted at dir.
func LoadDir(ctx context.Context, dir string) (context.Context, error) {
	configPath := filepath.Join(dir, config.FileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid configuration"), ErrInvalidConfig)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, errors.Mark(errors.Wrap(validateErr, "invalid configuration"), ErrInvalidConfig)
	}

	tgCtx := &Context{Dir: dir, Config: cfg}

	schemaDir := tgCtx.Path(cfg.Schemas)
	if info, statErr := os.Stat(schemaDir); statErr != nil || !info.IsDir() {
		return nil, errors.Wrapf(ErrSchemasNotFound, "%s", cfg.Schemas)
	}

	docs, err := schema.NewLoader(os.DirFS(schemaDir)).LoadDir(".")
	if err != nil {
		return nil, errors.Mark(err, ErrInvalidSchema)
	}
	tgCtx.Documents = docs

	logger.Logger.Debugw("project loaded", "dir", dir, "schemas", schemaDir, "modules", len(docs))

	return context.WithValue(ctx, contextKey{}, tgCtx), nil
}

// From extracts the typegen Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if tgCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return tgCtx
	}
	return nil
}
