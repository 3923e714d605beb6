// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/logger"
	"github.com/dacolabs/typegen/internal/registry"
	"github.com/dacolabs/typegen/internal/schema"
)

// Result is the outcome of a run: every linked artifact, in document order,
// and the sealed registry they were linked against.
type Result struct {
	Artifacts []*artifact.Artifact
	Registry  *registry.Registry
}

// Run generates and links the artifacts of all documents in two phases.
// Every document is generated and its artifacts declared before the registry
// is sealed; only then are references resolved to imports. Documents are
// processed concurrently, up to workers at a time (GOMAXPROCS when workers
// is not positive). When several documents fail, the error of the first one
// in input order is returned.
func Run(ctx context.Context, docs []*schema.Document, opts Options, workers int) (*Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g := New(opts)
	reg := registry.New(opts.Circular)

	perDoc := make([][]*artifact.Artifact, len(docs))
	err := forEach(ctx, len(docs), workers, func(i int) error {
		arts, err := g.Module(docs[i])
		if err != nil {
			return err
		}
		for _, a := range arts {
			if err := reg.DeclareArtifact(a); err != nil {
				return err
			}
		}
		perDoc[i] = arts
		return nil
	})
	if err != nil {
		return nil, err
	}

	var arts []*artifact.Artifact
	seen := make(map[string]string)
	for _, batch := range perDoc {
		for _, a := range batch {
			if prev, dup := seen[a.Module]; dup {
				return nil, errors.WithHint(
					errors.Newf("module %s is generated from both %s and %s", a.Module, prev, a.Source),
					"rename the schema file or remove the type from the circular list")
			}
			seen[a.Module] = a.Source
			arts = append(arts, a)
		}
	}

	reg.Seal()
	logger.Logger.Debugw("registry sealed", "modules", reg.Modules())

	err = forEach(ctx, len(arts), workers, func(i int) error {
		if err := reg.Link(arts[i]); err != nil {
			return err
		}
		logger.Logger.Infow("artifact linked", "module", arts[i].Module, "imports", len(arts[i].Imports))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Result{Artifacts: arts, Registry: reg}, nil
}

// forEach runs fn for 0..n-1 with at most workers in flight and returns the
// lowest-indexed error, so the reported failure does not depend on scheduling.
func forEach(ctx context.Context, n, workers int, fn func(i int) error) error {
	errs := make([]error, n)

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range n {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = fn(i)
			return nil
		})
	}
	_ = eg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
