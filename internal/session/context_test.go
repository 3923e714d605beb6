// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/typegen/internal/errors"
)

func TestLoadDir(t *testing.T) {
	tests := []struct {
		name        string
		dir         string // empty means use t.TempDir()
		wantErr     error
		wantModules []string // only checked if wantErr is nil
	}{
		{
			name:    "not initialized",
			dir:     "",
			wantErr: ErrNotInitialized,
		},
		{
			name:    "invalid config",
			dir:     "testdata/invalid-config",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "schemas not found",
			dir:     "testdata/missing-schemas",
			wantErr: ErrSchemasNotFound,
		},
		{
			name:    "invalid schema",
			dir:     "testdata/invalid-schema",
			wantErr: ErrInvalidSchema,
		},
		{
			name:        "valid",
			dir:         "testdata/valid",
			wantModules: []string{"guild", "user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.dir != "" {
				var err error
				dir, err = filepath.Abs(tt.dir)
				require.NoError(t, err)
			}

			ctx, err := LoadDir(context.Background(), dir)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			tgCtx := From(ctx)
			require.NotNil(t, tgCtx)
			assert.Equal(t, tt.wantModules, tgCtx.Modules())
			assert.Equal(t, filepath.Join(dir, "out"), tgCtx.Path(tgCtx.Config.Output))
			assert.NotNil(t, tgCtx.Document("user"))
			assert.Nil(t, tgCtx.Document("channel"))
		})
	}
}

func TestLoadDir_InvalidSchemaKeepsHint(t *testing.T) {
	dir, err := filepath.Abs("testdata/invalid-schema")
	require.NoError(t, err)

	_, err = LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSchemaInvariant))
	assert.Contains(t, errors.FlattenHints(err), "_structure")
}

func TestLoadDir_InvalidConfigMessage(t *testing.T) {
	dir, err := filepath.Abs("testdata/invalid-config")
	require.NoError(t, err)

	_, err = LoadDir(context.Background(), dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.True(t, strings.HasPrefix(err.Error(), "invalid configuration: "), "got %v", err)
}

func TestFrom_Empty(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
