// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCommand(t *testing.T) {
	testDir, err := filepath.Abs("testdata/valid")
	require.NoError(t, err)
	t.Chdir(testDir)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	// Before PreRunLoad
	assert.Nil(t, FromCommand(cmd))

	// After PreRunLoad
	require.NoError(t, PreRunLoad(cmd, nil))
	tgCtx := FromCommand(cmd)
	require.NotNil(t, tgCtx)
	assert.Equal(t, "schemas", tgCtx.Config.Schemas)
	assert.Len(t, tgCtx.Documents, 2)
}

func TestRequireFromCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  string // testdata path, empty means no setup needed
		loadFirst bool   // whether to call PreRunLoad before RequireFromCommand
		wantErr   bool
	}{
		{
			name:      "not loaded",
			setupDir:  "",
			loadFirst: false,
			wantErr:   true,
		},
		{
			name:      "loaded",
			setupDir:  "testdata/valid",
			loadFirst: true,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupDir != "" {
				testDir, err := filepath.Abs(tt.setupDir)
				require.NoError(t, err)
				t.Chdir(testDir)
			}

			cmd := &cobra.Command{}
			cmd.SetContext(context.Background())

			if tt.loadFirst {
				require.NoError(t, PreRunLoad(cmd, nil))
			}

			tgCtx, err := RequireFromCommand(cmd)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, tgCtx)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, tgCtx)
		})
	}
}
