// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package registry

import (
	"testing"

	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sealed(t *testing.T, circular []string, modules map[string][]string) *Registry {
	t.Helper()
	r := New(circular)
	for m, keys := range modules {
		require.NoError(t, r.Declare(m, keys))
	}
	r.Seal()
	return r
}

func TestResolveModule(t *testing.T) {
	r := sealed(t, []string{"message_structure"}, map[string][]string{
		"channel": {"channel_structure", "channel_types_enum"},
		"user":    {"user_structure"},
		"dupe_a":  {"emoji_structure"},
		"dupe_b":  {"emoji_structure"},
	})

	tests := []struct {
		key      string
		want     string
		sentinel error
	}{
		{key: "channel_types_enum", want: "channel"},
		{key: "user_structure", want: "user"},
		{key: "message_structure", want: "message"},
		{key: "sticker_structure", sentinel: errors.ErrModuleNotFound},
		{key: "emoji_structure", sentinel: errors.ErrAmbiguousModule},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := r.ResolveModule(tt.key)
			if tt.sentinel != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.sentinel))
				assert.Contains(t, err.Error(), tt.key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveModule_CircularNeedsNoRegistry(t *testing.T) {
	r := New([]string{"message_structure"})

	// not sealed and nothing declared: circular keys still resolve
	got, err := r.ResolveModule("message_structure")
	require.NoError(t, err)
	assert.Equal(t, "message", got)

	_, err = r.ResolveModule("channel_structure")
	assert.True(t, errors.Is(err, ErrNotSealed))
}

func TestResolveModule_AmbiguousListsModules(t *testing.T) {
	r := sealed(t, nil, map[string][]string{
		"b": {"x_structure"},
		"a": {"x_structure"},
	})

	_, err := r.ResolveModule("x_structure")
	require.Error(t, err)
	assert.Contains(t, errors.FlattenDetails(err), "declared by modules a, b")
}

func TestDeclare_AfterSeal(t *testing.T) {
	r := New(nil)
	r.Seal()
	err := r.Declare("late", []string{"late_structure"})
	assert.True(t, errors.Is(err, ErrSealed))
}

func TestNeedsImport(t *testing.T) {
	r := New([]string{"message_structure"})

	primary := &artifact.Artifact{Module: "channel"}
	isolated := &artifact.Artifact{Module: "message", Isolated: "message_structure"}

	assert.False(t, r.NeedsImport(primary, "channel"))
	assert.True(t, r.NeedsImport(primary, "message"))
	assert.True(t, r.NeedsImport(primary, "user"))

	assert.False(t, r.NeedsImport(isolated, "message"))
	assert.True(t, r.NeedsImport(isolated, "channel"))
}

func TestLink(t *testing.T) {
	r := sealed(t, []string{"message_structure"}, map[string][]string{
		"channel": {"channel_structure", "message_structure"},
		"user":    {"user_structure"},
		"message": {"message_structure"},
	})

	deps := artifact.NewDeps().
		WithRef(artifact.TypeRef{Key: "user_structure", Name: "User"}).
		WithRef(artifact.TypeRef{Key: "channel_structure", Name: "Channel"}).
		WithRef(artifact.TypeRef{Key: "message_structure", Name: "Message"})

	isolated := &artifact.Artifact{Module: "message", Isolated: "message_structure", Deps: deps}
	require.NoError(t, r.Link(isolated))
	assert.Equal(t, []artifact.Import{
		{Module: "channel", Symbols: []string{"Channel"}},
		{Module: "user", Symbols: []string{"User"}},
	}, isolated.Imports)

	primary := &artifact.Artifact{Module: "channel", Deps: deps}
	require.NoError(t, r.Link(primary))
	assert.Equal(t, []artifact.Import{
		{Module: "message", Symbols: []string{"Message"}},
		{Module: "user", Symbols: []string{"User"}},
	}, primary.Imports)
}

func TestLink_MissingReference(t *testing.T) {
	r := sealed(t, nil, map[string][]string{"channel": {"channel_structure"}})

	a := &artifact.Artifact{
		Module: "channel",
		Deps:   artifact.NewDeps().WithRef(artifact.TypeRef{Key: "sticker_structure", Name: "Sticker"}),
	}
	err := r.Link(a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrModuleNotFound))
	assert.Contains(t, err.Error(), "module channel")
}

func TestDedicatedModule(t *testing.T) {
	assert.Equal(t, "message", DedicatedModule("message_structure"))
	assert.Equal(t, "thread_member", DedicatedModule("thread_member_structure"))
}
