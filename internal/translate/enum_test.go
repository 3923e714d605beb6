// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/dacolabs/typegen/internal/artifact"
	"github.com/dacolabs/typegen/internal/errors"
	"github.com/dacolabs/typegen/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalShift(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1 << 4", want: 16},
		{in: "1<<0", want: 1},
		{in: "ROLE_CREATE (1 << 0)", want: 1},
		{in: "1 << 3 (MANAGE_CHANNELS)", want: 8},
		{in: "3 << 2", want: 12},
		{in: "1 << 62", want: 1 << 62},
		{in: "1 << 63", wantErr: true},
		{in: "1 << x", wantErr: true},
		{in: "__import__('os') << 1", wantErr: true},
		{in: "1 << 2 << 3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := EvalShift(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrSchemaInvariant))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildEnum(t *testing.T) {
	tests := []struct {
		name   string
		member schema.Member
		want   artifact.Member
	}{
		{
			name:   "symbolic key numeric string value",
			member: schema.Member{Key: "GUILD_TEXT", Value: schema.Scalar{Text: "0"}},
			want:   artifact.Member{Name: "GUILD_TEXT", Value: artifact.Int("0")},
		},
		{
			name:   "numeric key swaps with symbolic value",
			member: schema.Member{Key: "1", Value: schema.Scalar{Text: "GUILD_UPDATE"}},
			want:   artifact.Member{Name: "GUILD_UPDATE", Value: artifact.Int("1")},
		},
		{
			name:   "bit-shift value",
			member: schema.Member{Key: "MANAGE_GUILD", Value: schema.Scalar{Text: "1 << 5"}},
			want:   artifact.Member{Name: "MANAGE_GUILD", Value: artifact.Int("32")},
		},
		{
			name:   "bit-shift key swaps",
			member: schema.Member{Key: "1 << 4", Value: schema.Scalar{Text: "GUILD_MEMBERS"}},
			want:   artifact.Member{Name: "GUILD_MEMBERS", Value: artifact.Int("16")},
		},
		{
			name:   "symbolic value is quoted",
			member: schema.Member{Key: "online", Value: schema.Scalar{Text: "online"}},
			want:   artifact.Member{Name: "ONLINE", Value: artifact.Str("online")},
		},
		{
			name:   "spaces and dollar prefix",
			member: schema.Member{Key: "$do not disturb", Value: schema.Scalar{Text: "dnd"}},
			want:   artifact.Member{Name: "DO_NOT_DISTURB", Value: artifact.Str("dnd")},
		},
		{
			name:   "number literal value",
			member: schema.Member{Key: "ROUND_ROBIN", Value: schema.Scalar{Text: "2", Numeric: true}},
			want:   artifact.Member{Name: "ROUND_ROBIN", Value: artifact.Int("2")},
		},
		{
			name:   "description becomes comment",
			member: schema.Member{Key: "DM", Value: schema.Scalar{Text: "1"}, Description: "a direct message"},
			want:   artifact.Member{Name: "DM", Value: artifact.Int("1"), Comments: []string{"a direct message"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members, err := BuildEnum(&schema.Enum{Name: "x_enum", Members: []schema.Member{tt.member}})
			require.NoError(t, err)
			require.Len(t, members, 1)
			assert.Equal(t, tt.want, members[0])
		})
	}
}

func TestBuildEnum_KeepsOrder(t *testing.T) {
	members, err := BuildEnum(&schema.Enum{Name: "x_enum", Members: []schema.Member{
		{Key: "C", Value: schema.Scalar{Text: "3"}},
		{Key: "A", Value: schema.Scalar{Text: "1"}},
		{Key: "B", Value: schema.Scalar{Text: "2"}},
	}})
	require.NoError(t, err)

	assert.Equal(t, "C", members[0].Name)
	assert.Equal(t, "A", members[1].Name)
	assert.Equal(t, "B", members[2].Name)
}

func TestBuildEnum_Errors(t *testing.T) {
	tests := []struct {
		name    string
		members []schema.Member
		wantMsg string
	}{
		{
			name:    "both sides numeric",
			members: []schema.Member{{Key: "1", Value: schema.Scalar{Text: "2"}}},
			wantMsg: "not a valid identifier",
		},
		{
			name:    "malformed shift",
			members: []schema.Member{{Key: "A", Value: schema.Scalar{Text: "1 << two"}}},
			wantMsg: "<integer> << <integer>",
		},
		{
			name: "duplicate names",
			members: []schema.Member{
				{Key: "A", Value: schema.Scalar{Text: "1"}},
				{Key: "a", Value: schema.Scalar{Text: "2"}},
			},
			wantMsg: "duplicate member A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildEnum(&schema.Enum{Name: "x_enum", Members: tt.members})
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrSchemaInvariant))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Contains(t, err.Error(), "x_enum")
		})
	}
}

func TestBuildAuditLogKeys(t *testing.T) {
	members, err := BuildAuditLogKeys(&schema.AuditLogKeys{
		Name: schema.AuditLogChangeKey,
		Keys: []schema.ChangeKey{
			{Key: "$add", ObjectChanged: "role", Type: "array<partial_role_structure>", Description: "new role added"},
			{Key: "afk_channel_id", ObjectChanged: "guild", Type: "snowflake", Description: "afk channel changed"},
		},
	})
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, "ADD", members[0].Name)
	assert.Equal(t, artifact.Str("$add"), members[0].Value)
	assert.Equal(t, []string{
		`a "role" just changed. the values are of type array<partial_role_structure>`,
		"description: new role added",
	}, members[0].Comments)

	assert.Equal(t, "AFK_CHANNEL_ID", members[1].Name)
	assert.Equal(t, artifact.Str("afk_channel_id"), members[1].Value)
}
