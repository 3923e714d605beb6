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

func fieldNames(fields []artifact.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func TestBuildFields_RequiredBeforeOptional(t *testing.T) {
	in := []schema.Field{
		{Name: "nick", Type: "string", Optional: true},
		{Name: "id", Type: "snowflake"},
		{Name: "avatar", Type: "string", Nullable: true},
		{Name: "roles", Type: "array<snowflake>", Optional: true},
		{Name: "joined_at", Type: "timestamp"},
	}

	fields, deps, err := BuildFields("guild_member_structure", in, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "avatar", "joined_at", "nick", "roles"}, fieldNames(fields))
	assert.ElementsMatch(t, []string{"nick", "id", "avatar", "roles", "joined_at"}, fieldNames(fields))

	assert.False(t, fields[0].Unset)
	assert.True(t, fields[3].Unset)
	assert.True(t, fields[4].Unset)

	assert.Equal(t, []artifact.Facility{
		artifact.FacilityContainers, artifact.FacilityDateTime, artifact.FacilityBase,
	}, deps.Facilities())
}

func TestBuildFields_OptionalNullableWrapping(t *testing.T) {
	fields, deps, err := BuildFields("x_structure", []schema.Field{
		{Name: "topic", Type: "string", Optional: true, Nullable: true},
	}, nil)
	require.NoError(t, err)

	require.Len(t, fields, 1)
	assert.Equal(t, "unset<nullable<string>>", fields[0].Type.String())
	assert.True(t, fields[0].Unset)
	assert.True(t, deps.Has(artifact.FacilityContainers))
	assert.True(t, deps.Has(artifact.FacilityBase))
}

func TestBuildFields_NullableOnly(t *testing.T) {
	fields, deps, err := BuildFields("x_structure", []schema.Field{
		{Name: "owner", Type: "user_structure", Nullable: true, Description: "the owner"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "nullable<User>", fields[0].Type.String())
	assert.False(t, fields[0].Unset)
	assert.Equal(t, "the owner", fields[0].Description)
	assert.False(t, deps.Has(artifact.FacilityBase))
	assert.Equal(t, []artifact.TypeRef{{Key: "user_structure", Name: "User"}}, deps.Refs())
}

func TestBuildFields_Override(t *testing.T) {
	overrides := Overrides{"audit_log_change_structure.key": "audit_log_change_key"}

	fields, deps, err := BuildFields("audit_log_change_structure", []schema.Field{
		{Name: "new_value", Type: "any", Optional: true},
		{Name: "key", Type: "string"},
	}, overrides)
	require.NoError(t, err)

	assert.Equal(t, "key", fields[0].Name)
	assert.Equal(t, "AuditLogChangeKey", fields[0].Type.String())
	assert.Equal(t, "audit_log_change_key", deps.Refs()[0].Key)
}

func TestBuildFields_Errors(t *testing.T) {
	tests := []struct {
		name     string
		fields   []schema.Field
		sentinel error
		wantMsg  string
	}{
		{
			name:     "unsupported type names entry and field",
			fields:   []schema.Field{{Name: "gizmo", Type: "frobnicator"}},
			sentinel: errors.ErrUnsupportedType,
			wantMsg:  "x_structure.gizmo",
		},
		{
			name:     "invalid field name",
			fields:   []schema.Field{{Name: "$os", Type: "string"}},
			sentinel: errors.ErrSchemaInvariant,
			wantMsg:  `"$os" is not a valid identifier`,
		},
		{
			name:     "duplicate field",
			fields:   []schema.Field{{Name: "a", Type: "string"}, {Name: "a", Type: "integer"}},
			sentinel: errors.ErrSchemaInvariant,
			wantMsg:  "duplicate field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := BuildFields("x_structure", tt.fields, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
