// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/typegen/internal/artifact"
)

func emitDefs(t *testing.T, a *artifact.Artifact) map[string]any {
	t.Helper()

	out, err := (&Emitter{}).Emit(a)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, Draft, doc["$schema"])
	assert.Equal(t, a.Module+".schema.json", doc["$id"])

	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok, "missing $defs")
	return defs
}

func TestEmit_Record(t *testing.T) {
	a := &artifact.Artifact{
		Module: "user",
		Decls: []artifact.Decl{
			{
				Kind: artifact.DeclRecord,
				Key:  "user_structure",
				Name: "User",
				Fields: []artifact.Field{
					{Name: "id", Type: artifact.Prim(artifact.PrimSnowflake), Description: "the user's id"},
					{Name: "created", Type: artifact.Prim(artifact.PrimTimestamp)},
					{Name: "guild", Type: artifact.Ref("Guild")},
					{Name: "flags", Type: artifact.Ref("UserFlag")},
					{
						Name:  "bio",
						Type:  artifact.UnsetOf(artifact.NullableOf(artifact.Prim(artifact.PrimString))),
						Unset: true,
					},
				},
			},
			{
				Kind:    artifact.DeclEnum,
				Key:     "user_flag_enum",
				Name:    "UserFlag",
				Members: []artifact.Member{{Name: "STAFF", Value: artifact.Int("1")}},
			},
		},
	}
	a.AddImport("guild", "Guild")

	defs := emitDefs(t, a)
	user := defs["User"].(map[string]any)
	assert.Equal(t, "object", user["type"])
	assert.Equal(t, []any{"id", "created", "guild", "flags"}, user["required"])

	props := user["properties"].(map[string]any)
	id := props["id"].(map[string]any)
	assert.Equal(t, "^[0-9]+$", id["pattern"])
	assert.Equal(t, "the user's id", id["description"])
	assert.Equal(t, "date-time", props["created"].(map[string]any)["format"])
	assert.Equal(t, "guild.schema.json#/$defs/Guild", props["guild"].(map[string]any)["$ref"])
	assert.Equal(t, "#/$defs/UserFlag", props["flags"].(map[string]any)["$ref"])

	bio := props["bio"].(map[string]any)
	require.Len(t, bio["anyOf"], 2)
	assert.Equal(t, map[string]any{"type": "null"}, bio["anyOf"].([]any)[1])
}

func TestEmit_Containers(t *testing.T) {
	a := &artifact.Artifact{
		Module: "misc",
		Decls: []artifact.Decl{{
			Kind: artifact.DeclRecord,
			Key:  "misc_structure",
			Name: "Misc",
			Fields: []artifact.Field{
				{Name: "grid", Type: artifact.SequenceOf(artifact.SequenceOf(artifact.Prim(artifact.PrimInteger)))},
				{Name: "size", Type: artifact.TupleOf(artifact.Prim(artifact.PrimInteger), artifact.Prim(artifact.PrimInteger))},
				{Name: "either", Type: artifact.UnionOf(artifact.Prim(artifact.PrimString), artifact.Prim(artifact.PrimInteger))},
				{Name: "extra", Type: artifact.OpaqueMap()},
			},
		}},
	}

	props := emitDefs(t, a)["Misc"].(map[string]any)["properties"].(map[string]any)

	grid := props["grid"].(map[string]any)
	assert.Equal(t, "array", grid["type"])
	assert.Equal(t, "array", grid["items"].(map[string]any)["type"])

	size := props["size"].(map[string]any)
	assert.Len(t, size["prefixItems"], 2)
	assert.EqualValues(t, 2, size["minItems"])
	assert.EqualValues(t, 2, size["maxItems"])

	assert.Len(t, props["either"].(map[string]any)["anyOf"], 2)
	assert.Equal(t, "object", props["extra"].(map[string]any)["type"])
}

func TestEmit_Enums(t *testing.T) {
	a := &artifact.Artifact{
		Module: "enums",
		Decls: []artifact.Decl{
			{
				Kind: artifact.DeclEnum,
				Name: "Permission",
				Members: []artifact.Member{
					{Name: "A", Value: artifact.Int("1")},
					{Name: "B", Value: artifact.Int("16")},
				},
			},
			{
				Kind:    artifact.DeclEnum,
				Name:    "Status",
				Members: []artifact.Member{{Name: "ONLINE", Value: artifact.Str("online")}},
			},
		},
	}

	defs := emitDefs(t, a)
	perm := defs["Permission"].(map[string]any)
	assert.Equal(t, "integer", perm["type"])
	assert.Equal(t, []any{float64(1), float64(16)}, perm["enum"])

	status := defs["Status"].(map[string]any)
	assert.Equal(t, "string", status["type"])
	assert.Equal(t, []any{"online"}, status["enum"])
}

func TestEmit_UnresolvedReference(t *testing.T) {
	a := &artifact.Artifact{
		Module: "broken",
		Decls: []artifact.Decl{{
			Kind:   artifact.DeclRecord,
			Name:   "Broken",
			Fields: []artifact.Field{{Name: "x", Type: artifact.Ref("Missing")}},
		}},
	}

	_, err := (&Emitter{}).Emit(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unresolved reference Missing")
}
