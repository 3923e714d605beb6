// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"
	"unicode"
)

// ToPascalCase converts a snake_case schema name to a declaration name:
// split on underscores, capitalize each segment, concatenate.
// "guild_scheduled_event" -> "GuildScheduledEvent".
func ToPascalCase(s string) string {
	var sb strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		runes := []rune(strings.ToLower(part))
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}
	return sb.String()
}

// DeclName returns the declaration name for a schema key, dropping its kind suffix.
func DeclName(key string) string {
	return ToPascalCase(trimKind(key))
}

// NormalizeSymbol converts an enum member key to a member name:
// spaces become underscores, letters are upper-cased and a leading "$" is dropped.
func NormalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ToUpper(s)
	return strings.TrimLeft(s, "$")
}

// IsIdentifier reports whether s is a valid identifier: a letter or underscore
// followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
