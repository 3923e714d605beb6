// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dacolabs/typegen/internal/errors"
)

func TestRegisterEmitters(t *testing.T) {
	assert.Equal(t, []string{"jsonschema", "python"}, RegisterEmitters().Available())
}

func TestDescribe(t *testing.T) {
	err := errors.WithHint(errors.WithDetail(errors.New("module user: resolve Guild"), "declared by modules a, b"), "rename one of the documents")

	assert.Equal(t,
		"module user: resolve Guild\n  detail: declared by modules a, b\n  hint: rename one of the documents",
		Describe(err))
}
