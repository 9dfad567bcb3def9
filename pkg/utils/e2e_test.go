// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsE2E(t *testing.T) {
	require := require.New(t)
	t.Setenv("RUN_E2E", "")
	require.False(IsE2E())
	t.Setenv("RUN_E2E", "true")
	require.True(IsE2E())
}

func TestRemoveLineCleanChars(t *testing.T) {
	require.Equal(t, "Running: npm run build", RemoveLineCleanChars("\r\x1b[KRunning: npm run build"))
}
