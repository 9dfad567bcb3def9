// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/stretchr/testify/require"
)

// WriteFakeTool installs an executable shell script called name into
// binDir. The script appends its arguments to <binDir>/<name>.calls and
// then runs body.
func WriteFakeTool(require *require.Assertions, binDir string, name string, body string) string {
	require.NoError(os.MkdirAll(binDir, 0o755))
	callsFile := filepath.Join(binDir, name+".calls")
	script := strings.Join([]string{
		"#!/bin/sh",
		`echo "$@" >> "` + callsFile + `"`,
		body,
		"",
	}, "\n")
	toolPath := filepath.Join(binDir, name)
	require.NoError(os.WriteFile(toolPath, []byte(script), 0o755)) //nolint:gosec
	return toolPath
}

// ToolCalls returns the argument lines recorded by a fake tool, in order.
func ToolCalls(require *require.Assertions, binDir string, name string) []string {
	content, err := os.ReadFile(filepath.Join(binDir, name+".calls"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(err)
	trimmed := strings.TrimSuffix(string(content), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// MakeContractsDir creates a contracts project layout under root and
// returns its path.
func MakeContractsDir(require *require.Assertions, root string, withDependencies bool, withArtifacts bool) string {
	dir := filepath.Join(root, "algorand-contracts")
	require.NoError(os.MkdirAll(filepath.Join(dir, "contracts"), 0o755))
	require.NoError(os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}\n"), 0o644)) //nolint:gosec
	if withDependencies {
		require.NoError(os.MkdirAll(filepath.Join(dir, "node_modules"), 0o755))
	}
	if withArtifacts {
		require.NoError(os.MkdirAll(filepath.Join(dir, "contracts", "artifacts"), 0o755))
	}
	return dir
}
