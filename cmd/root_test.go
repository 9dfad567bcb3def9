// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/algoverse/algoverse-cli/internal/testutils"
	"github.com/stretchr/testify/require"
)

// setupHome points HOME at a temp dir and puts a bin dir for fake tools
// first on PATH.
func setupHome(t *testing.T) (*require.Assertions, string) {
	require := testutils.SetupTest(t)
	home := t.TempDir()
	binDir := filepath.Join(home, "bin")
	require.NoError(os.MkdirAll(binDir, 0o755))
	t.Setenv("HOME", home)
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return require, binDir
}

func TestExecuteCreatesLogFile(t *testing.T) {
	require, _ := setupHome(t)
	dir := testutils.MakeContractsDir(require, t.TempDir(), true, false)
	t.Setenv("ALGOVERSE_CONTRACTS_DIR", dir)

	require.Equal(0, execute([]string{"config", "show"}))
	require.FileExists(filepath.Join(os.Getenv("HOME"), ".algoverse", "logs", "algoverse.log"))
}

func TestExecuteExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		npmBody  string
		expected int
	}{
		{name: "compile succeeds", args: []string{"contracts"}, npmBody: "exit 0", expected: 0},
		{name: "build fails", args: []string{"contracts", "--build"}, npmBody: "exit 4", expected: 1},
		{name: "two selectors", args: []string{"contracts", "--build", "--install"}, npmBody: "exit 0", expected: 2},
		{name: "unknown flag", args: []string{"contracts", "--publish"}, npmBody: "exit 0", expected: 2},
		{name: "unknown subcommand", args: []string{"publish"}, npmBody: "exit 0", expected: 2},
		{name: "bad log level", args: []string{"--log-level", "chatty", "contracts"}, npmBody: "exit 0", expected: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require, binDir := setupHome(t)
			dir := testutils.MakeContractsDir(require, t.TempDir(), true, false)
			t.Setenv("ALGOVERSE_CONTRACTS_DIR", dir)
			testutils.WriteFakeTool(require, binDir, "npm", tt.npmBody)

			require.Equal(tt.expected, execute(tt.args))
			if tt.expected == 2 {
				require.Empty(testutils.ToolCalls(require, binDir, "npm"))
			}
		})
	}
}

func TestExecuteMissingWorkingDir(t *testing.T) {
	require, binDir := setupHome(t)
	testutils.WriteFakeTool(require, binDir, "npm", "exit 0")

	code := execute([]string{"contracts", "--cwd", filepath.Join(t.TempDir(), "missing")})
	require.Equal(2, code)
	require.Empty(testutils.ToolCalls(require, binDir, "npm"))
}

func TestExecuteInstallsMissingDependencies(t *testing.T) {
	require, binDir := setupHome(t)
	dir := testutils.MakeContractsDir(require, t.TempDir(), false, false)
	testutils.WriteFakeTool(require, binDir, "npm", "exit 0")

	require.Equal(0, execute([]string{"contracts", "--generate-client", "--cwd", dir}))
	require.Equal([]string{"install", "run generate-client"}, testutils.ToolCalls(require, binDir, "npm"))
}

func TestExecuteDeployWithConfigFile(t *testing.T) {
	require, binDir := setupHome(t)
	dir := testutils.MakeContractsDir(require, t.TempDir(), true, true)
	testutils.WriteFakeTool(require, binDir, "algokit", `case "$*" in *Beta*) exit 1;; esac`)
	cfg := filepath.Join(t.TempDir(), "algoverse.yaml")
	require.NoError(os.WriteFile(cfg, []byte(`
contracts-dir: `+dir+`
deploy:
  contracts:
    - name: Alpha
      description: first
    - name: Beta
      description: second
  candidates:
    - ["algokit", "deploy", "{{.Name}}"]
`), 0o600))

	require.Equal(1, execute([]string{"--config", cfg, "deploy"}))
	require.Equal([]string{"deploy Alpha", "deploy Beta"}, testutils.ToolCalls(require, binDir, "algokit"))
}
