// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/algoverse/algoverse-cli/internal/mocks"
	"github.com/algoverse/algoverse-cli/internal/testutils"
	"github.com/algoverse/algoverse-cli/pkg/application"
	"github.com/algoverse/algoverse-cli/pkg/clierrors"
	"github.com/algoverse/algoverse-cli/pkg/cobrautils"
	"github.com/algoverse/algoverse-cli/pkg/config"
	"github.com/algoverse/algoverse-cli/pkg/toolrunner"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func executeContracts(t *testing.T, runner *mocks.Runner, contractsDir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	testApp := application.NewTestApp(t, runner, &out)
	testApp.Conf.SetConfigValue(config.ContractsDirKey, contractsDir)
	cmd := NewCmd(testApp)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	err := cmd.Execute()
	return out.String(), err
}

func requireExitCode(require *require.Assertions, err error, code int) {
	var exitErr *clierrors.ExitError
	require.ErrorAs(err, &exitErr)
	require.Equal(code, exitErr.Code)
}

func TestContractsOperations(t *testing.T) {
	tests := []struct {
		name string
		args []string
		argv []string
	}{
		{name: "default compiles", args: nil, argv: []string{"npm", "run", "compile-contract"}},
		{name: "compile", args: []string{"--compile"}, argv: []string{"npm", "run", "compile-contract"}},
		{name: "build", args: []string{"--build"}, argv: []string{"npm", "run", "build"}},
		{name: "generate client", args: []string{"--generate-client"}, argv: []string{"npm", "run", "generate-client"}},
		{name: "install", args: []string{"--install"}, argv: []string{"npm", "install"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := testutils.SetupTest(t)
			dir := testutils.MakeContractsDir(require, t.TempDir(), true, false)
			runner := mocks.NewRunner(t)
			runner.On("Run", mock.Anything, testutils.CommandWithArgs(tt.argv...)).
				Return(testutils.ExitCode(0)).Once()

			_, err := executeContracts(t, runner, dir, tt.args...)
			require.NoError(err)
		})
	}
}

func TestContractsFailureExitsOne(t *testing.T) {
	require := testutils.SetupTest(t)
	dir := testutils.MakeContractsDir(require, t.TempDir(), true, false)
	runner := mocks.NewRunner(t)
	runner.On("Run", mock.Anything, testutils.CommandWithArgs("npm", "run", "build")).
		Return(testutils.ExitCode(3)).Once()

	_, err := executeContracts(t, runner, dir, "--build")
	requireExitCode(require, err, 1)
}

func TestContractsMutuallyExclusiveFlags(t *testing.T) {
	require := testutils.SetupTest(t)
	dir := testutils.MakeContractsDir(require, t.TempDir(), true, false)
	// no expectations: any process invocation fails the test
	runner := mocks.NewRunner(t)

	_, err := executeContracts(t, runner, dir, "--compile", "--build")
	var usageErr cobrautils.UsageError
	require.ErrorAs(err, &usageErr)
	require.Equal(2, cobrautils.HandleErrors(err))
}

func TestContractsUnknownFlag(t *testing.T) {
	require := testutils.SetupTest(t)
	runner := mocks.NewRunner(t)
	cmd := NewCmd(application.NewTestApp(t, runner, nil))
	cobrautils.ConfigureRootCmd(cmd)
	cmd.SetArgs([]string{"--deploy"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	var usageErr cobrautils.UsageError
	require.ErrorAs(cmd.Execute(), &usageErr)
}

func TestContractsMissingWorkingDir(t *testing.T) {
	require := testutils.SetupTest(t)
	runner := mocks.NewRunner(t)
	missing := filepath.Join(t.TempDir(), "nope")

	out, err := executeContracts(t, runner, t.TempDir(), "--cwd", missing)
	requireExitCode(require, err, 2)
	require.Contains(out, "Working directory does not exist: "+missing)
}

func TestContractsCwdOverridesContractsDir(t *testing.T) {
	require := testutils.SetupTest(t)
	dir := testutils.MakeContractsDir(require, t.TempDir(), true, false)
	runner := mocks.NewRunner(t)
	runner.On("Run", mock.Anything, testutils.CommandWithArgs("npm", "install")).
		Return(testutils.ExitCode(0)).Once()

	_, err := executeContracts(t, runner, filepath.Join(t.TempDir(), "unused"), "--install", "--cwd", dir)
	require.NoError(err)
	cmd := runner.Calls[0].Arguments.Get(1).(toolrunner.Command)
	require.Equal(dir, cmd.Dir)
}
