// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploycmd

import (
	"bytes"
	"testing"

	"github.com/algoverse/algoverse-cli/internal/mocks"
	"github.com/algoverse/algoverse-cli/internal/testutils"
	"github.com/algoverse/algoverse-cli/pkg/application"
	"github.com/algoverse/algoverse-cli/pkg/clierrors"
	"github.com/algoverse/algoverse-cli/pkg/config"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func executeDeploy(t *testing.T, runner *mocks.Runner, contractsDir string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	testApp := application.NewTestApp(t, runner, &out)
	testApp.Conf.SetConfigValue(config.ContractsDirKey, contractsDir)
	cmd := NewCmd(testApp)
	cmd.SetArgs(nil)
	cmd.SetOut(&out)
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

func TestDeployAllContracts(t *testing.T) {
	require := testutils.SetupTest(t)
	dir := testutils.MakeContractsDir(require, t.TempDir(), true, true)
	runner := mocks.NewRunner(t)
	runner.On("Run", mock.Anything, mock.Anything).Return(testutils.ExitCode(0)).Twice()

	out, err := executeDeploy(t, runner, dir)
	require.NoError(err)
	require.Contains(out, "Total contracts deployed: 3/3")
	require.Contains(out, "All contracts deployed successfully!")
}

func TestDeployPartialFailureExitsOne(t *testing.T) {
	require := testutils.SetupTest(t)
	dir := testutils.MakeContractsDir(require, t.TempDir(), true, true)
	runner := mocks.NewRunner(t)
	runner.On("Run", mock.Anything, mock.Anything).Return(testutils.ExitCode(1)).Once()
	runner.On("Run", mock.Anything, mock.Anything).Return(testutils.ExitCode(0)).Once()
	runner.On("Run", mock.Anything, mock.Anything).Return(testutils.ExitCode(1)).Times(3)

	out, err := executeDeploy(t, runner, dir)
	requireExitCode(require, err, 1)
	require.Contains(out, "Total contracts deployed: 2/3")
	require.Contains(out, "Some contracts failed to deploy. Please check the logs above.")
}

func TestDeployMissingArtifacts(t *testing.T) {
	require := testutils.SetupTest(t)
	dir := testutils.MakeContractsDir(require, t.TempDir(), true, false)
	runner := mocks.NewRunner(t)

	out, err := executeDeploy(t, runner, dir)
	requireExitCode(require, err, 1)
	require.Contains(out, "Contract artifacts not found. Please compile contracts first.")
	require.NotContains(out, "DEPLOYMENT SUMMARY")
}

func TestDeployRejectsArguments(t *testing.T) {
	require := testutils.SetupTest(t)
	cmd := NewCmd(application.NewTestApp(t, mocks.NewRunner(t), nil))
	cmd.SetArgs([]string{"OrganizerRegistry"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	require.Error(cmd.Execute())
}
