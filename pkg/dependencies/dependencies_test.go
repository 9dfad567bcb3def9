// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dependencies

import (
	"context"
	"testing"

	"github.com/algoverse/algoverse-cli/internal/mocks"
	"github.com/algoverse/algoverse-cli/internal/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
)

const workDir = "/work/algorand-contracts"

var npmInstall = []string{"npm", "install"}

func TestEnsureWithDependenciesPresent(t *testing.T) {
	require := testutils.SetupTest(t)
	ul, out := testutils.SetupCapturedUX(t)
	fs := afero.NewMemMapFs()
	require.NoError(fs.MkdirAll(workDir+"/node_modules", 0o755))
	runner := mocks.NewRunner(t)

	checker := NewChecker(fs, runner, ul, "node_modules", npmInstall)

	require.NoError(checker.Ensure(context.Background(), workDir))
	runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
	require.Empty(out.String())
}

func TestEnsureInstallsWhenMissing(t *testing.T) {
	type test struct {
		name        string
		installCode int
		expectedErr error
	}

	tests := []test{
		{
			name:        "install succeeds",
			installCode: 0,
			expectedErr: nil,
		},
		{
			name:        "install fails",
			installCode: 1,
			expectedErr: ErrInstallFailed,
		},
		{
			name:        "npm missing",
			installCode: 127,
			expectedErr: ErrInstallFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := testutils.SetupTest(t)
			ul, out := testutils.SetupCapturedUX(t)
			fs := afero.NewMemMapFs()
			require.NoError(fs.MkdirAll(workDir, 0o755))
			runner := mocks.NewRunner(t)
			runner.On("Run", mock.Anything, testutils.CommandWithArgs("npm", "install")).
				Return(testutils.ExitCode(tt.installCode)).Once()

			checker := NewChecker(fs, runner, ul, "node_modules", npmInstall)
			err := checker.Ensure(context.Background(), workDir)

			if tt.expectedErr == nil {
				require.NoError(err)
			} else {
				require.ErrorIs(err, tt.expectedErr)
			}
			require.Contains(out.String(), "node_modules not found, running `npm install` to install dependencies...")
		})
	}
}

func TestInstallCommandRunsInDir(t *testing.T) {
	require := testutils.SetupTest(t)
	ul, _ := testutils.SetupCapturedUX(t)
	checker := NewChecker(afero.NewMemMapFs(), mocks.NewRunner(t), ul, "node_modules", npmInstall)

	cmd := checker.InstallCommand(workDir)

	require.Equal(workDir, cmd.Dir)
	require.Equal([]string{"npm", "install"}, cmd.Argv())
}

func TestInstalledIgnoresPlainFile(t *testing.T) {
	require := testutils.SetupTest(t)
	ul, _ := testutils.SetupCapturedUX(t)
	fs := afero.NewMemMapFs()
	require.NoError(afero.WriteFile(fs, workDir+"/node_modules", []byte("not a dir"), 0o644))

	checker := NewChecker(fs, mocks.NewRunner(t), ul, "node_modules", npmInstall)

	require.False(checker.Installed(workDir))
}
