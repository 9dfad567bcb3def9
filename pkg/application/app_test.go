// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/algoverse/algoverse-cli/internal/mocks"
	"github.com/algoverse/algoverse-cli/pkg/config"
	"github.com/algoverse/algoverse-cli/pkg/contracts"
	"github.com/algoverse/algoverse-cli/pkg/toolrunner"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	require := require.New(t)
	app := NewTestApp(t, nil, nil)

	require.Equal(filepath.Join(app.GetBaseDir(), "logs"), app.GetLogDir())
	require.Equal(filepath.Join(app.GetBaseDir(), "config.yaml"), app.GetDefaultConfigPath())
}

func TestOrchestratorUsesConfiguredTools(t *testing.T) {
	require := require.New(t)
	runner := mocks.NewRunner(t)
	var out bytes.Buffer
	app := NewTestApp(t, runner, &out)
	app.Conf.SetConfigValue(config.NPMBinaryKey, "pnpm")
	app.Conf.SetConfigValue(config.BuildScriptKey, "bundle")

	dir := t.TempDir()
	runner.On("Run", mock.Anything, mock.MatchedBy(func(cmd toolrunner.Command) bool {
		return cmd.String() == "pnpm install"
	})).Return(toolrunner.Result{}).Once()
	runner.On("Run", mock.Anything, mock.MatchedBy(func(cmd toolrunner.Command) bool {
		return cmd.String() == "pnpm run bundle" && cmd.Dir == dir
	})).Return(toolrunner.Result{}).Once()

	code := app.NewOrchestrator().Run(context.Background(), contracts.Build, dir)
	require.Equal(0, code)
	require.Contains(out.String(), "node_modules not found")
}
