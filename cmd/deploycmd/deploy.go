// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploycmd

import (
	"errors"

	"github.com/algoverse/algoverse-cli/pkg/application"
	"github.com/algoverse/algoverse-cli/pkg/clierrors"
	"github.com/algoverse/algoverse-cli/pkg/cobrautils"
	"github.com/algoverse/algoverse-cli/pkg/constants"
	"github.com/algoverse/algoverse-cli/pkg/deploy"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var app *application.Algoverse

// algoverse deploy
func NewCmd(injectedApp *application.Algoverse) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the Algorand contracts to TestNet",
		Long: `The deploy command deploys each configured contract in order.

For every contract the candidate commands are tried one after the other
until one succeeds. A contract whose candidates all fail is reported and
the next contract is attempted. The contracts must be compiled first.`,
		Args: cobrautils.NoArgs,
		RunE: deployContracts,
	}
	app = injectedApp
	return cmd
}

func deployContracts(cmd *cobra.Command, _ []string) error {
	plan, err := app.Conf.DeployPlan()
	if err != nil {
		return err
	}
	dir := app.Conf.ContractsDir()
	report, err := app.NewSequencer(plan, dir).Run(cmd.Context())
	if errors.Is(err, deploy.ErrArtifactsNotFound) {
		return clierrors.NewExitError(constants.ExitFailure, nil)
	}
	if err != nil {
		return err
	}
	app.Log.Info("deployment finished",
		zap.Int("deployed", report.TotalDeployed()),
		zap.Int("expected", report.TotalExpected()),
	)
	if !report.Success() {
		return clierrors.NewExitError(constants.ExitFailure, nil)
	}
	return nil
}
