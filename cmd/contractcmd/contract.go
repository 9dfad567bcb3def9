// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"errors"

	"github.com/algoverse/algoverse-cli/cmd/flags"
	"github.com/algoverse/algoverse-cli/pkg/application"
	"github.com/algoverse/algoverse-cli/pkg/clierrors"
	"github.com/algoverse/algoverse-cli/pkg/cobrautils"
	"github.com/algoverse/algoverse-cli/pkg/constants"
	"github.com/algoverse/algoverse-cli/pkg/contracts"
	"github.com/algoverse/algoverse-cli/pkg/utils"

	"github.com/spf13/cobra"
)

const cwdFlag = "cwd"

var (
	app *application.Algoverse

	errMutuallyExclusiveOperations = errors.New(
		"--compile, --build, --generate-client and --install are mutually exclusive",
	)
)

type contractFlags struct {
	operation flags.OperationFlags
	cwd       string
}

// algoverse contracts
func NewCmd(injectedApp *application.Algoverse) *cobra.Command {
	var cf contractFlags
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Compile, build or generate clients for the Algorand contracts",
		Long: `The contracts command runs the contracts project npm scripts.

Without a flag it compiles the contracts. Node dependencies are installed
first when the node_modules folder is missing, except for --install which
always runs npm install. The command runs in the contracts directory unless
--cwd is given.`,
		Args: cobrautils.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runContracts(cmd, cf)
		},
	}
	app = injectedApp
	cmd.Flags().StringVar(&cf.cwd, cwdFlag, "", "run in this directory instead of the contracts directory")
	operationGroup := flags.AddOperationFlagsToCmd(cmd, &cf.operation)
	cmd.SetHelpFunc(flags.WithGroupedHelp([]flags.GroupedFlags{operationGroup}))
	return cmd
}

func runContracts(cmd *cobra.Command, cf contractFlags) error {
	if !flags.EnsureMutuallyExclusive(cf.operation.Selected()) {
		return cobrautils.NewUsageError(cmd, errMutuallyExclusiveOperations)
	}
	op := contracts.OperationFromFlags(
		cf.operation.Compile,
		cf.operation.Build,
		cf.operation.GenerateClient,
		cf.operation.Install,
	)

	dir := app.Conf.ContractsDir()
	if cf.cwd != "" {
		dir = utils.ExpandHome(cf.cwd)
	}
	if !utils.DirectoryExists(app.Fs, dir) {
		app.UX.PrintErrToUser("Working directory does not exist: %s", dir)
		return clierrors.NewExitError(constants.ExitUsage, nil)
	}

	if code := app.NewOrchestrator().Run(cmd.Context(), op, dir); code != constants.ExitSuccess {
		return clierrors.NewExitError(code, nil)
	}
	return nil
}
