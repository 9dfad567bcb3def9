// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/algoverse/algoverse-cli/pkg/clierrors"
	"github.com/algoverse/algoverse-cli/pkg/constants"
	"github.com/algoverse/algoverse-cli/pkg/ux"

	"github.com/spf13/cobra"
)

type UsageError struct {
	cmd *cobra.Command
	err error
}

func (e UsageError) Error() string {
	return fmt.Sprintf("Usage error: %s", e.err)
}

func (e UsageError) Unwrap() error {
	return e.err
}

func NewUsageError(cmd *cobra.Command, err error) UsageError {
	return UsageError{
		cmd: cmd,
		err: err,
	}
}

func NoArgs(cmd *cobra.Command, args []string) error {
	err := cobra.NoArgs(cmd, args)
	if err != nil {
		err = NewUsageError(cmd, err)
	}
	return err
}

func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := cobra.ExactArgs(n)(cmd, args)
		if err != nil {
			err = NewUsageError(cmd, err)
		}
		return err
	}
}

// HandleErrors reports err to the user and returns the process exit code.
// Usage errors print the command usage and exit with 2, an ExitError
// keeps the code it carries and anything else is a plain failure.
func HandleErrors(err error) int {
	if err == nil {
		return constants.ExitSuccess
	}
	var usageErr UsageError
	if errors.As(err, &usageErr) {
		usageErr.cmd.Println(usageErr.cmd.UsageString())
		usageErr.cmd.Println(usageErr)
		return constants.ExitUsage
	}
	var exitErr *clierrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			printError(exitErr.Err)
		}
		return exitErr.Code
	}
	printError(err)
	return constants.ExitFailure
}

// printError falls back to stderr when the failure happened before the
// user logger was set up.
func printError(err error) {
	if ux.Logger == nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return
	}
	ux.Logger.PrintErrToUser("Error: %s", err)
}

func CommandSuiteUsage(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return NewUsageError(
			cmd,
			fmt.Errorf("invalid subcommand %q", strings.Join(args, " ")),
		)
	}
	err := cmd.Help()
	if err != nil {
		fmt.Println(err)
	}
	return nil
}

func ConfigureRootCmd(cmd *cobra.Command) {
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return NewUsageError(cmd, err)
	})
}
