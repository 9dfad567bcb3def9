// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/algoverse/algoverse-cli/pkg/application"
	"github.com/algoverse/algoverse-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.Algoverse

func NewCmd(injectedApp *application.Algoverse) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration for Algoverse-CLI",
		Long:  `Inspect the configuration Algoverse-CLI resolves from its config file and environment`,
		Args:  cobra.ArbitraryArgs,
		RunE:  cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	cmd.AddCommand(newShowCmd())
	return cmd
}
