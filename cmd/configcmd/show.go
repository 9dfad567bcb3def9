// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/algoverse/algoverse-cli/pkg/cobrautils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// algoverse config show
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration in effect as YAML, after applying the config file
and ALGOVERSE_ environment variables on top of the defaults.`,
		Args: cobrautils.NoArgs,
		RunE: showConfig,
	}
}

func showConfig(*cobra.Command, []string) error {
	settings, err := app.Conf.Settings()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("failed encoding configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if path := app.Conf.GetConfigPath(); path != "" {
		app.UX.PrintToUser("# %s", path)
	}
	app.UX.PrintToUser("%s", strings.TrimSuffix(buf.String(), "\n"))
	return nil
}
