// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type GroupedFlags struct {
	Name    string
	FlagSet *pflag.FlagSet
}

// WithGroupedHelp returns a cobra-compatible help function that displays extra flag groups.
func WithGroupedHelp(groups []GroupedFlags) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, _ []string) {
		if cmd.Long != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", cmd.Long)
		}
		// Show normal usage help
		if err := cmd.Root().UsageFunc()(cmd); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error showing command usage: %v\n", err)
		}

		// Print each group section
		for _, group := range groups {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", group.Name)
			group.FlagSet.VisitAll(func(flag *pflag.Flag) {
				fmt.Fprintf(cmd.OutOrStdout(), "  --%s", flag.Name)
				if flag.Value.Type() != "bool" {
					fmt.Fprintf(cmd.OutOrStdout(), " %s", flag.Value.Type())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", flag.Usage)
			})
		}
	}
}

// RegisterFlagGroup adds the flags defined by defineFlags to cmd, hidden
// from the default flag listing so WithGroupedHelp can print them as a
// separate section.
func RegisterFlagGroup(cmd *cobra.Command, groupName string, defineFlags func(set *pflag.FlagSet)) GroupedFlags {
	// Create a new FlagSet for the group
	flagSet := pflag.NewFlagSet(groupName, pflag.ContinueOnError)

	// Let the caller define their flags in this flag set
	defineFlags(flagSet)

	// Add the flagSet to the cmd
	cmd.Flags().AddFlagSet(flagSet)

	flagSet.VisitAll(func(f *pflag.Flag) {
		cmd.Flags().Lookup(f.Name).Hidden = true
	})

	return GroupedFlags{
		Name:    groupName,
		FlagSet: flagSet,
	}
}
