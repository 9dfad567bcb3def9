// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	CompileFlag        = "compile"
	BuildFlag          = "build"
	GenerateClientFlag = "generate-client"
	InstallFlag        = "install"
)

// OperationFlags are the contracts operation selectors. At most one may be set.
type OperationFlags struct {
	Compile        bool
	Build          bool
	GenerateClient bool
	Install        bool
}

func (o OperationFlags) Selected() []bool {
	return []bool{o.Compile, o.Build, o.GenerateClient, o.Install}
}

func AddOperationFlagsToCmd(cmd *cobra.Command, opFlags *OperationFlags) GroupedFlags {
	return RegisterFlagGroup(cmd, "Operation Flags (mutually exclusive)", func(set *pflag.FlagSet) {
		set.BoolVar(&opFlags.Compile, CompileFlag, false, "compile the contracts (default)")
		set.BoolVar(&opFlags.Build, BuildFlag, false, "run the full build")
		set.BoolVar(&opFlags.GenerateClient, GenerateClientFlag, false, "generate the typed contract clients")
		set.BoolVar(&opFlags.Install, InstallFlag, false, "install the node dependencies")
	})
}
