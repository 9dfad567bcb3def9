// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contracts

import (
	"context"

	"github.com/algoverse/algoverse-cli/pkg/constants"
	"github.com/algoverse/algoverse-cli/pkg/dependencies"
	"github.com/algoverse/algoverse-cli/pkg/toolrunner"
	"github.com/algoverse/algoverse-cli/pkg/ux"
	"go.uber.org/zap"
)

type Operation int

const (
	Compile Operation = iota
	Build
	GenerateClient
	Install
)

func (o Operation) String() string {
	switch o {
	case Compile:
		return "compile"
	case Build:
		return "build"
	case GenerateClient:
		return "generate-client"
	case Install:
		return "install"
	}
	return "unknown"
}

// OperationFromFlags picks the selected operation, defaulting to Compile.
// Callers reject more than one selector before getting here.
func OperationFromFlags(compile, build, generateClient, install bool) Operation {
	switch {
	case install:
		return Install
	case build:
		return Build
	case generateClient:
		return GenerateClient
	case compile:
		return Compile
	}
	return Compile
}

// Scripts are the package.json script names run for each operation
type Scripts struct {
	Compile        string `mapstructure:"compile-script" yaml:"compile-script"`
	Build          string `mapstructure:"build-script" yaml:"build-script"`
	GenerateClient string `mapstructure:"generate-client-script" yaml:"generate-client-script"`
}

func DefaultScripts() Scripts {
	return Scripts{
		Compile:        constants.DefaultCompileScript,
		Build:          constants.DefaultBuildScript,
		GenerateClient: constants.DefaultGenerateClientScript,
	}
}

// Orchestrator runs exactly one build operation per call.
type Orchestrator struct {
	runner  toolrunner.Runner
	deps    *dependencies.Checker
	ux      *ux.UserLog
	npm     string
	scripts Scripts
}

func NewOrchestrator(
	runner toolrunner.Runner,
	deps *dependencies.Checker,
	ul *ux.UserLog,
	npmBinary string,
	scripts Scripts,
) *Orchestrator {
	return &Orchestrator{
		runner:  runner,
		deps:    deps,
		ux:      ul,
		npm:     npmBinary,
		scripts: scripts,
	}
}

// CommandFor returns the external command op maps to
func (o *Orchestrator) CommandFor(op Operation, dir string) toolrunner.Command {
	switch op {
	case Build:
		return toolrunner.NewCommand(dir, o.npm, "run", o.scripts.Build)
	case GenerateClient:
		return toolrunner.NewCommand(dir, o.npm, "run", o.scripts.GenerateClient)
	case Install:
		return o.deps.InstallCommand(dir)
	default:
		return toolrunner.NewCommand(dir, o.npm, "run", o.scripts.Compile)
	}
}

// Run executes op in dir and returns the process exit code to report:
// constants.ExitSuccess when the mapped command exited zero, otherwise
// constants.ExitFailure. Every operation but Install first makes sure the
// node dependencies are present and aborts without running the build
// command when they cannot be installed.
func (o *Orchestrator) Run(ctx context.Context, op Operation, dir string) int {
	o.ux.Info("running contracts operation", zap.Stringer("operation", op), zap.String("dir", dir))
	if op != Install {
		if err := o.deps.Ensure(ctx, dir); err != nil {
			o.ux.Info("dependency precondition failed", zap.Error(err))
			o.ux.PrintToUser("Failed to install node dependencies. Aborting.")
			return constants.ExitFailure
		}
	}
	res := o.runner.Run(ctx, o.CommandFor(op, dir))
	if !res.Succeeded() {
		return constants.ExitFailure
	}
	return constants.ExitSuccess
}
