// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/algoverse/algoverse-cli/pkg/config"
	"github.com/algoverse/algoverse-cli/pkg/constants"
	"github.com/algoverse/algoverse-cli/pkg/contracts"
	"github.com/algoverse/algoverse-cli/pkg/dependencies"
	"github.com/algoverse/algoverse-cli/pkg/deploy"
	"github.com/algoverse/algoverse-cli/pkg/toolrunner"
	"github.com/algoverse/algoverse-cli/pkg/ux"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Algoverse struct {
	Log     *zap.Logger
	UX      *ux.UserLog
	Conf    *config.Config
	Fs      afero.Fs
	Runner  toolrunner.Runner
	baseDir string
}

func New() *Algoverse {
	return &Algoverse{}
}

func (app *Algoverse) Setup(
	baseDir string,
	log *zap.Logger,
	conf *config.Config,
	ul *ux.UserLog,
	fs afero.Fs,
	runner toolrunner.Runner,
) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.UX = ul
	app.Fs = fs
	app.Runner = runner
}

func (app *Algoverse) GetBaseDir() string {
	return app.baseDir
}

func (app *Algoverse) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

// GetDefaultConfigPath is used when --config is not given
func (app *Algoverse) GetDefaultConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFileName+"."+constants.ConfigFileType)
}

// NewDependencyChecker wires the node dependency check for the contracts project
func (app *Algoverse) NewDependencyChecker() *dependencies.Checker {
	return dependencies.NewChecker(
		app.Fs,
		app.Runner,
		app.UX,
		app.Conf.DependencyDir(),
		app.Conf.InstallCommand(),
	)
}

func (app *Algoverse) NewOrchestrator() *contracts.Orchestrator {
	return contracts.NewOrchestrator(
		app.Runner,
		app.NewDependencyChecker(),
		app.UX,
		app.Conf.NPMBinary(),
		app.Conf.BuildScripts(),
	)
}

func (app *Algoverse) NewSequencer(plan deploy.Plan, dir string) *deploy.Sequencer {
	return deploy.NewSequencer(app.Fs, app.Runner, app.UX, plan, dir)
}
