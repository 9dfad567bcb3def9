// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package dependencies

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/algoverse/algoverse-cli/pkg/toolrunner"
	"github.com/algoverse/algoverse-cli/pkg/utils"
	"github.com/algoverse/algoverse-cli/pkg/ux"
	"github.com/spf13/afero"
)

var ErrInstallFailed = errors.New("failed to install node dependencies")

// Checker gates build operations on the presence of the package
// manager's dependency directory, installing it when missing.
type Checker struct {
	fs         afero.Fs
	runner     toolrunner.Runner
	ux         *ux.UserLog
	depDir     string
	installCmd []string
}

// NewChecker returns a Checker looking for depDir (e.g. node_modules)
// and running installCmd (e.g. npm install) when it is absent.
func NewChecker(
	fs afero.Fs,
	runner toolrunner.Runner,
	ul *ux.UserLog,
	depDir string,
	installCmd []string,
) *Checker {
	return &Checker{
		fs:         fs,
		runner:     runner,
		ux:         ul,
		depDir:     depDir,
		installCmd: installCmd,
	}
}

// Installed reports whether dir already holds the dependency directory.
// Only existence is checked, never the contents.
func (c *Checker) Installed(dir string) bool {
	return utils.DirectoryExists(c.fs, filepath.Join(dir, c.depDir))
}

// InstallCommand returns the install command bound to dir
func (c *Checker) InstallCommand(dir string) toolrunner.Command {
	return toolrunner.NewCommand(dir, c.installCmd[0], c.installCmd[1:]...)
}

// Ensure succeeds immediately when dependencies are present. Otherwise it
// runs the install command once and succeeds only on a zero exit code.
func (c *Checker) Ensure(ctx context.Context, dir string) error {
	if c.Installed(dir) {
		return nil
	}
	c.ux.PrintToUser(
		"%s not found, running `%s` to install dependencies...",
		c.depDir,
		strings.Join(c.installCmd, " "),
	)
	res := c.runner.Run(ctx, c.InstallCommand(dir))
	if !res.Succeeded() {
		return fmt.Errorf("%w: %s exited with code %d", ErrInstallFailed, c.installCmd[0], res.ExitCode)
	}
	return nil
}
