// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/algoverse/algoverse-cli/pkg/constants"
	"github.com/algoverse/algoverse-cli/pkg/ux"
	"go.uber.org/zap"
)

// Runner invokes external tools. Orchestration code depends on this
// interface so tests can script exit codes without a real toolchain.
type Runner interface {
	Run(ctx context.Context, cmd Command) Result
}

// ExecRunner runs commands as child processes, one at a time.
type ExecRunner struct {
	ux *ux.UserLog
	// ShowSpinner displays a spinner while the process runs
	ShowSpinner bool
}

func NewExecRunner(ul *ux.UserLog) *ExecRunner {
	return &ExecRunner{ux: ul}
}

// Run executes cmd synchronously, captures stdout and stderr fully and
// echoes them to the user once the process is gone. A program that cannot
// be found yields constants.ExitCommandNotFound instead of an error.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) Result {
	r.ux.PrintToUser("Running: %s (cwd=%s)", cmd, cmd.Dir)

	var stdout, stderr bytes.Buffer
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...) //nolint:gosec
	execCmd.Dir = cmd.Dir
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	start := time.Now()
	err := r.execute(execCmd, cmd)
	elapsed := time.Since(start)

	result := Result{
		ExitCode: exitCode(err),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Err:      err,
	}
	switch {
	case result.ExitCode == constants.ExitCommandNotFound && isNotFound(err):
		r.ux.PrintToUser("Command not found: %s", cmd.Program)
	case err != nil && result.ExitCode == constants.ExitFailure && !isExitError(err):
		r.ux.PrintToUser("Exception while running %s: %s", cmd.Program, err)
	}
	if result.Stdout != "" {
		r.ux.PrintToUser("%s", strings.TrimSuffix(result.Stdout, "\n"))
	}
	if result.Stderr != "" {
		r.ux.PrintErrToUser("%s", strings.TrimSuffix(result.Stderr, "\n"))
	}

	r.ux.Info("command finished",
		zap.Strings("argv", cmd.Argv()),
		zap.String("dir", cmd.Dir),
		zap.Int("exit-code", result.ExitCode),
		zap.String("elapsed", ux.FormatElapsed(elapsed)),
	)
	return result
}

func (r *ExecRunner) execute(execCmd *exec.Cmd, cmd Command) error {
	if !r.ShowSpinner {
		return execCmd.Run()
	}
	spinner := ux.NewUserSpinner(r.ux)
	sp := spinner.SpinToUser("%s", cmd)
	err := execCmd.Run()
	if err != nil {
		spinner.SpinFailWithError(sp, "", err)
	} else {
		spinner.SpinComplete(sp)
	}
	spinner.Stop()
	return err
}

func exitCode(err error) int {
	if err == nil {
		return constants.ExitSuccess
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 means the process was terminated by a signal
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
		return constants.ExitFailure
	}
	if isNotFound(err) {
		return constants.ExitCommandNotFound
	}
	return constants.ExitFailure
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
