// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package clierrors

import (
	"errors"
	"fmt"
)

var (
	ErrWorkingDirNotFound = errors.New("working directory does not exist")
	ErrOperationFailed    = errors.New("operation failed")
)

// ExitError carries the process exit code a command settled on.
// Err may be nil when the failure has already been reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
