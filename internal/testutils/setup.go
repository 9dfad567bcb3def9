// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"bytes"
	"io"
	"testing"

	"github.com/algoverse/algoverse-cli/pkg/toolrunner"
	"github.com/algoverse/algoverse-cli/pkg/ux"
	"github.com/fatih/color"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func SetupTest(t *testing.T) *require.Assertions {
	color.NoColor = true
	// use io.Discard to not print anything
	ux.NewUserLog(zap.NewNop(), io.Discard)
	return require.New(t)
}

// SetupCapturedUX returns a UserLog whose stdout and stderr both land in
// the returned buffer.
func SetupCapturedUX(t *testing.T) (*ux.UserLog, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	return ux.New(zap.NewNop(), &out, &out), &out
}

// ExitCode is a mock matcher return helper yielding a result with code
func ExitCode(code int) toolrunner.Result {
	return toolrunner.Result{ExitCode: code}
}

// CommandWithArgs matches a toolrunner.Command by its argv
func CommandWithArgs(argv ...string) interface{} {
	return mock.MatchedBy(func(cmd toolrunner.Command) bool {
		got := cmd.Argv()
		if len(got) != len(argv) {
			return false
		}
		for i := range got {
			if got[i] != argv[i] {
				return false
			}
		}
		return true
	})
}
