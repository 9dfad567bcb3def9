// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"io"
	"testing"

	"github.com/algoverse/algoverse-cli/pkg/config"
	"github.com/algoverse/algoverse-cli/pkg/toolrunner"
	"github.com/algoverse/algoverse-cli/pkg/ux"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// NewTestApp returns an app rooted in a temp dir whose user output goes to out.
// A nil out discards it.
func NewTestApp(t *testing.T, runner toolrunner.Runner, out io.Writer) *Algoverse {
	if out == nil {
		out = io.Discard
	}
	log := zap.NewNop()
	app := New()
	app.Setup(t.TempDir(), log, config.New(), ux.New(log, out, out), afero.NewOsFs(), runner)
	return app
}
