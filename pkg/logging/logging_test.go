// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestToLevel(t *testing.T) {
	require := require.New(t)

	level, err := ToLevel("ERROR")
	require.NoError(err)
	require.Equal(zapcore.ErrorLevel, level)

	level, err = ToLevel("debug")
	require.NoError(err)
	require.Equal(zapcore.DebugLevel, level)

	_, err = ToLevel("chatty")
	require.Error(err)
}

func TestNewWritesFileAndDisplay(t *testing.T) {
	require := require.New(t)
	dir := filepath.Join(t.TempDir(), "logs")
	var display bytes.Buffer

	log, closeFn, err := New(Config{
		Directory:     dir,
		Name:          "algoverse",
		LogLevel:      zapcore.InfoLevel,
		DisplayLevel:  zapcore.ErrorLevel,
		DisplayWriter: &display,
		MaxSize:       1,
		MaxFiles:      1,
	})
	require.NoError(err)

	log.Info("quiet on screen", zap.String("k", "v"))
	log.Error("loud on screen")
	require.NoError(closeFn())

	content, err := os.ReadFile(filepath.Join(dir, "algoverse.log"))
	require.NoError(err)
	require.Contains(string(content), "quiet on screen")
	require.Contains(string(content), "loud on screen")
	require.NotContains(display.String(), "quiet on screen")
	require.Contains(display.String(), "loud on screen")
}
