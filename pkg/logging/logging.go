// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config mirrors the knobs the CLI exposes for its log files.
type Config struct {
	Directory    string
	Name         string
	LogLevel     zapcore.Level
	DisplayLevel zapcore.Level
	// DisplayWriter receives log lines at or above DisplayLevel. Defaults to stderr.
	DisplayWriter io.Writer
	MaxSize       int // megabytes
	MaxFiles      int
	MaxAge        int // days, 0 keeps every file
}

// ToLevel parses level names such as "info" or "ERROR".
func ToLevel(l string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(l))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", l)
	}
	return level, nil
}

// New builds a logger writing JSON lines to a rotated file under
// cfg.Directory and human readable lines to the display writer.
// The returned close func flushes and releases the log file.
func New(cfg Config) (*zap.Logger, func() error, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed creating log directory: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Directory, cfg.Name+".log"),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxFiles,
		MaxAge:     cfg.MaxAge,
	}

	fileEncoderCfg := zap.NewProductionEncoderConfig()
	fileEncoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(fileEncoderCfg),
		zapcore.AddSync(rotator),
		cfg.LogLevel,
	)

	display := cfg.DisplayWriter
	if display == nil {
		display = os.Stderr
	}
	displayEncoderCfg := zap.NewDevelopmentEncoderConfig()
	displayEncoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	displayCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(displayEncoderCfg),
		zapcore.AddSync(display),
		cfg.DisplayLevel,
	)

	log := zap.New(zapcore.NewTee(fileCore, displayCore)).Named(cfg.Name)
	closeFn := func() error {
		_ = log.Sync()
		return rotator.Close()
	}
	return log, closeFn, nil
}
