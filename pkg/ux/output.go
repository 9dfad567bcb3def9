// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"go.uber.org/zap"
)

var Logger *UserLog

type UserLog struct {
	log       *zap.Logger
	Writer    io.Writer
	ErrWriter io.Writer
}

// New returns a UserLog printing to out/errOut and mirroring every
// message into log.
func New(log *zap.Logger, out io.Writer, errOut io.Writer) *UserLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserLog{
		log:       log,
		Writer:    out,
		ErrWriter: errOut,
	}
}

// NewUserLog sets up the global user facing logger once.
func NewUserLog(log *zap.Logger, userwriter io.Writer) {
	if Logger == nil {
		Logger = New(log, userwriter, os.Stderr)
	}
}

// PrintToUser prints msg directly on the screen, but also to log file
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintln(ul.Writer, formatted)
	ul.log.Info(formatted)
}

// PrintErrToUser prints msg on the error stream, but also to log file
func (ul *UserLog) PrintErrToUser(msg string, args ...interface{}) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintln(ul.ErrWriter, formatted)
	ul.log.Warn(formatted)
}

// Info prints to the log file
func (ul *UserLog) Info(msg string, fields ...zap.Field) {
	ul.log.Info(msg, fields...)
}

// GreenCheckmarkToUser prints a green checkmark to the user before the message
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	checkmark := "✓"
	green := color.New(color.FgHiGreen).SprintFunc()
	ul.PrintToUser(green(checkmark)+" "+msg, args...)
}

func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	xmark := "✗"
	red := color.New(color.FgHiRed).SprintFunc()
	ul.PrintToUser(red(xmark)+" "+msg, args...)
}

func (ul *UserLog) YellowWarningToUser(msg string, args ...interface{}) {
	yellow := color.New(color.FgHiYellow).SprintFunc()
	ul.PrintToUser(yellow("!")+" "+msg, args...)
}

// PrintWrapped prints msg wrapped at width columns
func (ul *UserLog) PrintWrapped(width uint, msg string, args ...interface{}) {
	wrapped := wordwrap.WrapString(fmt.Sprintf(msg, args...), width)
	for _, line := range strings.Split(wrapped, "\n") {
		ul.PrintToUser("%s", line)
	}
}

func (ul *UserLog) PrintLineSeparator() {
	ul.PrintToUser("==============================================")
}

// PrintWideSeparator prints the separator framing each deployment step
func (ul *UserLog) PrintWideSeparator() {
	ul.PrintToUser(strings.Repeat("=", 60))
}
