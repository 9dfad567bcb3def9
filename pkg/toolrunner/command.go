// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package toolrunner

import (
	"slices"

	"github.com/kballard/go-shellquote"
)

// Command is a program, its arguments and the directory it runs in.
type Command struct {
	Program string
	Args    []string
	Dir     string
}

func NewCommand(dir string, program string, args ...string) Command {
	return Command{
		Program: program,
		Args:    slices.Clone(args),
		Dir:     dir,
	}
}

// Argv returns the program followed by its arguments
func (c Command) Argv() []string {
	return append([]string{c.Program}, c.Args...)
}

// String renders the command line the way a shell user would type it
func (c Command) String() string {
	return shellquote.Join(c.Argv()...)
}

// Result is what the runner observed from one process execution.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	// Err is the spawn or wait error, nil on a zero exit
	Err error
}

func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}
