// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

// Process exit codes reported by algoverse commands
const (
	ExitSuccess         = 0
	ExitFailure         = 1
	ExitUsage           = 2   // bad flags or missing working directory
	ExitCommandNotFound = 127 // mirrors the shell's "command not found"
)
