// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"os"
	"regexp"
)

var lineCleanChars = regexp.MustCompile(`\r\x1b\[K`)

// IsE2E checks if the environment variable "RUN_E2E" is set and returns true if it is, false otherwise.
func IsE2E() bool {
	return os.Getenv("RUN_E2E") != ""
}

// RemoveLineCleanChars strips the carriage return and erase line sequences
// spinners leave in captured output.
func RemoveLineCleanChars(s string) string {
	return lineCleanChars.ReplaceAllString(s, "")
}
