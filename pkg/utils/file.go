// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"os"
	"path/filepath"

	"github.com/kardianos/osext"
	"github.com/spf13/afero"
)

// DirectoryExists reports whether dirName exists on fs and is a directory.
func DirectoryExists(fs afero.Fs, dirName string) bool {
	info, err := fs.Stat(dirName)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// UserHomePath returns the absolute path of a file located in the user's home directory.
func UserHomePath(filePath ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(filePath...)
	}
	fullPath := append([]string{home}, filePath...)
	return filepath.Join(fullPath...)
}

// ExpandHome expands ~ symbol to home directory
func ExpandHome(path string) string {
	if path == "" {
		home, _ := os.UserHomeDir()
		return home
	}
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// ExecutableDir returns the folder holding the running binary, falling
// back to the current directory when it cannot be resolved.
func ExecutableDir() string {
	dir, err := osext.ExecutableFolder()
	if err != nil {
		return "."
	}
	return dir
}
