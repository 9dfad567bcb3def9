// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import "strings"

type Network int64

const (
	Undefined Network = iota
	MainNet
	TestNet
	LocalNet
)

func (s Network) String() string {
	switch s {
	case MainNet:
		return "MainNet"
	case TestNet:
		return "TestNet"
	case LocalNet:
		return "LocalNet"
	}
	return "Unknown Network"
}

// NetworkFromString accepts the canonical names case-insensitively
func NetworkFromString(s string) Network {
	switch {
	case strings.EqualFold(s, MainNet.String()):
		return MainNet
	case strings.EqualFold(s, TestNet.String()):
		return TestNet
	case strings.EqualFold(s, LocalNet.String()):
		return LocalNet
	}
	return Undefined
}
