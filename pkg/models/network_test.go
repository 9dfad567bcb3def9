// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNetworkFromString(t *testing.T) {
	require := require.New(t)
	require.Equal(TestNet, NetworkFromString("TestNet"))
	require.Equal(TestNet, NetworkFromString("testnet"))
	require.Equal(MainNet, NetworkFromString("MAINNET"))
	require.Equal(LocalNet, NetworkFromString("LocalNet"))
	require.Equal(Undefined, NetworkFromString("fuji"))
	require.Equal("Unknown Network", Undefined.String())
}
