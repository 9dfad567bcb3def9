// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import "time"

const (
	contractsDirName = "algorand-contracts"
	commandTimeout   = 30 * time.Second

	OrganizerRegistry  = "OrganizerRegistry"
	ContributionLogger = "ContributionLogger"
)

// CLIBinary is set by the suite once the algoverse binary is built
var CLIBinary string
