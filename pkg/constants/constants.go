// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	DefaultPerms755 = 0o755

	BaseDirName    = ".algoverse"
	LogDir         = "logs"
	LogName        = "algoverse"
	ConfigFileName = "config"
	ConfigFileType = "yaml"
	EnvPrefix      = "ALGOVERSE"

	DefaultLogLevel  = "ERROR"
	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	// Package manager and its build scripts
	DefaultNPMBinary            = "npm"
	DefaultDependencyDir        = "node_modules"
	DefaultCompileScript        = "compile-contract"
	DefaultBuildScript          = "build"
	DefaultGenerateClientScript = "generate-client"

	// Deployment
	DefaultAlgokitBinary   = "algokit"
	DefaultNetwork         = "TestNet"
	DefaultDeployerAddress = "I7N2JND35J2QNBO4XYDYRDUWPP7X7LJUMGDRBHQOTRPTQGZTOBFG7ZON7U"
	DefaultArtifactsDir    = "contracts/artifacts"

	HelloWorldContractName = "HelloWorld"
	HelloWorldAppID        = 2225
)
