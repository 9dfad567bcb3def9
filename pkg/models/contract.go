// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

// ContractDescriptor names one contract the deployer handles. Candidates,
// when set, replaces the plan-wide candidate command list for it.
type ContractDescriptor struct {
	Name        string     `mapstructure:"name" yaml:"name"`
	Description string     `mapstructure:"description" yaml:"description"`
	Candidates  [][]string `mapstructure:"candidates" yaml:"candidates,omitempty"`
}

// PriorDeployment is a contract deployed outside of this tool
type PriorDeployment struct {
	Name  string `mapstructure:"name" yaml:"name"`
	AppID uint64 `mapstructure:"app-id" yaml:"app-id"`
}

type ContractState int

const (
	Pending ContractState = iota
	Trying
	Deployed
	Failed
)

func (s ContractState) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Trying:
		return "Trying"
	case Deployed:
		return "Deployed"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// DeploymentOutcome is the terminal state reached by one contract.
type DeploymentOutcome struct {
	Contract ContractDescriptor
	State    ContractState
	// Command is the candidate that succeeded, empty when State is Failed
	Command string
	// Generic is set when the successful candidate never mentions the contract
	Generic bool
}

func (o DeploymentOutcome) Deployed() bool {
	return o.State == Deployed
}
