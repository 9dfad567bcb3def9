// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploy

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"github.com/algoverse/algoverse-cli/pkg/constants"
	"github.com/algoverse/algoverse-cli/pkg/models"
	"github.com/algoverse/algoverse-cli/pkg/toolrunner"
)

var (
	ErrNoContracts       = errors.New("deployment plan has no contracts")
	ErrNoCandidates      = errors.New("no candidate commands configured")
	ErrEmptyTemplate     = errors.New("candidate command is empty")
	ErrDuplicateContract = errors.New("contract declared twice")
	ErrUnknownNetwork    = errors.New("unknown network")
)

// CommandTemplate is a candidate command line. Each token is a text/template
// evaluated against the contract descriptor, e.g. "contracts/{{.Name}}.algo.ts".
type CommandTemplate []string

// Render binds the template to contract and returns the command to run in dir.
func (ct CommandTemplate) Render(contract models.ContractDescriptor, dir string) (toolrunner.Command, error) {
	if len(ct) == 0 {
		return toolrunner.Command{}, ErrEmptyTemplate
	}
	tokens := make([]string, 0, len(ct))
	for _, token := range ct {
		tmpl, err := template.New("candidate").Parse(token)
		if err != nil {
			return toolrunner.Command{}, fmt.Errorf("invalid candidate token %q: %w", token, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, contract); err != nil {
			return toolrunner.Command{}, fmt.Errorf("failed rendering candidate token %q: %w", token, err)
		}
		tokens = append(tokens, buf.String())
	}
	return toolrunner.NewCommand(dir, tokens[0], tokens[1:]...), nil
}

// References reports whether the rendered command depends on the contract
// name. Candidates that don't are project-wide commands whose success says
// nothing about this particular contract.
func (ct CommandTemplate) References(contract models.ContractDescriptor) bool {
	probe := contract
	probe.Name = contract.Name + "-probe"
	a, errA := ct.Render(contract, "")
	b, errB := ct.Render(probe, "")
	if errA != nil || errB != nil {
		return false
	}
	return a.String() != b.String()
}

// Plan is the static input of a deployment run.
type Plan struct {
	Network      string                      `mapstructure:"network" yaml:"network"`
	Deployer     string                      `mapstructure:"deployer" yaml:"deployer"`
	ArtifactsDir string                      `mapstructure:"artifacts-dir" yaml:"artifacts-dir"`
	Contracts    []models.ContractDescriptor `mapstructure:"contracts" yaml:"contracts"`
	Candidates   []CommandTemplate           `mapstructure:"candidates" yaml:"candidates"`
	Prior        []models.PriorDeployment    `mapstructure:"previously-deployed" yaml:"previously-deployed"`
}

func DefaultContracts() []models.ContractDescriptor {
	return []models.ContractDescriptor{
		{
			Name:        "OrganizerRegistry",
			Description: "Organizer authorization and management contract",
		},
		{
			Name:        "ContributionLogger",
			Description: "Volunteer contribution logging contract",
		},
	}
}

func DefaultCandidates() []CommandTemplate {
	return []CommandTemplate{
		{
			constants.DefaultAlgokitBinary, "generate", "client",
			"contracts/{{.Name}}.algo.ts",
			"--output", "contracts/clients/{{.Name}}Client.ts",
		},
		{constants.DefaultAlgokitBinary, "project", "bootstrap", "all"},
		{constants.DefaultAlgokitBinary, "project", "run"},
	}
}

func DefaultPrior() []models.PriorDeployment {
	return []models.PriorDeployment{
		{
			Name:  constants.HelloWorldContractName,
			AppID: constants.HelloWorldAppID,
		},
	}
}

func DefaultPlan() Plan {
	return Plan{
		Network:      constants.DefaultNetwork,
		Deployer:     constants.DefaultDeployerAddress,
		ArtifactsDir: constants.DefaultArtifactsDir,
		Contracts:    DefaultContracts(),
		Candidates:   DefaultCandidates(),
		Prior:        DefaultPrior(),
	}
}

// CandidatesFor returns the ordered candidates tried for contract
func (p Plan) CandidatesFor(contract models.ContractDescriptor) []CommandTemplate {
	if len(contract.Candidates) == 0 {
		return p.Candidates
	}
	candidates := make([]CommandTemplate, 0, len(contract.Candidates))
	for _, c := range contract.Candidates {
		candidates = append(candidates, CommandTemplate(c))
	}
	return candidates
}

// TotalExpected counts the declared contracts plus the prior deployments
func (p Plan) TotalExpected() int {
	return len(p.Contracts) + len(p.Prior)
}

// Validate checks the plan can be executed end to end without template errors.
func (p Plan) Validate() error {
	if models.NetworkFromString(p.Network) == models.Undefined {
		return fmt.Errorf("%w: %q", ErrUnknownNetwork, p.Network)
	}
	if len(p.Contracts) == 0 {
		return ErrNoContracts
	}
	seen := make(map[string]struct{}, len(p.Contracts))
	for _, contract := range p.Contracts {
		if contract.Name == "" {
			return errors.New("contract name cannot be empty")
		}
		if _, ok := seen[contract.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateContract, contract.Name)
		}
		seen[contract.Name] = struct{}{}
		candidates := p.CandidatesFor(contract)
		if len(candidates) == 0 {
			return fmt.Errorf("%w for %s", ErrNoCandidates, contract.Name)
		}
		for _, candidate := range candidates {
			if _, err := candidate.Render(contract, ""); err != nil {
				return fmt.Errorf("contract %s: %w", contract.Name, err)
			}
		}
	}
	return nil
}
