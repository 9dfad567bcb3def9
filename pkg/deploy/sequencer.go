// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/algoverse/algoverse-cli/pkg/models"
	"github.com/algoverse/algoverse-cli/pkg/statemachine"
	"github.com/algoverse/algoverse-cli/pkg/toolrunner"
	"github.com/algoverse/algoverse-cli/pkg/utils"
	"github.com/algoverse/algoverse-cli/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var ErrArtifactsNotFound = errors.New("contract artifacts not found")

var contractTransitions = map[models.ContractState][]models.ContractState{
	models.Pending: {models.Trying},
	models.Trying:  {models.Deployed, models.Failed},
}

// Sequencer deploys the plan's contracts one after the other, trying each
// contract's candidate commands in order until one exits zero.
type Sequencer struct {
	fs     afero.Fs
	runner toolrunner.Runner
	ux     *ux.UserLog
	plan   Plan
	dir    string
}

// NewSequencer returns a Sequencer running commands in dir, the contracts
// project root holding the artifacts directory.
func NewSequencer(
	fs afero.Fs,
	runner toolrunner.Runner,
	ul *ux.UserLog,
	plan Plan,
	dir string,
) *Sequencer {
	return &Sequencer{
		fs:     fs,
		runner: runner,
		ux:     ul,
		plan:   plan,
		dir:    dir,
	}
}

// Run deploys every declared contract and prints the summary. A failed
// contract never stops the run. When the artifacts directory is missing
// no contract is attempted and ErrArtifactsNotFound is returned.
func (s *Sequencer) Run(ctx context.Context) (*Report, error) {
	if err := s.plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deployment plan: %w", err)
	}
	s.printHeader()

	artifactsDir := filepath.Join(s.dir, s.plan.ArtifactsDir)
	if !utils.DirectoryExists(s.fs, artifactsDir) {
		s.ux.RedXToUser("Contract artifacts not found. Please compile contracts first.")
		s.ux.Info("artifacts directory missing", zap.String("path", artifactsDir))
		return nil, ErrArtifactsNotFound
	}

	s.printPlan()

	report := &Report{
		Prior:    s.plan.Prior,
		Outcomes: make([]models.DeploymentOutcome, 0, len(s.plan.Contracts)),
	}
	for i, contract := range s.plan.Contracts {
		outcome, err := s.deployContract(ctx, i+1, contract)
		if err != nil {
			return nil, err
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	s.printSummary(report)
	return report, nil
}

func (s *Sequencer) deployContract(
	ctx context.Context,
	index int,
	contract models.ContractDescriptor,
) (models.DeploymentOutcome, error) {
	outcome := models.DeploymentOutcome{Contract: contract}
	sm, err := statemachine.NewStateMachine(models.Pending, contractTransitions)
	if err != nil {
		return outcome, err
	}

	s.ux.PrintToUser("")
	s.ux.PrintWideSeparator()
	s.ux.PrintToUser("Deploying %d/%d: %s", index, len(s.plan.Contracts), contract.Name)
	s.ux.PrintWideSeparator()

	if _, err := sm.NextState(models.Trying); err != nil {
		return outcome, err
	}
	description := fmt.Sprintf("Step for %s", contract.Name)
	for _, candidate := range s.plan.CandidatesFor(contract) {
		cmd, err := candidate.Render(contract, s.dir)
		if err != nil {
			return outcome, err
		}
		s.ux.PrintToUser("")
		s.ux.PrintToUser("%s", description)
		res := s.runner.Run(ctx, cmd)
		if res.Succeeded() {
			s.ux.GreenCheckmarkToUser("Success: %s", description)
			outcome.Command = cmd.String()
			outcome.Generic = !candidate.References(contract)
			if _, err := sm.NextState(models.Deployed); err != nil {
				return outcome, err
			}
			break
		}
		s.ux.RedXToUser("Failed: %s", description)
	}
	if sm.CurrentState() == models.Trying {
		if _, err := sm.NextState(models.Failed); err != nil {
			return outcome, err
		}
	}
	outcome.State = sm.CurrentState()

	s.ux.Info("contract attempt finished",
		zap.String("contract", contract.Name),
		zap.Stringer("state", outcome.State),
		zap.String("command", outcome.Command),
	)
	if outcome.Deployed() {
		s.ux.GreenCheckmarkToUser("%s deployment completed!", contract.Name)
		if outcome.Generic {
			s.ux.YellowWarningToUser("%s was marked deployed by a project-wide command.", contract.Name)
			s.ux.PrintWrapped(76,
				"`%s` does not reference %s, so its success may not mean the contract is live on %s. Verify the application before relying on it.",
				outcome.Command, contract.Name, s.plan.Network,
			)
		}
	} else {
		s.ux.RedXToUser("%s deployment failed!", contract.Name)
	}
	return outcome, nil
}

func (s *Sequencer) printHeader() {
	s.ux.PrintToUser("AlgoVerse Contract Deployment to %s", s.plan.Network)
	s.ux.PrintLineSeparator()
	s.ux.PrintToUser("Target Network: %s", s.plan.Network)
	s.ux.PrintToUser("Wallet Address: %s", s.plan.Deployer)
	s.ux.PrintLineSeparator()
	s.ux.PrintToUser("Working directory: %s", s.dir)
}

func (s *Sequencer) printPlan() {
	s.ux.PrintToUser("")
	s.ux.PrintToUser("Contracts to deploy: %d", len(s.plan.Contracts))
	t := ux.DefaultTable("Deployment Plan", table.Row{"#", "Contract", "Description"})
	for i, contract := range s.plan.Contracts {
		t.AppendRow(table.Row{i + 1, contract.Name, contract.Description})
	}
	s.ux.PrintTable(t)
}
