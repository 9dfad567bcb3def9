// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploy

import "github.com/algoverse/algoverse-cli/pkg/models"

// Report is the outcome of one deployment run, in declaration order.
type Report struct {
	Prior    []models.PriorDeployment
	Outcomes []models.DeploymentOutcome
}

// Deployed counts the contracts deployed during this run
func (r *Report) Deployed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Deployed() {
			n++
		}
	}
	return n
}

// TotalDeployed includes the prior deployments
func (r *Report) TotalDeployed() int {
	return r.Deployed() + len(r.Prior)
}

func (r *Report) TotalExpected() int {
	return len(r.Outcomes) + len(r.Prior)
}

// Success holds when every declared contract reached Deployed
func (r *Report) Success() bool {
	return r.Deployed() == len(r.Outcomes)
}

func (s *Sequencer) printSummary(r *Report) {
	s.ux.PrintToUser("")
	s.ux.PrintWideSeparator()
	s.ux.PrintToUser("DEPLOYMENT SUMMARY")
	s.ux.PrintWideSeparator()
	for _, prior := range r.Prior {
		s.ux.GreenCheckmarkToUser("%s: Already deployed (App ID: %d)", prior.Name, prior.AppID)
	}
	for _, o := range r.Outcomes {
		if o.Deployed() {
			s.ux.GreenCheckmarkToUser("Deployed %s", o.Contract.Name)
		} else {
			s.ux.RedXToUser("Failed %s", o.Contract.Name)
		}
	}
	s.ux.PrintToUser("")
	s.ux.PrintToUser("Total contracts deployed: %d/%d", r.TotalDeployed(), r.TotalExpected())
	if r.Success() {
		s.ux.PrintToUser("All contracts deployed successfully!")
	} else {
		s.ux.YellowWarningToUser("Some contracts failed to deploy. Please check the logs above.")
	}
}
