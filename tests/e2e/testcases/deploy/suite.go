// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"github.com/algoverse/algoverse-cli/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Deploy]", func() {
	var sb *utils.Sandbox

	ginkgo.BeforeEach(func() {
		sb = utils.NewSandbox().WithDependencies()
	})

	ginkgo.It("requires compiled artifacts", func() {
		sb.FakeTool("algokit", "exit 0")

		session := sb.Run("deploy")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(1))
		gomega.Expect(utils.Output(session)).Should(
			gomega.ContainSubstring("Contract artifacts not found. Please compile contracts first."),
		)
		gomega.Expect(sb.Calls("algokit")).Should(gomega.BeEmpty())
	})

	ginkgo.It("deploys every contract with the first candidate", func() {
		sb.WithArtifacts()
		sb.FakeTool("algokit", "exit 0")

		session := sb.Run("deploy")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(0))
		gomega.Expect(sb.Calls("algokit")).Should(gomega.HaveLen(2))
		out := utils.Output(session)
		gomega.Expect(out).Should(gomega.ContainSubstring("HelloWorld: Already deployed (App ID: 2225)"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Total contracts deployed: 3/3"))
		gomega.Expect(out).Should(gomega.ContainSubstring("All contracts deployed successfully!"))
	})

	ginkgo.It("falls back through candidates and keeps going after a failure", func() {
		sb.WithArtifacts()
		// client generation fails for every contract, bootstrap succeeds once
		sb.FakeTool("algokit", `
case "$*" in
  "generate client"*) exit 1;;
  "project bootstrap all")
    [ -f "$0.bootstrapped" ] && exit 1
    touch "$0.bootstrapped"; exit 0;;
  *) exit 1;;
esac`)

		session := sb.Run("deploy")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(1))
		gomega.Expect(sb.Calls("algokit")).Should(gomega.HaveLen(5))
		out := utils.Output(session)
		gomega.Expect(out).Should(gomega.ContainSubstring(utils.OrganizerRegistry + " deployment completed!"))
		gomega.Expect(out).Should(gomega.ContainSubstring(utils.ContributionLogger + " deployment failed!"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Total contracts deployed: 2/3"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Some contracts failed to deploy. Please check the logs above."))
	})
})
