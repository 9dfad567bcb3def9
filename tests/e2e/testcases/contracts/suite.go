// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contracts

import (
	"github.com/algoverse/algoverse-cli/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Contracts]", func() {
	var sb *utils.Sandbox

	ginkgo.BeforeEach(func() {
		sb = utils.NewSandbox()
	})

	ginkgo.It("compiles by default", func() {
		sb.WithDependencies()
		sb.FakeTool("npm", "exit 0")

		session := sb.Run("contracts")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(0))
		gomega.Expect(sb.Calls("npm")).Should(gomega.Equal([]string{"run compile-contract"}))
		gomega.Expect(utils.Output(session)).Should(gomega.ContainSubstring("Running: npm run compile-contract"))
	})

	ginkgo.It("installs missing dependencies before building", func() {
		sb.FakeTool("npm", "exit 0")

		session := sb.Run("contracts", "--build")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(0))
		gomega.Expect(sb.Calls("npm")).Should(gomega.Equal([]string{"install", "run build"}))
	})

	ginkgo.It("aborts when the dependency install fails", func() {
		sb.FakeTool("npm", `[ "$1" = "install" ] && exit 1; exit 0`)

		session := sb.Run("contracts", "--generate-client")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(1))
		gomega.Expect(sb.Calls("npm")).Should(gomega.Equal([]string{"install"}))
		gomega.Expect(utils.Output(session)).Should(gomega.ContainSubstring("Failed to install node dependencies. Aborting."))
	})

	ginkgo.It("passes the tool output through and fails on non-zero exit", func() {
		sb.WithDependencies()
		sb.FakeTool("npm", "echo compiling; echo broken >&2; exit 5")

		session := sb.Run("contracts", "--compile")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(1))
		gomega.Expect(string(session.Out.Contents())).Should(gomega.ContainSubstring("compiling"))
		gomega.Expect(string(session.Err.Contents())).Should(gomega.ContainSubstring("broken"))
	})

	ginkgo.It("rejects two operations without running anything", func() {
		sb.FakeTool("npm", "exit 0")

		session := sb.Run("contracts", "--compile", "--install")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(2))
		gomega.Expect(sb.Calls("npm")).Should(gomega.BeEmpty())
	})

	ginkgo.It("fails with 2 when the working directory is missing", func() {
		sb.FakeTool("npm", "exit 0")

		session := sb.Run("contracts", "--cwd", sb.Home+"/missing")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(2))
		gomega.Expect(utils.Output(session)).Should(gomega.ContainSubstring("Working directory does not exist:"))
		gomega.Expect(sb.Calls("npm")).Should(gomega.BeEmpty())
	})
})
