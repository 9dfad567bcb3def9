// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package root

import (
	"github.com/algoverse/algoverse-cli/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Root]", func() {
	ginkgo.It("lists the commands", func() {
		session := utils.NewSandbox().Run("--help")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(0))
		out := string(session.Out.Contents())
		gomega.Expect(out).Should(gomega.ContainSubstring("contracts"))
		gomega.Expect(out).Should(gomega.ContainSubstring("deploy"))
	})

	ginkgo.It("fails with usage on an unknown command", func() {
		session := utils.NewSandbox().Run("publish")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(2))
	})

	ginkgo.It("shows the effective configuration", func() {
		sb := utils.NewSandbox()
		session := sb.Run("config", "show")
		gomega.Expect(session.ExitCode()).Should(gomega.Equal(0))
		out := string(session.Out.Contents())
		gomega.Expect(out).Should(gomega.ContainSubstring("contracts-dir: " + sb.ContractsDir))
		gomega.Expect(out).Should(gomega.ContainSubstring(utils.OrganizerRegistry))
	})
})
