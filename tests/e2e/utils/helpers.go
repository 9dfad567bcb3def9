// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

// Sandbox is an isolated HOME with a contracts project and a bin dir of
// fake tools placed first on PATH.
type Sandbox struct {
	Home         string
	BinDir       string
	ContractsDir string
}

func NewSandbox() *Sandbox {
	home := ginkgo.GinkgoT().TempDir()
	sb := &Sandbox{
		Home:         home,
		BinDir:       filepath.Join(home, "bin"),
		ContractsDir: filepath.Join(home, contractsDirName),
	}
	gomega.Expect(os.MkdirAll(sb.BinDir, 0o755)).Should(gomega.Succeed())
	gomega.Expect(os.MkdirAll(filepath.Join(sb.ContractsDir, "contracts"), 0o755)).Should(gomega.Succeed())
	return sb
}

func (sb *Sandbox) WithDependencies() *Sandbox {
	gomega.Expect(os.MkdirAll(filepath.Join(sb.ContractsDir, "node_modules"), 0o755)).Should(gomega.Succeed())
	return sb
}

func (sb *Sandbox) WithArtifacts() *Sandbox {
	gomega.Expect(os.MkdirAll(filepath.Join(sb.ContractsDir, "contracts", "artifacts"), 0o755)).Should(gomega.Succeed())
	return sb
}

// FakeTool installs a shell script called name that records its arguments
// and then runs body.
func (sb *Sandbox) FakeTool(name string, body string) {
	script := "#!/bin/sh\n" +
		`echo "$@" >> "` + sb.callsFile(name) + "\"\n" +
		body + "\n"
	/* #nosec G306 */
	gomega.Expect(os.WriteFile(filepath.Join(sb.BinDir, name), []byte(script), 0o755)).Should(gomega.Succeed())
}

// Calls returns the argument lines a fake tool was invoked with, in order.
func (sb *Sandbox) Calls(name string) []string {
	content, err := os.ReadFile(sb.callsFile(name))
	if os.IsNotExist(err) {
		return nil
	}
	gomega.Expect(err).Should(gomega.BeNil())
	trimmed := strings.TrimSuffix(string(content), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func (sb *Sandbox) callsFile(name string) string {
	return filepath.Join(sb.BinDir, name+".calls")
}

// Run executes the CLI inside the sandbox and waits for it to exit.
func (sb *Sandbox) Run(args ...string) *gexec.Session {
	/* #nosec G204 */
	cmd := exec.Command(CLIBinary, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+sb.Home,
		"PATH="+sb.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"),
		"ALGOVERSE_CONTRACTS_DIR="+sb.ContractsDir,
	)
	session, err := gexec.Start(cmd, ginkgo.GinkgoWriter, ginkgo.GinkgoWriter)
	gomega.Expect(err).Should(gomega.BeNil())
	gomega.Eventually(session, commandTimeout).Should(gexec.Exit())
	return session
}

// Output returns the session stdout and stderr combined
func Output(session *gexec.Session) string {
	return string(session.Out.Contents()) + string(session.Err.Contents())
}
