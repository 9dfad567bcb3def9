// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/algoverse/algoverse-cli/cmd/configcmd"
	"github.com/algoverse/algoverse-cli/cmd/contractcmd"
	"github.com/algoverse/algoverse-cli/cmd/deploycmd"
	"github.com/algoverse/algoverse-cli/pkg/application"
	"github.com/algoverse/algoverse-cli/pkg/cobrautils"
	"github.com/algoverse/algoverse-cli/pkg/config"
	"github.com/algoverse/algoverse-cli/pkg/constants"
	"github.com/algoverse/algoverse-cli/pkg/logging"
	"github.com/algoverse/algoverse-cli/pkg/toolrunner"
	"github.com/algoverse/algoverse-cli/pkg/utils"
	"github.com/algoverse/algoverse-cli/pkg/ux"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	app *application.Algoverse

	logLevel string
	cfgFile  string
	closeLog func() error

	Version = ""
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "algoverse",
		Long: `Algoverse CLI builds and deploys the AlgoVerse Algorand contracts.

Use algoverse contracts to compile, build or generate clients for the
contracts project, and algoverse deploy to deploy the compiled contracts
to TestNet.`,
		Args:              cobra.ArbitraryArgs,
		RunE:              cobrautils.CommandSuiteUsage,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}
	cobrautils.ConfigureRootCmd(rootCmd)

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.DefaultLogLevel, "log level for the application")
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		fmt.Sprintf("config file (default is $HOME/%s/%s.%s)", constants.BaseDirName, constants.ConfigFileName, constants.ConfigFileType),
	)

	app = application.New()
	rootCmd.AddCommand(contractcmd.NewCmd(app))
	rootCmd.AddCommand(deploycmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))
	return rootCmd
}

func createApp(*cobra.Command, []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}
	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)

	conf := config.New()
	cfgPath := cfgFile
	if cfgPath == "" {
		cfgPath = filepath.Join(baseDir, constants.ConfigFileName+"."+constants.ConfigFileType)
	}
	if err := conf.SetConfig(log, utils.ExpandHome(cfgPath)); err != nil {
		return err
	}

	runner := toolrunner.NewExecRunner(ux.Logger)
	runner.ShowSpinner = ux.IsTerminal(os.Stdout)
	app.Setup(baseDir, log, conf, ux.Logger, afero.NewOsFs(), runner)
	return nil
}

func setupEnv() (string, error) {
	baseDir := utils.UserHomePath(constants.BaseDirName)
	// Create base dir if it doesn't exist
	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed creating the basedir %s: %w", baseDir, err)
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (*zap.Logger, error) {
	displayLevel, err := logging.ToLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logConfig := logging.Config{
		Directory:    filepath.Join(baseDir, constants.LogDir),
		Name:         constants.LogName,
		LogLevel:     zap.InfoLevel,
		DisplayLevel: displayLevel,
		MaxSize:      constants.MaxLogFileSize,
		MaxFiles:     constants.MaxNumOfLogFiles,
		MaxAge:       constants.RetainOldFiles,
	}
	log, closeFn, err := logging.New(logConfig)
	if err != nil {
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	closeLog = closeFn
	log.Info("command", zap.Strings("args", os.Args))
	return log, nil
}

// Execute runs the root command and returns the process exit code.
// This is called by main.main().
func Execute() int {
	return execute(os.Args[1:])
}

func execute(args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	code := cobrautils.HandleErrors(rootCmd.Execute())
	if closeLog != nil {
		_ = closeLog()
		closeLog = nil
	}
	return code
}
