// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/algoverse/algoverse-cli/pkg/constants"
	"github.com/algoverse/algoverse-cli/pkg/contracts"
	"github.com/algoverse/algoverse-cli/pkg/deploy"
	"github.com/algoverse/algoverse-cli/pkg/models"
	"github.com/algoverse/algoverse-cli/pkg/utils"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	ContractsDirKey       = "contracts-dir"
	NPMBinaryKey          = "npm-binary"
	DependencyDirKey      = "dependency-dir"
	CompileScriptKey      = "build.compile-script"
	BuildScriptKey        = "build.build-script"
	GenerateClientKey     = "build.generate-client-script"
	NetworkKey            = "deploy.network"
	DeployerKey           = "deploy.deployer"
	ArtifactsDirKey       = "deploy.artifacts-dir"
	ContractsKey          = "deploy.contracts"
	CandidatesKey         = "deploy.candidates"
	PreviouslyDeployedKey = "deploy.previously-deployed"
)

// Settings is the effective configuration, as printed by `config show`.
type Settings struct {
	ContractsDir  string            `yaml:"contracts-dir"`
	NPMBinary     string            `yaml:"npm-binary"`
	DependencyDir string            `yaml:"dependency-dir"`
	Build         contracts.Scripts `yaml:"build"`
	Deploy        deploy.Plan       `yaml:"deploy"`
}

type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv() // read in environment variables that match

	v.SetDefault(NPMBinaryKey, constants.DefaultNPMBinary)
	v.SetDefault(DependencyDirKey, constants.DefaultDependencyDir)
	v.SetDefault(CompileScriptKey, constants.DefaultCompileScript)
	v.SetDefault(BuildScriptKey, constants.DefaultBuildScript)
	v.SetDefault(GenerateClientKey, constants.DefaultGenerateClientScript)
	v.SetDefault(NetworkKey, constants.DefaultNetwork)
	v.SetDefault(DeployerKey, constants.DefaultDeployerAddress)
	v.SetDefault(ArtifactsDirKey, constants.DefaultArtifactsDir)
	return &Config{v: v}
}

// SetConfig reads the yaml config file at path. A missing file is not an
// error, the defaults and environment still apply.
func (c *Config) SetConfig(log *zap.Logger, path string) error {
	c.v.SetConfigType(constants.ConfigFileType)
	c.v.SetConfigFile(path)
	err := c.v.ReadInConfig()
	switch {
	case err == nil:
		log.Info("Using config file", zap.String("config-file", path))
		return nil
	case errors.Is(err, fs.ErrNotExist):
		log.Info("No config file found", zap.String("config-file", path))
		return nil
	default:
		return fmt.Errorf("failed reading config file %s: %w", path, err)
	}
}

func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

// SetConfigValue overrides key for the rest of the process lifetime.
func (c *Config) SetConfigValue(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) ConfigValueIsSet(key string) bool {
	return c.v.IsSet(key)
}

// ContractsDir is where both the build and deploy commands run. It
// defaults to the folder holding the algoverse binary.
func (c *Config) ContractsDir() string {
	if dir := c.v.GetString(ContractsDirKey); dir != "" {
		return utils.ExpandHome(dir)
	}
	return utils.ExecutableDir()
}

func (c *Config) NPMBinary() string {
	return c.v.GetString(NPMBinaryKey)
}

func (c *Config) DependencyDir() string {
	return c.v.GetString(DependencyDirKey)
}

// InstallCommand is the package manager invocation installing dependencies
func (c *Config) InstallCommand() []string {
	return []string{c.NPMBinary(), "install"}
}

func (c *Config) BuildScripts() contracts.Scripts {
	return contracts.Scripts{
		Compile:        c.v.GetString(CompileScriptKey),
		Build:          c.v.GetString(BuildScriptKey),
		GenerateClient: c.v.GetString(GenerateClientKey),
	}
}

// DeployPlan returns the compiled-in plan with any configured overrides.
func (c *Config) DeployPlan() (deploy.Plan, error) {
	plan := deploy.DefaultPlan()
	plan.Network = c.v.GetString(NetworkKey)
	plan.Deployer = c.v.GetString(DeployerKey)
	plan.ArtifactsDir = c.v.GetString(ArtifactsDirKey)
	if c.v.IsSet(ContractsKey) {
		var contractList []models.ContractDescriptor
		if err := c.v.UnmarshalKey(ContractsKey, &contractList); err != nil {
			return deploy.Plan{}, fmt.Errorf("invalid %s: %w", ContractsKey, err)
		}
		plan.Contracts = contractList
	}
	if c.v.IsSet(CandidatesKey) {
		var candidates []deploy.CommandTemplate
		if err := c.v.UnmarshalKey(CandidatesKey, &candidates); err != nil {
			return deploy.Plan{}, fmt.Errorf("invalid %s: %w", CandidatesKey, err)
		}
		plan.Candidates = candidates
	}
	if c.v.IsSet(PreviouslyDeployedKey) {
		var prior []models.PriorDeployment
		if err := c.v.UnmarshalKey(PreviouslyDeployedKey, &prior); err != nil {
			return deploy.Plan{}, fmt.Errorf("invalid %s: %w", PreviouslyDeployedKey, err)
		}
		plan.Prior = prior
	}
	return plan, nil
}

func (c *Config) Settings() (Settings, error) {
	plan, err := c.DeployPlan()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		ContractsDir:  c.ContractsDir(),
		NPMBinary:     c.NPMBinary(),
		DependencyDir: c.DependencyDir(),
		Build:         c.BuildScripts(),
		Deploy:        plan,
	}, nil
}
