package update

import "strings"

const (
	defaultPrimaryBranchNameConstant = "master"
	defaultRemoteNameConstant        = "origin"

	sourceConfigurationKeySuffixConstant = ".source"
	targetConfigurationKeySuffixConstant = ".target"
	branchConfigurationKeySuffixConstant = ".branch"
	remoteConfigurationKeySuffixConstant = ".remote"
	dryRunConfigurationKeySuffixConstant = ".dry_run"
)

// CommandConfiguration captures configuration values for the update command.
type CommandConfiguration struct {
	SourceRepositoryPath string `mapstructure:"source"`
	TargetRepositoryPath string `mapstructure:"target"`
	BranchName           string `mapstructure:"branch"`
	RemoteName           string `mapstructure:"remote"`
	DryRun               bool   `mapstructure:"dry_run"`
}

// DefaultCommandConfiguration provides baseline configuration values for the update command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		SourceRepositoryPath: "",
		TargetRepositoryPath: "",
		BranchName:           defaultPrimaryBranchNameConstant,
		RemoteName:           defaultRemoteNameConstant,
		DryRun:               false,
	}
}

// DefaultConfigurationValues exposes configuration defaults keyed beneath the supplied prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + sourceConfigurationKeySuffixConstant: defaults.SourceRepositoryPath,
		configurationKeyPrefix + targetConfigurationKeySuffixConstant: defaults.TargetRepositoryPath,
		configurationKeyPrefix + branchConfigurationKeySuffixConstant: defaults.BranchName,
		configurationKeyPrefix + remoteConfigurationKeySuffixConstant: defaults.RemoteName,
		configurationKeyPrefix + dryRunConfigurationKeySuffixConstant: defaults.DryRun,
	}
}

// Sanitize trims configuration values and applies defaults for blank entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.SourceRepositoryPath = strings.TrimSpace(configuration.SourceRepositoryPath)
	sanitized.TargetRepositoryPath = strings.TrimSpace(configuration.TargetRepositoryPath)
	sanitized.BranchName = strings.TrimSpace(configuration.BranchName)
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)

	if len(sanitized.BranchName) == 0 {
		sanitized.BranchName = defaultPrimaryBranchNameConstant
	}
	if len(sanitized.RemoteName) == 0 {
		sanitized.RemoteName = defaultRemoteNameConstant
	}

	return sanitized
}
