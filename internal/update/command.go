package update

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pathutils "github.com/temirov/specsync/internal/utils/path"
)

const (
	commandUseConstant              = "update"
	commandShortDescriptionConstant = "Synchronize OpenAPI documents between repositories"
	commandLongDescriptionConstant  = "update copies OpenAPI specification and fixture documents from a source repository into a target repository, rewrites each document as indented JSON, commits the fixture and specification groups separately, and pushes the result."

	sourceFlagNameConstant        = "source"
	sourceFlagDescriptionConstant = "Path to the repository the documents are copied from"
	targetFlagNameConstant        = "target"
	targetFlagDescriptionConstant = "Path to the repository the documents are copied into"
	branchFlagNameConstant        = "branch"
	branchFlagDescriptionConstant = "Branch the source repository must be on and the target repository pulls and pushes"
	remoteFlagNameConstant        = "remote"
	remoteFlagDescriptionConstant = "Remote the target repository pulls from and pushes to"
	dryRunFlagNameConstant        = "dry-run"
	dryRunFlagDescriptionConstant = "Run every step except the final push"

	upToDateMessageTemplateConstant        = "UP-TO-DATE: %s\n"
	committedMessageTemplateConstant       = "COMMITTED: %s\n"
	nothingToCommitMessageTemplateConstant = "SKIPPED: %s (nothing to commit)\n"
	pushedMessageTemplateConstant          = "PUSHED: %s to %s/%s\n"
	dryRunSkipMessageConstant              = "DRY-RUN: push skipped\n"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the update command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	GitExecutor           GitExecutor
	GitRepositoryManager  GitRepositoryManager
	FileSystem            FileSystem
	ConfigurationProvider func() CommandConfiguration
	PathSanitizer         *pathutils.RepositoryPathSanitizer
}

// Build constructs the update command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	command.Flags().String(sourceFlagNameConstant, "", sourceFlagDescriptionConstant)
	command.Flags().String(targetFlagNameConstant, "", targetFlagDescriptionConstant)
	command.Flags().String(branchFlagNameConstant, "", branchFlagDescriptionConstant)
	command.Flags().String(remoteFlagNameConstant, "", remoteFlagDescriptionConstant)
	command.Flags().Bool(dryRunFlagNameConstant, false, dryRunFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	configuration, configurationError := builder.resolveConfiguration(command)
	if configurationError != nil {
		return configurationError
	}

	logger := builder.resolveLogger()
	gitExecutor, executorError := ResolveGitExecutor(builder.GitExecutor, logger)
	if executorError != nil {
		return executorError
	}

	repositoryManager, managerError := ResolveGitRepositoryManager(builder.GitRepositoryManager, gitExecutor)
	if managerError != nil {
		return managerError
	}

	fileSystem := ResolveFileSystem(builder.FileSystem)

	service, serviceCreationError := NewService(Dependencies{RepositoryManager: repositoryManager, FileSystem: fileSystem})
	if serviceCreationError != nil {
		return serviceCreationError
	}

	pathSanitizer := builder.resolvePathSanitizer()
	options := Options{
		SourceRepositoryPath: pathSanitizer.Sanitize(configuration.SourceRepositoryPath),
		TargetRepositoryPath: pathSanitizer.Sanitize(configuration.TargetRepositoryPath),
		BranchName:           configuration.BranchName,
		RemoteName:           configuration.RemoteName,
		DryRun:               configuration.DryRun,
	}

	result, updateError := service.Update(command.Context(), options)
	if updateError != nil {
		return updateError
	}

	outputWriter := command.OutOrStdout()
	if !result.ChangesDetected {
		fmt.Fprintf(outputWriter, upToDateMessageTemplateConstant, options.TargetRepositoryPath)
		return nil
	}

	if result.FixturesCommitted {
		fmt.Fprintf(outputWriter, committedMessageTemplateConstant, fixturesCommitMessageConstant)
	} else {
		fmt.Fprintf(outputWriter, nothingToCommitMessageTemplateConstant, fixturesCommitMessageConstant)
	}
	if result.SpecificationCommitted {
		fmt.Fprintf(outputWriter, committedMessageTemplateConstant, specificationCommitMessageConstant)
	} else {
		fmt.Fprintf(outputWriter, nothingToCommitMessageTemplateConstant, specificationCommitMessageConstant)
	}

	if result.PushCompleted {
		fmt.Fprintf(outputWriter, pushedMessageTemplateConstant, options.BranchName, options.RemoteName, options.BranchName)
	} else {
		fmt.Fprint(outputWriter, dryRunSkipMessageConstant)
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command) (CommandConfiguration, error) {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	flagSet := command.Flags()
	if flagSet.Changed(sourceFlagNameConstant) {
		flagValue, flagError := flagSet.GetString(sourceFlagNameConstant)
		if flagError != nil {
			return CommandConfiguration{}, flagError
		}
		configuration.SourceRepositoryPath = flagValue
	}
	if flagSet.Changed(targetFlagNameConstant) {
		flagValue, flagError := flagSet.GetString(targetFlagNameConstant)
		if flagError != nil {
			return CommandConfiguration{}, flagError
		}
		configuration.TargetRepositoryPath = flagValue
	}
	if flagSet.Changed(branchFlagNameConstant) {
		flagValue, flagError := flagSet.GetString(branchFlagNameConstant)
		if flagError != nil {
			return CommandConfiguration{}, flagError
		}
		configuration.BranchName = flagValue
	}
	if flagSet.Changed(remoteFlagNameConstant) {
		flagValue, flagError := flagSet.GetString(remoteFlagNameConstant)
		if flagError != nil {
			return CommandConfiguration{}, flagError
		}
		configuration.RemoteName = flagValue
	}
	if flagSet.Changed(dryRunFlagNameConstant) {
		flagValue, flagError := flagSet.GetBool(dryRunFlagNameConstant)
		if flagError != nil {
			return CommandConfiguration{}, flagError
		}
		configuration.DryRun = flagValue
	}

	return configuration.Sanitize(), nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolvePathSanitizer() *pathutils.RepositoryPathSanitizer {
	if builder.PathSanitizer != nil {
		return builder.PathSanitizer
	}
	return pathutils.NewRepositoryPathSanitizer()
}
