package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/specsync/internal/execshell"
)

const (
	executorMissingMessageConstant              = "git executor not configured"
	statusSubcommandConstant                    = "status"
	statusPorcelainFlagConstant                 = "--porcelain"
	revParseSubcommandConstant                  = "rev-parse"
	revParseAbbrevRefFlagConstant               = "--abbrev-ref"
	headReferenceConstant                       = "HEAD"
	pullSubcommandConstant                      = "pull"
	pullFastForwardFlagConstant                 = "--ff-only"
	pushSubcommandConstant                      = "push"
	addSubcommandConstant                       = "add"
	pathspecSeparatorConstant                   = "--"
	diffSubcommandConstant                      = "diff"
	diffCachedFlagConstant                      = "--cached"
	diffQuietFlagConstant                       = "--quiet"
	commitSubcommandConstant                    = "commit"
	commitMessageFlagConstant                   = "-m"
	stagedChangesExitCodeConstant               = 1
	stagedInspectionErrorTemplateConstant       = "failed to inspect staged changes: %w"
	gitTerminalPromptEnvironmentNameConstant    = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptEnvironmentDisableConstant = "0"
)

// ErrExecutorNotConfigured indicates the repository manager was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorMissingMessageConstant)

// GitExecutor runs git commands on behalf of the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs repository-level git operations through a shell executor.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager backed by the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// CheckCleanWorktree reports whether the repository has no uncommitted modifications.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error) {
	executionResult, executionError := manager.executeGit(executionContext, repositoryPath, statusSubcommandConstant, statusPorcelainFlagConstant)
	if executionError != nil {
		return false, executionError
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) == 0, nil
}

// GetCurrentBranch resolves the branch the repository currently has checked out.
func (manager *RepositoryManager) GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	executionResult, executionError := manager.executeGit(executionContext, repositoryPath, revParseSubcommandConstant, revParseAbbrevRefFlagConstant, headReferenceConstant)
	if executionError != nil {
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// PullBranch fast-forwards the repository from the named remote branch.
func (manager *RepositoryManager) PullBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error {
	_, executionError := manager.executeGit(executionContext, repositoryPath, pullSubcommandConstant, pullFastForwardFlagConstant, remoteName, branchName)
	return executionError
}

// PushBranch publishes local commits to the named remote branch.
func (manager *RepositoryManager) PushBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error {
	_, executionError := manager.executeGit(executionContext, repositoryPath, pushSubcommandConstant, remoteName, branchName)
	return executionError
}

// StagePaths adds the supplied paths to the repository index.
func (manager *RepositoryManager) StagePaths(executionContext context.Context, repositoryPath string, paths []string) error {
	arguments := []string{addSubcommandConstant, pathspecSeparatorConstant}
	arguments = append(arguments, paths...)
	_, executionError := manager.executeGit(executionContext, repositoryPath, arguments...)
	return executionError
}

// HasStagedChanges reports whether anything is currently staged for commit.
func (manager *RepositoryManager) HasStagedChanges(executionContext context.Context, repositoryPath string) (bool, error) {
	_, executionError := manager.executeGit(executionContext, repositoryPath, diffSubcommandConstant, diffCachedFlagConstant, diffQuietFlagConstant)
	if executionError == nil {
		return false, nil
	}

	commandFailure := execshell.CommandFailedError{}
	if errors.As(executionError, &commandFailure) && commandFailure.Result.ExitCode == stagedChangesExitCodeConstant {
		return true, nil
	}
	return false, fmt.Errorf(stagedInspectionErrorTemplateConstant, executionError)
}

// CommitStaged records the staged changes with the supplied commit message.
func (manager *RepositoryManager) CommitStaged(executionContext context.Context, repositoryPath string, commitMessage string) error {
	_, executionError := manager.executeGit(executionContext, repositoryPath, commitSubcommandConstant, commitMessageFlagConstant, commitMessage)
	return executionError
}

func (manager *RepositoryManager) executeGit(executionContext context.Context, repositoryPath string, arguments ...string) (execshell.ExecutionResult, error) {
	details := execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repositoryPath,
		EnvironmentVariables: map[string]string{
			gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptEnvironmentDisableConstant,
		},
	}
	return manager.executor.ExecuteGit(executionContext, details)
}
