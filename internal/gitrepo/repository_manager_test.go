package gitrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/specsync/internal/execshell"
	"github.com/temirov/specsync/internal/gitrepo"
)

const (
	testRepositoryPathConstant = "/workspace/target"
	testRemoteNameConstant     = "origin"
	testBranchNameConstant     = "master"
	testCommitMessageConstant  = "Update fixture data"
)

type scriptedGitExecutor struct {
	results          []execshell.ExecutionResult
	invocationErrors []error
	recordedCommands []execshell.CommandDetails
}

func (executor *scriptedGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedCommands = append(executor.recordedCommands, details)
	invocationIndex := len(executor.recordedCommands) - 1

	var executionError error
	if invocationIndex < len(executor.invocationErrors) {
		executionError = executor.invocationErrors[invocationIndex]
	}
	executionResult := execshell.ExecutionResult{}
	if invocationIndex < len(executor.results) {
		executionResult = executor.results[invocationIndex]
	}
	return executionResult, executionError
}

func TestNewRepositoryManagerValidatesExecutor(t *testing.T) {
	manager, creationError := gitrepo.NewRepositoryManager(nil)
	require.ErrorIs(t, creationError, gitrepo.ErrExecutorNotConfigured)
	require.Nil(t, manager)
}

func TestCheckCleanWorktree(t *testing.T) {
	testCases := []struct {
		name           string
		statusOutput   string
		expectedResult bool
	}{
		{name: "clean", statusOutput: "\n", expectedResult: true},
		{name: "dirty", statusOutput: " M openapi/spec3.yaml\n", expectedResult: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			executor := &scriptedGitExecutor{results: []execshell.ExecutionResult{{StandardOutput: testCase.statusOutput}}}
			manager, creationError := gitrepo.NewRepositoryManager(executor)
			require.NoError(t, creationError)

			clean, checkError := manager.CheckCleanWorktree(context.Background(), testRepositoryPathConstant)
			require.NoError(t, checkError)
			require.Equal(t, testCase.expectedResult, clean)
			require.Len(t, executor.recordedCommands, 1)
			require.Equal(t, []string{"status", "--porcelain"}, executor.recordedCommands[0].Arguments)
			require.Equal(t, testRepositoryPathConstant, executor.recordedCommands[0].WorkingDirectory)
		})
	}
}

func TestGetCurrentBranchTrimsOutput(t *testing.T) {
	executor := &scriptedGitExecutor{results: []execshell.ExecutionResult{{StandardOutput: testBranchNameConstant + "\n"}}}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	branchName, branchError := manager.GetCurrentBranch(context.Background(), testRepositoryPathConstant)
	require.NoError(t, branchError)
	require.Equal(t, testBranchNameConstant, branchName)
	require.Equal(t, []string{"rev-parse", "--abbrev-ref", "HEAD"}, executor.recordedCommands[0].Arguments)
}

func TestPullAndPushUseRemoteAndBranch(t *testing.T) {
	executor := &scriptedGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	require.NoError(t, manager.PullBranch(context.Background(), testRepositoryPathConstant, testRemoteNameConstant, testBranchNameConstant))
	require.NoError(t, manager.PushBranch(context.Background(), testRepositoryPathConstant, testRemoteNameConstant, testBranchNameConstant))

	require.Len(t, executor.recordedCommands, 2)
	require.Equal(t, []string{"pull", "--ff-only", testRemoteNameConstant, testBranchNameConstant}, executor.recordedCommands[0].Arguments)
	require.Equal(t, []string{"push", testRemoteNameConstant, testBranchNameConstant}, executor.recordedCommands[1].Arguments)
}

func TestStagePathsAppendsPathspecs(t *testing.T) {
	executor := &scriptedGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	stageError := manager.StagePaths(context.Background(), testRepositoryPathConstant, []string{"openapi/fixtures.yaml", "openapi/fixtures.json"})
	require.NoError(t, stageError)
	require.Equal(t, []string{"add", "--", "openapi/fixtures.yaml", "openapi/fixtures.json"}, executor.recordedCommands[0].Arguments)
}

func TestHasStagedChanges(t *testing.T) {
	testCases := []struct {
		name           string
		invocationErr  error
		expectedStaged bool
		expectError    bool
	}{
		{
			name:           "nothing_staged",
			invocationErr:  nil,
			expectedStaged: false,
		},
		{
			name: "staged_changes",
			invocationErr: execshell.CommandFailedError{
				Result: execshell.ExecutionResult{ExitCode: 1},
			},
			expectedStaged: true,
		},
		{
			name:          "inspection_failure",
			invocationErr: errors.New("git unavailable"),
			expectError:   true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			executor := &scriptedGitExecutor{invocationErrors: []error{testCase.invocationErr}}
			manager, creationError := gitrepo.NewRepositoryManager(executor)
			require.NoError(t, creationError)

			staged, stagedError := manager.HasStagedChanges(context.Background(), testRepositoryPathConstant)
			if testCase.expectError {
				require.ErrorContains(t, stagedError, "failed to inspect staged changes")
				return
			}
			require.NoError(t, stagedError)
			require.Equal(t, testCase.expectedStaged, staged)
			require.Equal(t, []string{"diff", "--cached", "--quiet"}, executor.recordedCommands[0].Arguments)
		})
	}
}

func TestCommitStagedUsesMessageFlag(t *testing.T) {
	executor := &scriptedGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	commitError := manager.CommitStaged(context.Background(), testRepositoryPathConstant, testCommitMessageConstant)
	require.NoError(t, commitError)
	require.Equal(t, []string{"commit", "-m", testCommitMessageConstant}, executor.recordedCommands[0].Arguments)
}

func TestGitCommandsDisableTerminalPrompts(t *testing.T) {
	executor := &scriptedGitExecutor{}
	manager, creationError := gitrepo.NewRepositoryManager(executor)
	require.NoError(t, creationError)

	require.NoError(t, manager.PullBranch(context.Background(), testRepositoryPathConstant, testRemoteNameConstant, testBranchNameConstant))
	require.Equal(t, "0", executor.recordedCommands[0].EnvironmentVariables["GIT_TERMINAL_PROMPT"])
}
