package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForPullIncludesRemoteAndBranch(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"pull", "--ff-only", "origin", "master"},
			WorkingDirectory: "/workspace/target",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Pulling master from origin in /workspace/target", message)
}

func TestBuildStartedMessageForCommitIncludesMessage(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"commit", "-m", "Update fixture data"},
			WorkingDirectory: "/workspace/target",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, `Committing staged changes in /workspace/target with message "Update fixture data"`, message)
}

func TestBuildFailureMessageForUnknownSubcommandUsesGenericLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandGit,
		Details: CommandDetails{Arguments: []string{"stash"}},
	}

	message := formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 1, StandardError: "boom"})

	require.Equal(t, "git stash failed with exit code 1: boom", message)
}
