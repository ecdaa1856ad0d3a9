package update

import (
	"context"
	"io/fs"

	"github.com/temirov/specsync/internal/execshell"
)

// GitExecutor exposes the subset of shell execution used by the update service.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// GitRepositoryManager exposes repository-level git operations.
type GitRepositoryManager interface {
	CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error)
	GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	PullBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error
	PushBranch(executionContext context.Context, repositoryPath string, remoteName string, branchName string) error
	StagePaths(executionContext context.Context, repositoryPath string, paths []string) error
	HasStagedChanges(executionContext context.Context, repositoryPath string) (bool, error)
	CommitStaged(executionContext context.Context, repositoryPath string, commitMessage string) error
}

// FileSystem exposes the filesystem operations required by the update service.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
	CopyFile(sourcePath string, destinationPath string) error
	Glob(pattern string) ([]string, error)
}
