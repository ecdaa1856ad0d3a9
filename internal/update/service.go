package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	sourcePathRequiredMessageConstant       = "source repository path must be provided"
	targetPathRequiredMessageConstant       = "target repository path must be provided"
	branchNameRequiredMessageConstant       = "branch name must be provided"
	remoteNameRequiredMessageConstant       = "remote name must be provided"
	repositoryManagerMissingMessageConstant = "repository manager not configured"
	fileSystemMissingMessageConstant        = "file system not configured"
	sourceMissingMessageConstant            = "source repository does not exist"
	sourceBranchMismatchMessageConstant     = "source repository is not on the required branch"
	targetDirtyMessageConstant              = "target repository has uncommitted changes"

	sourceInspectionErrorTemplateConstant  = "failed to inspect source repository %s: %w"
	sourceBranchErrorTemplateConstant      = "failed to identify source repository branch: %w"
	branchMismatchDetailTemplateConstant   = "%w: %s must be on branch %s, found %s"
	targetDirtyDetailTemplateConstant      = "%w: %s"
	sourceMissingDetailTemplateConstant    = "%w: %s"
	cleanVerificationErrorTemplateConstant = "failed to verify clean worktree in %s: %w"
	pullFailureTemplateConstant            = "failed to pull %s from %s: %w"
	copyFailureTemplateConstant            = "failed to copy document %s: %w"
	readFailureTemplateConstant            = "failed to read document %s: %w"
	conversionFailureTemplateConstant      = "failed to rewrite document %s as JSON: %w"
	writeFailureTemplateConstant           = "failed to write document %s: %w"
	globFailureTemplateConstant            = "failed to list documents matching %s: %w"
	stageFailureTemplateConstant           = "failed to stage documents for %q: %w"
	stagedCheckFailureTemplateConstant     = "failed to check staged documents for %q: %w"
	commitFailureTemplateConstant          = "failed to commit %q: %w"
	pushFailureTemplateConstant            = "failed to push %s to %s: %w"

	fixturesCommitMessageConstant      = "Update fixture data"
	specificationCommitMessageConstant = "Update OpenAPI specification"

	rewrittenDocumentPermissionsConstant = 0o644
)

// ErrRepositoryManagerNotConfigured indicates the repository manager dependency was missing.
var ErrRepositoryManagerNotConfigured = errors.New(repositoryManagerMissingMessageConstant)

// ErrFileSystemNotConfigured indicates the file system dependency was missing.
var ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)

// ErrSourcePathRequired indicates the source repository path option was empty.
var ErrSourcePathRequired = errors.New(sourcePathRequiredMessageConstant)

// ErrTargetPathRequired indicates the target repository path option was empty.
var ErrTargetPathRequired = errors.New(targetPathRequiredMessageConstant)

// ErrBranchNameRequired indicates the branch name option was empty.
var ErrBranchNameRequired = errors.New(branchNameRequiredMessageConstant)

// ErrRemoteNameRequired indicates the remote name option was empty.
var ErrRemoteNameRequired = errors.New(remoteNameRequiredMessageConstant)

// ErrSourceRepositoryMissing indicates the source repository path does not exist.
var ErrSourceRepositoryMissing = errors.New(sourceMissingMessageConstant)

// ErrSourceBranchMismatch indicates the source repository is checked out on the wrong branch.
var ErrSourceBranchMismatch = errors.New(sourceBranchMismatchMessageConstant)

// ErrTargetWorktreeDirty indicates the target repository holds uncommitted modifications.
var ErrTargetWorktreeDirty = errors.New(targetDirtyMessageConstant)

// Dependencies enumerates external collaborators required for update operations.
type Dependencies struct {
	RepositoryManager GitRepositoryManager
	FileSystem        FileSystem
}

// Options configures a synchronization run.
type Options struct {
	SourceRepositoryPath string
	TargetRepositoryPath string
	BranchName           string
	RemoteName           string
	DryRun               bool
}

// Result captures the observable outcomes of a synchronization run.
type Result struct {
	ChangesDetected        bool
	FixturesCommitted      bool
	SpecificationCommitted bool
	PushCompleted          bool
}

// Service coordinates the synchronization of OpenAPI documents between repositories.
type Service struct {
	repositoryManager GitRepositoryManager
	fileSystem        FileSystem
}

// NewService constructs a Service from the provided dependencies.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.RepositoryManager == nil {
		return nil, ErrRepositoryManagerNotConfigured
	}
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	return &Service{repositoryManager: dependencies.RepositoryManager, fileSystem: dependencies.FileSystem}, nil
}

// Update runs the full synchronization sequence and reports what happened.
func (service *Service) Update(executionContext context.Context, options Options) (Result, error) {
	sanitizedOptions, optionsError := sanitizeOptions(options)
	if optionsError != nil {
		return Result{}, optionsError
	}

	if preconditionError := service.checkPreconditions(executionContext, sanitizedOptions); preconditionError != nil {
		return Result{}, preconditionError
	}

	if pullError := service.repositoryManager.PullBranch(executionContext, sanitizedOptions.TargetRepositoryPath, sanitizedOptions.RemoteName, sanitizedOptions.BranchName); pullError != nil {
		return Result{}, fmt.Errorf(pullFailureTemplateConstant, sanitizedOptions.BranchName, sanitizedOptions.RemoteName, pullError)
	}

	if synchronizeError := service.synchronizeResources(sanitizedOptions); synchronizeError != nil {
		return Result{}, synchronizeError
	}

	targetClean, cleanError := service.repositoryManager.CheckCleanWorktree(executionContext, sanitizedOptions.TargetRepositoryPath)
	if cleanError != nil {
		return Result{}, fmt.Errorf(cleanVerificationErrorTemplateConstant, sanitizedOptions.TargetRepositoryPath, cleanError)
	}
	if targetClean {
		return Result{ChangesDetected: false}, nil
	}

	runResult := Result{ChangesDetected: true}

	fixturesCommitted, fixturesError := service.stageAndCommitGroup(executionContext, sanitizedOptions, fixturesGlobPath(sanitizedOptions.TargetRepositoryPath), fixturesCommitMessageConstant)
	if fixturesError != nil {
		return Result{}, fixturesError
	}
	runResult.FixturesCommitted = fixturesCommitted

	specificationCommitted, specificationError := service.stageAndCommitGroup(executionContext, sanitizedOptions, specificationGlobPath(sanitizedOptions.TargetRepositoryPath), specificationCommitMessageConstant)
	if specificationError != nil {
		return Result{}, specificationError
	}
	runResult.SpecificationCommitted = specificationCommitted

	if sanitizedOptions.DryRun {
		return runResult, nil
	}

	if pushError := service.repositoryManager.PushBranch(executionContext, sanitizedOptions.TargetRepositoryPath, sanitizedOptions.RemoteName, sanitizedOptions.BranchName); pushError != nil {
		return Result{}, fmt.Errorf(pushFailureTemplateConstant, sanitizedOptions.BranchName, sanitizedOptions.RemoteName, pushError)
	}
	runResult.PushCompleted = true

	return runResult, nil
}

func sanitizeOptions(options Options) (Options, error) {
	sanitized := Options{
		SourceRepositoryPath: strings.TrimSpace(options.SourceRepositoryPath),
		TargetRepositoryPath: strings.TrimSpace(options.TargetRepositoryPath),
		BranchName:           strings.TrimSpace(options.BranchName),
		RemoteName:           strings.TrimSpace(options.RemoteName),
		DryRun:               options.DryRun,
	}

	switch {
	case len(sanitized.SourceRepositoryPath) == 0:
		return Options{}, ErrSourcePathRequired
	case len(sanitized.TargetRepositoryPath) == 0:
		return Options{}, ErrTargetPathRequired
	case len(sanitized.BranchName) == 0:
		return Options{}, ErrBranchNameRequired
	case len(sanitized.RemoteName) == 0:
		return Options{}, ErrRemoteNameRequired
	}

	return sanitized, nil
}

func (service *Service) checkPreconditions(executionContext context.Context, options Options) error {
	_, statError := service.fileSystem.Stat(options.SourceRepositoryPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return fmt.Errorf(sourceMissingDetailTemplateConstant, ErrSourceRepositoryMissing, options.SourceRepositoryPath)
		}
		return fmt.Errorf(sourceInspectionErrorTemplateConstant, options.SourceRepositoryPath, statError)
	}

	currentBranch, branchError := service.repositoryManager.GetCurrentBranch(executionContext, options.SourceRepositoryPath)
	if branchError != nil {
		return fmt.Errorf(sourceBranchErrorTemplateConstant, branchError)
	}
	if currentBranch != options.BranchName {
		return fmt.Errorf(branchMismatchDetailTemplateConstant, ErrSourceBranchMismatch, options.SourceRepositoryPath, options.BranchName, currentBranch)
	}

	targetClean, cleanError := service.repositoryManager.CheckCleanWorktree(executionContext, options.TargetRepositoryPath)
	if cleanError != nil {
		return fmt.Errorf(cleanVerificationErrorTemplateConstant, options.TargetRepositoryPath, cleanError)
	}
	if !targetClean {
		return fmt.Errorf(targetDirtyDetailTemplateConstant, ErrTargetWorktreeDirty, options.TargetRepositoryPath)
	}

	return nil
}

func (service *Service) synchronizeResources(options Options) error {
	for _, resourceName := range resourceNames {
		sourcePath := sourceDocumentPath(options.SourceRepositoryPath, resourceName)
		targetPath := targetDocumentPath(options.TargetRepositoryPath, resourceName)
		rewrittenPath := targetRewrittenDocumentPath(options.TargetRepositoryPath, resourceName)

		if copyError := service.fileSystem.CopyFile(sourcePath, targetPath); copyError != nil {
			return fmt.Errorf(copyFailureTemplateConstant, resourceName, copyError)
		}

		yamlContent, readError := service.fileSystem.ReadFile(targetPath)
		if readError != nil {
			return fmt.Errorf(readFailureTemplateConstant, resourceName, readError)
		}

		jsonContent, conversionError := ConvertYAMLToJSON(yamlContent)
		if conversionError != nil {
			return fmt.Errorf(conversionFailureTemplateConstant, resourceName, conversionError)
		}

		if writeError := service.fileSystem.WriteFile(rewrittenPath, jsonContent, rewrittenDocumentPermissionsConstant); writeError != nil {
			return fmt.Errorf(writeFailureTemplateConstant, resourceName, writeError)
		}
	}
	return nil
}

func (service *Service) stageAndCommitGroup(executionContext context.Context, options Options, globPattern string, commitMessage string) (bool, error) {
	matchedPaths, globError := service.fileSystem.Glob(globPattern)
	if globError != nil {
		return false, fmt.Errorf(globFailureTemplateConstant, globPattern, globError)
	}

	if len(matchedPaths) > 0 {
		if stageError := service.repositoryManager.StagePaths(executionContext, options.TargetRepositoryPath, matchedPaths); stageError != nil {
			return false, fmt.Errorf(stageFailureTemplateConstant, commitMessage, stageError)
		}
	}

	staged, stagedError := service.repositoryManager.HasStagedChanges(executionContext, options.TargetRepositoryPath)
	if stagedError != nil {
		return false, fmt.Errorf(stagedCheckFailureTemplateConstant, commitMessage, stagedError)
	}
	if !staged {
		return false, nil
	}

	if commitError := service.repositoryManager.CommitStaged(executionContext, options.TargetRepositoryPath, commitMessage); commitError != nil {
		return false, fmt.Errorf(commitFailureTemplateConstant, commitMessage, commitError)
	}
	return true, nil
}
