package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	loggerNotConfiguredMessageConstant        = "logger not configured"
	commandRunnerNotConfiguredMessageConstant = "command runner not configured"
	commandFailedTemplateConstant             = "%s %s failed with exit code %d%s"
	commandExecutionFailedTemplateConstant    = "%s %s could not be executed: %s"
	commandArgumentsSeparatorConstant         = " "
	standardErrorDetailTemplateConstant       = ": %s"
	gitCommandNameConstant                    = "git"
)

// ErrLoggerNotConfigured indicates the executor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrCommandRunnerNotConfigured indicates the executor was constructed without a command runner.
var ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)

// CommandName identifies an executable invoked through the executor.
type CommandName string

// CommandGit names the git executable.
const CommandGit CommandName = CommandName(gitCommandNameConstant)

// CommandDetails describes the arguments and environment for a single invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand couples an executable name with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outputs of a completed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner executes shell commands and reports their results.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// CommandFailedError reports a command that ran to completion with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failing command and its exit code.
func (failure CommandFailedError) Error() string {
	standardErrorDetail := ""
	trimmedStandardError := strings.TrimSpace(failure.Result.StandardError)
	if len(trimmedStandardError) > 0 {
		standardErrorDetail = fmt.Sprintf(standardErrorDetailTemplateConstant, trimmedStandardError)
	}
	return fmt.Sprintf(
		commandFailedTemplateConstant,
		failure.Command.Name,
		strings.Join(failure.Command.Details.Arguments, commandArgumentsSeparatorConstant),
		failure.Result.ExitCode,
		standardErrorDetail,
	)
}

// CommandExecutionError reports a command that could not be started or run at all.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the command that failed to execute.
func (failure CommandExecutionError) Error() string {
	return fmt.Sprintf(
		commandExecutionFailedTemplateConstant,
		failure.Command.Name,
		strings.Join(failure.Command.Details.Arguments, commandArgumentsSeparatorConstant),
		failure.Cause,
	)
}

// Unwrap exposes the underlying execution failure.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}

// ShellExecutor runs shell commands through a CommandRunner with structured logging.
type ShellExecutor struct {
	logger           *zap.Logger
	commandRunner    CommandRunner
	messageFormatter CommandMessageFormatter
}

// NewShellExecutor constructs a ShellExecutor after validating its collaborators.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	return &ShellExecutor{
		logger:           logger,
		commandRunner:    commandRunner,
		messageFormatter: CommandMessageFormatter{},
	}, nil
}

// ExecuteGit runs the git executable with the supplied details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logger.Debug(executor.messageFormatter.BuildStartedMessage(command))

	executionResult, executionError := executor.commandRunner.Run(executionContext, command)
	if executionError != nil {
		wrappedError := CommandExecutionError{Command: command, Cause: executionError}
		executor.logger.Error(executor.messageFormatter.BuildExecutionFailureMessage(command, executionError))
		return ExecutionResult{}, wrappedError
	}

	if executionResult.ExitCode != 0 {
		failure := CommandFailedError{Command: command, Result: executionResult}
		executor.logger.Debug(executor.messageFormatter.BuildFailureMessage(command, executionResult))
		return executionResult, failure
	}

	executor.logger.Debug(executor.messageFormatter.BuildSuccessMessage(command))
	return executionResult, nil
}
