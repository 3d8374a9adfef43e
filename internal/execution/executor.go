package execution

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ttest/internal/domain"
)

// Executor runs commands and reports their results
type Executor interface {
	Execute(ctx context.Context, commands []domain.Command) ([]domain.CommandResult, time.Duration, error)
}

// Observer is told about every command before and after it runs
type Observer interface {
	Started(index, total int, command domain.Command)
	Finished(index, total int, result domain.CommandResult)
}

// CommandError is returned when a command fails; remaining commands were not started
type CommandError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// SequentialExecutor runs commands one at a time and stops at the first failure
type SequentialExecutor struct {
	runner   *Runner
	observer Observer
	logger   *zap.Logger
}

// NewSequentialExecutor creates a fail-fast executor
func NewSequentialExecutor(runner *Runner, logger *zap.Logger) *SequentialExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SequentialExecutor{runner: runner, logger: logger}
}

// SetObserver sets the observer notified around each command
func (e *SequentialExecutor) SetObserver(observer Observer) {
	e.observer = observer
}

// Execute runs commands in order, waiting for each to exit before starting the next
func (e *SequentialExecutor) Execute(ctx context.Context, commands []domain.Command) ([]domain.CommandResult, time.Duration, error) {
	startTime := time.Now()
	results := make([]domain.CommandResult, 0, len(commands))

	for i, command := range commands {
		if e.observer != nil {
			e.observer.Started(i, len(commands), command)
		}

		result := e.runner.Run(ctx, command)
		results = append(results, result)

		if e.observer != nil {
			e.observer.Finished(i, len(commands), result)
		}

		e.logger.Debug("command finished",
			zap.String("adapter", command.Adapter),
			zap.String("command", command.Line),
			zap.Int("exit_code", result.ExitCode),
			zap.Duration("duration", result.Duration))

		if !result.Success {
			e.logger.Debug("stopping after failed command", zap.Int("skipped", len(commands)-i-1))
			return results, time.Since(startTime), &CommandError{
				Command:  command.Line,
				ExitCode: result.ExitCode,
				Err:      result.Error,
			}
		}
	}

	return results, time.Since(startTime), nil
}
