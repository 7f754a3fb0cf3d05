package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codecamp-2025.net/internal/config"
	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	"gitlab.com/codecamp-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecamp-2025.net/internal/domain"
	"gitlab.com/codecamp-2025.net/internal/static/errs"
)

var _ IExecutionService = (*ExecutionService)(nil)

// ExecutionService turns one ExecutionRequest into one ExecutionResult.
// It is the only component that measures wall-clock time and assigns
// execution identity; isolation is delegated to the runner port.
type ExecutionService struct {
	runner secondary.CodeRunner
	cfg    *config.SandboxConfig
	logger primary.Logger
}

// NewExecutionService creates a new execution orchestrator
func NewExecutionService(runner secondary.CodeRunner, cfg *config.SandboxConfig, logger primary.Logger) *ExecutionService {
	return &ExecutionService{
		runner: runner,
		cfg:    cfg,
		logger: logger,
	}
}

// Execute runs the request inside a fresh isolated unit
func (s *ExecutionService) Execute(ctx context.Context, req *domain.ExecutionRequest) (*domain.ExecutionResult, error) {
	executionID := uuid.New().String()
	timeout := s.clampTimeout(req.Timeout)

	s.logger.Debug("Executing code", "executionId", executionID, "timeout", timeout)

	start := time.Now()
	raw, err := s.runner.Run(ctx, req.Source, req.Stdin, timeout)
	if err != nil {
		if errors.Is(err, errs.RuntimeUnavailable) {
			s.logger.Error("Execution runtime unavailable", "executionId", executionID, "error", err)
			return nil, err
		}
		// Runtime reported a per-run failure before the program could finish.
		// That is data, not an error condition for the caller.
		return &domain.ExecutionResult{
			ExecutionID: executionID,
			Success:     false,
			Output:      "",
			Error:       fmt.Sprintf("Execution failed: %v", err),
			WallClockMs: time.Since(start).Milliseconds(),
			ExitCode:    domain.SentinelExitCode,
		}, nil
	}

	if raw.TimedOut {
		// Once the hard kill fires there is no meaningful elapsed time to
		// report beyond the deadline itself.
		return &domain.ExecutionResult{
			ExecutionID: executionID,
			Success:     false,
			Output:      "",
			Error:       fmt.Sprintf("Code execution timed out after %d seconds", int(timeout.Seconds())),
			WallClockMs: timeout.Milliseconds(),
			ExitCode:    domain.SentinelExitCode,
		}, nil
	}

	success := raw.ExitCode == 0
	result := &domain.ExecutionResult{
		ExecutionID: executionID,
		Success:     success,
		Output:      raw.Output,
		WallClockMs: time.Since(start).Milliseconds(),
		ExitCode:    raw.ExitCode,
	}
	if !success {
		// stdout and stderr are one combined stream; on failure the same
		// text doubles as the error detail.
		result.Error = raw.Output
	}

	return result, nil
}

// clampTimeout bounds a caller-supplied timeout to the configured window
func (s *ExecutionService) clampTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return s.cfg.DefaultTimeout
	}
	if timeout < time.Second {
		return time.Second
	}
	if timeout > s.cfg.MaxTimeout {
		return s.cfg.MaxTimeout
	}
	return timeout
}
