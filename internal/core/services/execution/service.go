package execution

import (
	"context"

	"gitlab.com/codecamp-2025.net/internal/domain"
)

type IExecutionService interface {
	// Execute runs one free-form execution request and returns a normalized
	// result. Expected failures (timeout, non-zero exit, program crash) are
	// folded into the result; only errs.RuntimeUnavailable comes back as an
	// error.
	Execute(ctx context.Context, req *domain.ExecutionRequest) (*domain.ExecutionResult, error)
}
