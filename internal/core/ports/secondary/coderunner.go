package secondary

import (
	"context"
	"time"

	"gitlab.com/codecamp-2025.net/internal/domain"
)

// CodeRunner executes one untrusted source program inside a fresh isolated
// execution unit and reports its raw outcome.
//
// A returned error always means the runtime itself is unavailable
// (errs.RuntimeUnavailable category). Failures of the executed program,
// including timeouts, are reported through RawRunResult.
type CodeRunner interface {
	Run(ctx context.Context, source string, stdin string, timeout time.Duration) (*domain.RawRunResult, error)
}
