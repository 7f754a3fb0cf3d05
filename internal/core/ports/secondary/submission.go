package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codecamp-2025.net/internal/domain"
)

type SubmissionRepository interface {
	// SaveSubmission persists one graded submission
	SaveSubmission(ctx context.Context, submission *domain.Submission) error

	// GetUserSubmissions retrieves a user's submissions, newest first.
	// exerciseID nil means all exercises.
	GetUserSubmissions(ctx context.Context, userID uuid.UUID, exerciseID *uuid.UUID, limit int) ([]*domain.Submission, error)

	// CountAttempts returns how many graded submissions the user has made
	// for the exercise; drives hint unlocking.
	CountAttempts(ctx context.Context, exerciseID, userID uuid.UUID) (int, error)
}

// AttemptCache caches per-user attempt counts. A negative count from Get
// means cache miss.
type AttemptCache interface {
	Get(ctx context.Context, exerciseID, userID uuid.UUID) (int, error)
	Set(ctx context.Context, exerciseID, userID uuid.UUID, count int) error
	Invalidate(ctx context.Context, exerciseID, userID uuid.UUID) error
}
