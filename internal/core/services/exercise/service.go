package exercise

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codecamp-2025.net/internal/domain"
)

// SubmissionOutcome bundles the persisted submission with the full grading
// result it was derived from. Redaction happens at the handler boundary.
type SubmissionOutcome struct {
	Submission *domain.Submission
	Validation *domain.ValidationResult
}

type IExerciseService interface {
	// SubmitExercise grades submitted code against the exercise's test cases
	// and persists the submission record.
	SubmitExercise(ctx context.Context, exerciseID, userID uuid.UUID, code string) (*SubmissionOutcome, error)

	// CompareWithSolution grades the submitted code and the exercise's
	// reference solution against the same test cases.
	CompareWithSolution(ctx context.Context, exerciseID uuid.UUID, code string) (*domain.ComparisonResult, error)

	// GetHints resolves the exercise's hints against the user's attempt
	// count. maxHints > 0 limits how many hints are returned.
	GetHints(ctx context.Context, exerciseID, userID uuid.UUID, maxHints int) ([]domain.HintView, error)

	// GetUserSubmissions lists a user's submissions, newest first
	GetUserSubmissions(ctx context.Context, userID uuid.UUID, exerciseID *uuid.UUID, limit int) ([]*domain.Submission, error)
}
