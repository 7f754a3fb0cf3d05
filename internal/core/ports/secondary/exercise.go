package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codecamp-2025.net/internal/domain"
)

type ExerciseRepository interface {
	// GetExercise retrieves an exercise by ID; nil when not found
	GetExercise(ctx context.Context, exerciseID uuid.UUID) (*domain.Exercise, error)

	// GetTestCases retrieves the exercise's test cases in stored order
	GetTestCases(ctx context.Context, exerciseID uuid.UUID) ([]*domain.TestCase, error)

	// GetHints retrieves the exercise's hints in stored order
	GetHints(ctx context.Context, exerciseID uuid.UUID) ([]*domain.Hint, error)
}
