// package exerciserepository contains the PostgreSQL implementation of the
// exercise repository
package exerciserepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	"gitlab.com/codecamp-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecamp-2025.net/internal/domain"
)

var _ secondary.ExerciseRepository = (*ExerciseRepository)(nil)

type ExerciseRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewExerciseRepository creates a new PostgreSQL exercise repository
func NewExerciseRepository(db *sqlx.DB, logger primary.Logger) *ExerciseRepository {
	return &ExerciseRepository{
		db:     db,
		logger: logger,
	}
}

// GetExercise retrieves an exercise by ID; nil when not found
func (r *ExerciseRepository) GetExercise(ctx context.Context, exerciseID uuid.UUID) (*domain.Exercise, error) {
	query := `
		SELECT id, title, description, starter_code, solution_code
		FROM exercises
		WHERE id = $1
	`

	var ex domain.Exercise
	err := r.db.QueryRowContext(ctx, query, exerciseID).Scan(
		&ex.ID,
		&ex.Title,
		&ex.Description,
		&ex.StarterCode,
		&ex.SolutionCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get exercise", "exerciseId", exerciseID, "error", err)
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}

	return &ex, nil
}

// GetTestCases retrieves the exercise's test cases in stored order
func (r *ExerciseRepository) GetTestCases(ctx context.Context, exerciseID uuid.UUID) ([]*domain.TestCase, error) {
	query := `
		SELECT id, exercise_id, order_index, COALESCE(input_data, ''), expected_output, is_hidden
		FROM exercise_test_cases
		WHERE exercise_id = $1
		ORDER BY order_index
	`

	rows, err := r.db.QueryContext(ctx, query, exerciseID)
	if err != nil {
		r.logger.Error("Failed to get test cases", "exerciseId", exerciseID, "error", err)
		return nil, fmt.Errorf("failed to get test cases: %w", err)
	}
	defer rows.Close()

	var testCases []*domain.TestCase
	for rows.Next() {
		var tc domain.TestCase
		if err := rows.Scan(&tc.ID, &tc.ExerciseID, &tc.Ordinal, &tc.Input, &tc.ExpectedOutput, &tc.IsHidden); err != nil {
			return nil, fmt.Errorf("failed to scan test case: %w", err)
		}
		testCases = append(testCases, &tc)
	}

	return testCases, rows.Err()
}

// GetHints retrieves the exercise's hints in stored order
func (r *ExerciseRepository) GetHints(ctx context.Context, exerciseID uuid.UUID) ([]*domain.Hint, error) {
	query := `
		SELECT id, exercise_id, order_index, hint_text
		FROM exercise_hints
		WHERE exercise_id = $1
		ORDER BY order_index
	`

	rows, err := r.db.QueryContext(ctx, query, exerciseID)
	if err != nil {
		r.logger.Error("Failed to get hints", "exerciseId", exerciseID, "error", err)
		return nil, fmt.Errorf("failed to get hints: %w", err)
	}
	defer rows.Close()

	var hints []*domain.Hint
	for rows.Next() {
		var h domain.Hint
		if err := rows.Scan(&h.ID, &h.ExerciseID, &h.Ordinal, &h.Text); err != nil {
			return nil, fmt.Errorf("failed to scan hint: %w", err)
		}
		hints = append(hints, &h)
	}

	return hints, rows.Err()
}
