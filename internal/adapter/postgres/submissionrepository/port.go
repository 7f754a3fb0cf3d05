// package submissionrepository contains the PostgreSQL implementation of the
// submission repository
package submissionrepository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	"gitlab.com/codecamp-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecamp-2025.net/internal/domain"
	querybuilder "gitlab.com/codecamp-2025.net/internal/utils"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSubmission persists one graded submission
func (r *SubmissionRepository) SaveSubmission(ctx context.Context, submission *domain.Submission) error {
	subTbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder("public").
		Insert(
			subTbl.ID,
			subTbl.ExerciseID,
			subTbl.UserID,
			subTbl.SubmittedCode,
			subTbl.IsCorrect,
			subTbl.Score,
			subTbl.TimeMs,
			subTbl.ErrorMessage,
			subTbl.SubmittedAt,
		).
		Into(subTbl.TableName()).
		Values(
			submission.ID,
			submission.ExerciseID,
			submission.UserID,
			submission.SubmittedCode,
			submission.IsCorrect,
			submission.Score,
			submission.TimeMs,
			submission.ErrorMessage,
			submission.SubmittedAt,
		).Build()

	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.logger.Error("Failed to save submission", "submissionId", submission.ID, "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// GetUserSubmissions retrieves a user's submissions, newest first
func (r *SubmissionRepository) GetUserSubmissions(ctx context.Context, userID uuid.UUID, exerciseID *uuid.UUID, limit int) ([]*domain.Submission, error) {
	subTbl := domain.GetSubmissionTable()
	qb := querybuilder.NewQueryBuilder("public").
		Select(
			subTbl.ID,
			subTbl.ExerciseID,
			subTbl.UserID,
			subTbl.SubmittedCode,
			subTbl.IsCorrect,
			subTbl.Score,
			subTbl.TimeMs,
			subTbl.ErrorMessage,
			subTbl.SubmittedAt,
		).
		From(subTbl.TableName()).
		Where(subTbl.UserID+" = ?", userID)

	if exerciseID != nil {
		qb = qb.And(subTbl.ExerciseID+" = ?", *exerciseID)
	}

	query, args := qb.OrderBy(subTbl.SubmittedAt, false).Build()
	query = r.db.Rebind(query + fmt.Sprintf(" LIMIT %d", limit))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to get submissions", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := rows.Scan(
			&s.ID,
			&s.ExerciseID,
			&s.UserID,
			&s.SubmittedCode,
			&s.IsCorrect,
			&s.Score,
			&s.TimeMs,
			&s.ErrorMessage,
			&s.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, &s)
	}

	return submissions, rows.Err()
}

// CountAttempts returns how many graded submissions the user has made for
// the exercise
func (r *SubmissionRepository) CountAttempts(ctx context.Context, exerciseID, userID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM exercise_submissions
		WHERE exercise_id = $1 AND user_id = $2
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, exerciseID, userID).Scan(&count); err != nil {
		r.logger.Error("Failed to count attempts", "exerciseId", exerciseID, "userId", userID, "error", err)
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}

	return count, nil
}
