package exercise

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	"gitlab.com/codecamp-2025.net/internal/core/ports/secondary"
	"gitlab.com/codecamp-2025.net/internal/core/services/hint"
	"gitlab.com/codecamp-2025.net/internal/core/services/validation"
	"gitlab.com/codecamp-2025.net/internal/domain"
	"gitlab.com/codecamp-2025.net/internal/static/errs"
)

var _ IExerciseService = (*ExerciseService)(nil)

// ExerciseService is the submission-facing collaborator around the grading
// core: it resolves exercises and test cases, persists submissions and keeps
// the attempt-count cache coherent. It holds no grading logic of its own.
type ExerciseService struct {
	exerciseRepo   secondary.ExerciseRepository
	submissionRepo secondary.SubmissionRepository
	attemptCache   secondary.AttemptCache
	validator      validation.IValidationService
	hints          hint.IHintService
	logger         primary.Logger
}

// NewExerciseService creates a new exercise service
func NewExerciseService(
	exerciseRepo secondary.ExerciseRepository,
	submissionRepo secondary.SubmissionRepository,
	attemptCache secondary.AttemptCache,
	validator validation.IValidationService,
	hints hint.IHintService,
	logger primary.Logger,
) *ExerciseService {
	return &ExerciseService{
		exerciseRepo:   exerciseRepo,
		submissionRepo: submissionRepo,
		attemptCache:   attemptCache,
		validator:      validator,
		hints:          hints,
		logger:         logger,
	}
}

// SubmitExercise grades and persists one submission
func (s *ExerciseService) SubmitExercise(ctx context.Context, exerciseID, userID uuid.UUID, code string) (*SubmissionOutcome, error) {
	testCases, err := s.loadTestCases(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	result, err := s.validator.Validate(ctx, code, testCases)
	if err != nil {
		return nil, err
	}

	var errorMessage *string
	if msg := validation.ExtractErrorMessage(result); msg != "" {
		errorMessage = &msg
	}

	submission := domain.NewSubmission(exerciseID, userID, code, result, errorMessage)
	if err := s.submissionRepo.SaveSubmission(ctx, submission); err != nil {
		s.logger.Error("Failed to save submission", "exerciseId", exerciseID, "error", err)
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	// The attempt count moved; a stale cache entry would delay hint unlocks.
	if err := s.attemptCache.Invalidate(ctx, exerciseID, userID); err != nil {
		s.logger.Warn("Failed to invalidate attempt cache", "exerciseId", exerciseID, "error", err)
	}

	return &SubmissionOutcome{
		Submission: submission,
		Validation: result,
	}, nil
}

// CompareWithSolution grades the submission and the reference solution
func (s *ExerciseService) CompareWithSolution(ctx context.Context, exerciseID uuid.UUID, code string) (*domain.ComparisonResult, error) {
	ex, err := s.exerciseRepo.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	if ex == nil {
		return nil, errs.ExerciseNotFound
	}
	if ex.SolutionCode == nil || *ex.SolutionCode == "" {
		return nil, errs.NoReferenceSolution
	}

	testCases, err := s.loadTestCases(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	return s.validator.Compare(ctx, code, *ex.SolutionCode, testCases)
}

// GetHints resolves hints against the user's graded attempt count
func (s *ExerciseService) GetHints(ctx context.Context, exerciseID, userID uuid.UUID, maxHints int) ([]domain.HintView, error) {
	hints, err := s.exerciseRepo.GetHints(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hints: %w", err)
	}

	attempts, err := s.attemptCount(ctx, exerciseID, userID)
	if err != nil {
		return nil, err
	}

	return s.hints.Resolve(hints, attempts, maxHints), nil
}

// GetUserSubmissions lists submissions, newest first
func (s *ExerciseService) GetUserSubmissions(ctx context.Context, userID uuid.UUID, exerciseID *uuid.UUID, limit int) ([]*domain.Submission, error) {
	return s.submissionRepo.GetUserSubmissions(ctx, userID, exerciseID, limit)
}

func (s *ExerciseService) loadTestCases(ctx context.Context, exerciseID uuid.UUID) ([]*domain.TestCase, error) {
	ex, err := s.exerciseRepo.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise: %w", err)
	}
	if ex == nil {
		return nil, errs.ExerciseNotFound
	}

	testCases, err := s.exerciseRepo.GetTestCases(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get test cases: %w", err)
	}
	if len(testCases) == 0 {
		return nil, errs.NoTestCases
	}

	return testCases, nil
}

func (s *ExerciseService) attemptCount(ctx context.Context, exerciseID, userID uuid.UUID) (int, error) {
	if cached, err := s.attemptCache.Get(ctx, exerciseID, userID); err == nil && cached >= 0 {
		return cached, nil
	}

	attempts, err := s.submissionRepo.CountAttempts(ctx, exerciseID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}

	if err := s.attemptCache.Set(ctx, exerciseID, userID, attempts); err != nil {
		s.logger.Warn("Failed to cache attempt count", "exerciseId", exerciseID, "error", err)
	}

	return attempts, nil
}
