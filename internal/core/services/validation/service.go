package validation

import (
	"context"

	"gitlab.com/codecamp-2025.net/internal/domain"
)

type IValidationService interface {
	// Validate grades one submission against the test cases in their stored
	// order. Precondition: at least one test case (errs.NoTestCases
	// otherwise).
	Validate(ctx context.Context, source string, testCases []*domain.TestCase) (*domain.ValidationResult, error)

	// Compare grades the submitted and the reference source against the
	// identical test case list and diffs their outcomes.
	Compare(ctx context.Context, submittedSource, referenceSource string, testCases []*domain.TestCase) (*domain.ComparisonResult, error)
}
