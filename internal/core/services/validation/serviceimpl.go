package validation

import (
	"context"
	"fmt"
	"math"
	"strings"

	"gitlab.com/codecamp-2025.net/internal/config"
	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	"gitlab.com/codecamp-2025.net/internal/core/services/execution"
	"gitlab.com/codecamp-2025.net/internal/domain"
	"gitlab.com/codecamp-2025.net/internal/static/errs"
)

var _ IValidationService = (*ValidationService)(nil)

// ValidationService grades submissions by running each test case through the
// execution orchestrator, sequentially and in stored order. Sequential
// execution keeps total time accounting and first-error extraction
// deterministic and avoids piling containers onto the runtime.
type ValidationService struct {
	executor execution.IExecutionService
	cfg      *config.SandboxConfig
	logger   primary.Logger
}

// NewValidationService creates a new validation engine
func NewValidationService(executor execution.IExecutionService, cfg *config.SandboxConfig, logger primary.Logger) *ValidationService {
	return &ValidationService{
		executor: executor,
		cfg:      cfg,
		logger:   logger,
	}
}

// Validate runs the submission against every test case
func (s *ValidationService) Validate(ctx context.Context, source string, testCases []*domain.TestCase) (*domain.ValidationResult, error) {
	if len(testCases) == 0 {
		return nil, errs.NoTestCases
	}

	result := &domain.ValidationResult{
		TotalTests:  len(testCases),
		TestResults: make([]domain.TestCaseResult, 0, len(testCases)),
	}

	for _, tc := range testCases {
		// Grading uses a shorter fixed timeout than free-form execution so a
		// slow submission cannot hold the grader for the full per-request
		// budget on every case.
		execResult, err := s.executor.Execute(ctx, &domain.ExecutionRequest{
			Source:  source,
			Stdin:   tc.Input,
			Timeout: s.cfg.TestCaseTimeout,
		})
		if err != nil {
			return nil, err
		}

		actual := strings.TrimSpace(execResult.Output)
		expected := strings.TrimSpace(tc.ExpectedOutput)
		passed := execResult.Success && actual == expected

		result.TestResults = append(result.TestResults, domain.TestCaseResult{
			Ordinal:        tc.Ordinal,
			Passed:         passed,
			Input:          tc.Input,
			ExpectedOutput: expected,
			ActualOutput:   actual,
			WallClockMs:    execResult.WallClockMs,
			Error:          execResult.Error,
			Hidden:         tc.IsHidden,
		})

		result.TotalTimeMs += execResult.WallClockMs
		if passed {
			result.PassedTests++
		} else {
			result.FailedTests++
		}
	}

	result.OverallSuccess = result.FailedTests == 0
	result.Score = score(result.PassedTests, result.TotalTests)

	s.logger.Info("Submission graded",
		"total", result.TotalTests,
		"passed", result.PassedTests,
		"score", result.Score)

	return result, nil
}

// Compare grades both sources against the same test cases. Two solutions
// match when both grade fully successful with equal scores; score equality
// is kept from the original comparison semantics even though a fully
// successful run always scores 100.
func (s *ValidationService) Compare(ctx context.Context, submittedSource, referenceSource string, testCases []*domain.TestCase) (*domain.ComparisonResult, error) {
	submitted, err := s.Validate(ctx, submittedSource, testCases)
	if err != nil {
		return nil, err
	}

	reference, err := s.Validate(ctx, referenceSource, testCases)
	if err != nil {
		return nil, err
	}

	return &domain.ComparisonResult{
		Submitted: submitted,
		Reference: reference,
		MatchesReference: submitted.OverallSuccess &&
			reference.OverallSuccess &&
			submitted.Score == reference.Score,
	}, nil
}

// ExtractErrorMessage returns the representative error for a failed grading
// run: the first failing test's error, or a synthesized summary when the
// failures are pure output mismatches. Empty string when fully successful.
func ExtractErrorMessage(result *domain.ValidationResult) string {
	if result.OverallSuccess {
		return ""
	}
	for _, tr := range result.TestResults {
		if !tr.Passed && tr.Error != "" {
			return tr.Error
		}
	}
	return fmt.Sprintf("Failed %d out of %d test cases", result.FailedTests, result.TotalTests)
}

func score(passed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}
