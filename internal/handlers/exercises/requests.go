package exercises

import (
	"github.com/google/uuid"

	"gitlab.com/codecamp-2025.net/internal/domain"
)

// SubmitRequest represents a request to grade submitted code
type SubmitRequest struct {
	Code string `json:"code"`
}

// SubmitResponse represents a graded submission. Hidden test case content
// is masked before it gets here.
type SubmitResponse struct {
	SubmissionID uuid.UUID               `json:"submission_id"`
	IsCorrect    bool                    `json:"is_correct"`
	Score        int                     `json:"score"`
	TotalTests   int                     `json:"total_tests"`
	PassedTests  int                     `json:"passed_tests"`
	FailedTests  int                     `json:"failed_tests"`
	TotalTimeMs  int64                   `json:"total_execution_time"`
	ErrorMessage *string                 `json:"error_message,omitempty"`
	TestResults  []domain.TestCaseResult `json:"test_results"`
}

// CompareRequest represents a request to compare code with the reference
// solution
type CompareRequest struct {
	Code string `json:"code"`
}

// HintsResponse represents the hint list for one user and exercise
type HintsResponse struct {
	Hints []domain.HintView `json:"hints"`
}
