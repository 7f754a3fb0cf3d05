package domain

// HiddenMarker replaces test case content that must never reach the
// submitting user. Redaction is keyed off TestCase.IsHidden only.
const HiddenMarker = "[Hidden]"

// TestCaseResult represents the graded outcome of one test case.
// Input/ExpectedOutput/ActualOutput always hold the real values here;
// submission-facing views go through Redacted.
type TestCaseResult struct {
	Ordinal        int    `json:"test_case_id"`
	Passed         bool   `json:"passed"`
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	ActualOutput   string `json:"actual_output"`
	WallClockMs    int64  `json:"execution_time"`
	Error          string `json:"error,omitempty"`
	Hidden         bool   `json:"-"`
}

// Redacted returns the externally visible form of the result. For hidden
// test cases the input, expected output and actual output are all masked;
// pass/fail and timing survive.
func (r TestCaseResult) Redacted() TestCaseResult {
	if !r.Hidden {
		return r
	}
	out := r
	out.Input = HiddenMarker
	out.ExpectedOutput = HiddenMarker
	out.ActualOutput = HiddenMarker
	return out
}

// ValidationResult represents a full grading run of one submission against
// an ordered test case list.
type ValidationResult struct {
	TotalTests     int              `json:"total_tests"`
	PassedTests    int              `json:"passed_tests"`
	FailedTests    int              `json:"failed_tests"`
	OverallSuccess bool             `json:"overall_success"`
	Score          int              `json:"score"`
	TestResults    []TestCaseResult `json:"test_results"`
	TotalTimeMs    int64            `json:"total_execution_time"`
}

// RedactedResults returns the test results with hidden cases masked,
// preserving order.
func (v ValidationResult) RedactedResults() []TestCaseResult {
	out := make([]TestCaseResult, 0, len(v.TestResults))
	for _, tr := range v.TestResults {
		out = append(out, tr.Redacted())
	}
	return out
}

// Redacted returns a copy of the validation result with hidden test case
// content masked; aggregate counts and score are unaffected.
func (v ValidationResult) Redacted() ValidationResult {
	out := v
	out.TestResults = v.RedactedResults()
	return out
}

// ComparisonResult represents the outcome of grading a submission and the
// reference solution against the same test cases.
type ComparisonResult struct {
	Submitted        *ValidationResult `json:"submitted_solution"`
	Reference        *ValidationResult `json:"reference_solution"`
	MatchesReference bool              `json:"matches_reference"`
}

// Redacted masks hidden test case content in both graded results. The
// reference run needs masking as much as the submitted one: for a passing
// hidden case its actual output equals the expected output.
func (c ComparisonResult) Redacted() ComparisonResult {
	out := c
	if c.Submitted != nil {
		submitted := c.Submitted.Redacted()
		out.Submitted = &submitted
	}
	if c.Reference != nil {
		reference := c.Reference.Redacted()
		out.Reference = &reference
	}
	return out
}
