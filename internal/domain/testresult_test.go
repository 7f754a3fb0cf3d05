package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactedMasksHiddenCase(t *testing.T) {
	result := TestCaseResult{
		Ordinal:        2,
		Passed:         false,
		Input:          "secret input",
		ExpectedOutput: "secret expected",
		ActualOutput:   "secret actual",
		WallClockMs:    42,
		Hidden:         true,
	}

	redacted := result.Redacted()

	assert.Equal(t, HiddenMarker, redacted.Input)
	assert.Equal(t, HiddenMarker, redacted.ExpectedOutput)
	assert.Equal(t, HiddenMarker, redacted.ActualOutput)
	assert.False(t, redacted.Passed)
	assert.Equal(t, int64(42), redacted.WallClockMs)
	assert.Equal(t, 2, redacted.Ordinal)
}

func TestRedactedKeepsVisibleCase(t *testing.T) {
	result := TestCaseResult{
		Input:          "1 2",
		ExpectedOutput: "3",
		ActualOutput:   "3",
		Passed:         true,
	}

	assert.Equal(t, result, result.Redacted())
}

func TestRedactedResultsPreservesOrder(t *testing.T) {
	v := ValidationResult{
		TestResults: []TestCaseResult{
			{Ordinal: 1, Input: "a"},
			{Ordinal: 2, Input: "b", Hidden: true},
			{Ordinal: 3, Input: "c"},
		},
	}

	redacted := v.RedactedResults()

	assert.Len(t, redacted, 3)
	assert.Equal(t, "a", redacted[0].Input)
	assert.Equal(t, HiddenMarker, redacted[1].Input)
	assert.Equal(t, "c", redacted[2].Input)
}

func TestComparisonRedactedMasksBothSides(t *testing.T) {
	hidden := TestCaseResult{Ordinal: 1, Passed: true, Input: "secret", ExpectedOutput: "42", ActualOutput: "42", Hidden: true}
	c := ComparisonResult{
		Submitted:        &ValidationResult{Score: 100, TestResults: []TestCaseResult{hidden}},
		Reference:        &ValidationResult{Score: 100, TestResults: []TestCaseResult{hidden}},
		MatchesReference: true,
	}

	redacted := c.Redacted()

	assert.Equal(t, HiddenMarker, redacted.Submitted.TestResults[0].Input)
	assert.Equal(t, HiddenMarker, redacted.Reference.TestResults[0].ActualOutput)
	assert.Equal(t, 100, redacted.Submitted.Score)
	assert.True(t, redacted.MatchesReference)

	// The original keeps its real values for internal use.
	assert.Equal(t, "secret", c.Submitted.TestResults[0].Input)
}

func TestComparisonRedactedNilSides(t *testing.T) {
	redacted := ComparisonResult{}.Redacted()

	assert.Nil(t, redacted.Submitted)
	assert.Nil(t, redacted.Reference)
}
