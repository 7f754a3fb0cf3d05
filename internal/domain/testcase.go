package domain

import "github.com/google/uuid"

// TestCase represents a single grading test case for an exercise.
// Ordinal is the 1-based stored order; it defines execution order.
type TestCase struct {
	ID             uuid.UUID `db:"id"`
	ExerciseID     uuid.UUID `db:"exercise_id"`
	Ordinal        int       `db:"order_index"`
	Input          string    `db:"input_data"`
	ExpectedOutput string    `db:"expected_output"`
	IsHidden       bool      `db:"is_hidden"`
}

type TestCaseTable struct {
	ID             string
	ExerciseID     string
	Ordinal        string
	Input          string
	ExpectedOutput string
	IsHidden       string
}

func GetTestCaseTable() TestCaseTable {
	return TestCaseTable{
		ID:             "id",
		ExerciseID:     "exercise_id",
		Ordinal:        "order_index",
		Input:          "input_data",
		ExpectedOutput: "expected_output",
		IsHidden:       "is_hidden",
	}
}

func (TestCaseTable) TableName() string {
	return "exercise_test_cases"
}
