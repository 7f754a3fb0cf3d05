package domain

import "github.com/google/uuid"

// Exercise represents a coding exercise. SolutionCode is the author's
// reference solution; nil means comparison grading is not available.
type Exercise struct {
	ID           uuid.UUID `db:"id"`
	Title        string    `db:"title"`
	Description  *string   `db:"description"`
	StarterCode  *string   `db:"starter_code"`
	SolutionCode *string   `db:"solution_code"`
}

type ExerciseTable struct {
	ID           string
	Title        string
	Description  string
	StarterCode  string
	SolutionCode string
}

func GetExerciseTable() ExerciseTable {
	return ExerciseTable{
		ID:           "id",
		Title:        "title",
		Description:  "description",
		StarterCode:  "starter_code",
		SolutionCode: "solution_code",
	}
}

func (ExerciseTable) TableName() string {
	return "exercises"
}
