package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents one graded exercise submission
type Submission struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ExerciseID    uuid.UUID `db:"exercise_id" json:"exercise_id"`
	UserID        uuid.UUID `db:"user_id" json:"user_id"`
	SubmittedCode string    `db:"submitted_code" json:"submitted_code"`
	IsCorrect     bool      `db:"is_correct" json:"is_correct"`
	Score         int       `db:"score" json:"score"`
	TimeMs        int64     `db:"execution_time" json:"execution_time"`
	ErrorMessage  *string   `db:"error_message" json:"error_message,omitempty"`
	SubmittedAt   time.Time `db:"submitted_at" json:"submitted_at"`
}

// NewSubmission creates a submission record from a validation outcome
func NewSubmission(exerciseID, userID uuid.UUID, code string, result *ValidationResult, errorMessage *string) *Submission {
	return &Submission{
		ID:            uuid.New(),
		ExerciseID:    exerciseID,
		UserID:        userID,
		SubmittedCode: code,
		IsCorrect:     result.OverallSuccess,
		Score:         result.Score,
		TimeMs:        result.TotalTimeMs,
		ErrorMessage:  errorMessage,
		SubmittedAt:   time.Now(),
	}
}

type SubmissionTable struct {
	ID            string
	ExerciseID    string
	UserID        string
	SubmittedCode string
	IsCorrect     string
	Score         string
	TimeMs        string
	ErrorMessage  string
	SubmittedAt   string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:            "id",
		ExerciseID:    "exercise_id",
		UserID:        "user_id",
		SubmittedCode: "submitted_code",
		IsCorrect:     "is_correct",
		Score:         "score",
		TimeMs:        "execution_time",
		ErrorMessage:  "error_message",
		SubmittedAt:   "submitted_at",
	}
}

func (SubmissionTable) TableName() string {
	return "exercise_submissions"
}
