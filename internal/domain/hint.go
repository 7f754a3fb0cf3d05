package domain

import "github.com/google/uuid"

// Hint represents a stored exercise hint. Ordinal is 1-based; the i-th hint
// unlocks after i graded attempts.
type Hint struct {
	ID         uuid.UUID `db:"id"`
	ExerciseID uuid.UUID `db:"exercise_id"`
	Ordinal    int       `db:"order_index"`
	Text       string    `db:"hint_text"`
}

// HintView represents a hint as shown to a user: either the real text or a
// locked placeholder. Computed fresh per request, never persisted.
type HintView struct {
	ID       uuid.UUID `json:"id"`
	Ordinal  int       `json:"order_index"`
	Text     string    `json:"hint_text"`
	Unlocked bool      `json:"unlocked"`
}

type HintTable struct {
	ID         string
	ExerciseID string
	Ordinal    string
	Text       string
}

func GetHintTable() HintTable {
	return HintTable{
		ID:         "id",
		ExerciseID: "exercise_id",
		Ordinal:    "order_index",
		Text:       "hint_text",
	}
}

func (HintTable) TableName() string {
	return "exercise_hints"
}
