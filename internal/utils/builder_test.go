package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSelectWithConditions(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Select("id", "score").
		From("exercise_submissions").
		Where("user_id = ?", "u1").
		And("exercise_id = ?", "e1").
		OrderBy("submitted_at", false).
		Build()

	assert.Equal(t,
		"SELECT id, score FROM public.exercise_submissions WHERE user_id = ? AND exercise_id = ? ORDER BY submitted_at DESC",
		query)
	assert.Equal(t, []interface{}{"u1", "e1"}, args)
}

func TestBuildSelectWithOr(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Select("id").
		From("users").
		Where("email = ?", "a@b.c").
		Or("user_name = ?", "a").
		Build()

	assert.Equal(t, "SELECT id FROM public.users WHERE email = ? OR user_name = ?", query)
	assert.Len(t, args, 2)
}

func TestBuildInsert(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Insert("id", "score").
		Into("exercise_submissions").
		Values("s1", 100).
		Build()

	assert.Equal(t, "INSERT INTO public.exercise_submissions (id, score) VALUES (?, ?)", query)
	assert.Equal(t, []interface{}{"s1", 100}, args)
}

func TestBuildInsertColumnMismatch(t *testing.T) {
	query, args := NewQueryBuilder("public").
		Insert("id", "score").
		Into("exercise_submissions").
		Values("only-one").
		Build()

	assert.Empty(t, query)
	assert.Nil(t, args)
}
