package hint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/codecamp-2025.net/internal/domain"
)

func hintList(n int) []*domain.Hint {
	hints := make([]*domain.Hint, 0, n)
	for i := 0; i < n; i++ {
		hints = append(hints, &domain.Hint{
			Ordinal: i + 1,
			Text:    fmt.Sprintf("real hint %d", i+1),
		})
	}
	return hints
}

func TestResolveNoAttempts(t *testing.T) {
	svc := NewHintService()

	views := svc.Resolve(hintList(3), 0, 0)

	assert.Len(t, views, 3)
	for i, v := range views {
		assert.False(t, v.Unlocked)
		assert.Equal(t, fmt.Sprintf("Hint %d (unlocked after %d attempts)", i+1, i+1), v.Text)
	}
}

func TestResolveUnlockBoundary(t *testing.T) {
	svc := NewHintService()

	// attempts == i unlocks exactly the first i hints
	views := svc.Resolve(hintList(3), 2, 0)

	assert.True(t, views[0].Unlocked)
	assert.Equal(t, "real hint 1", views[0].Text)
	assert.True(t, views[1].Unlocked)
	assert.Equal(t, "real hint 2", views[1].Text)
	assert.False(t, views[2].Unlocked)
	assert.Equal(t, "Hint 3 (unlocked after 3 attempts)", views[2].Text)
}

func TestResolveAllUnlocked(t *testing.T) {
	svc := NewHintService()

	views := svc.Resolve(hintList(3), 10, 0)

	for i, v := range views {
		assert.True(t, v.Unlocked)
		assert.Equal(t, fmt.Sprintf("real hint %d", i+1), v.Text)
	}
}

func TestResolveMaxHintsTruncates(t *testing.T) {
	svc := NewHintService()

	views := svc.Resolve(hintList(5), 5, 2)

	assert.Len(t, views, 2)
	for _, v := range views {
		assert.True(t, v.Unlocked)
	}
}

func TestResolveMaxHintsLargerThanList(t *testing.T) {
	svc := NewHintService()

	views := svc.Resolve(hintList(2), 0, 10)

	assert.Len(t, views, 2)
}

func TestResolveEmptyHints(t *testing.T) {
	svc := NewHintService()

	views := svc.Resolve(nil, 3, 0)

	assert.Empty(t, views)
}
