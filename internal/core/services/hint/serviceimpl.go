package hint

import (
	"fmt"

	"gitlab.com/codecamp-2025.net/internal/domain"
)

var _ IHintService = (*HintService)(nil)

// HintService implements progressive hint unlocking: the i-th hint (1-based)
// unlocks once the user has made at least i graded attempts.
type HintService struct{}

// NewHintService creates a new hint service
func NewHintService() *HintService {
	return &HintService{}
}

// Resolve builds the per-request hint views
func (s *HintService) Resolve(hints []*domain.Hint, attemptCount int, maxHints int) []domain.HintView {
	if maxHints > 0 && len(hints) > maxHints {
		hints = hints[:maxHints]
	}

	views := make([]domain.HintView, 0, len(hints))
	for i, h := range hints {
		view := domain.HintView{
			ID:      h.ID,
			Ordinal: h.Ordinal,
		}
		if attemptCount > i {
			view.Text = h.Text
			view.Unlocked = true
		} else {
			// Locked hints never carry the real text, only how far away
			// the unlock is.
			view.Text = fmt.Sprintf("Hint %d (unlocked after %d attempts)", i+1, i+1)
			view.Unlocked = false
		}
		views = append(views, view)
	}

	return views
}
