package hint

import "gitlab.com/codecamp-2025.net/internal/domain"

type IHintService interface {
	// Resolve computes the hint views for one request. attemptCount is
	// supplied by the caller; this layer performs no counting itself.
	// maxHints > 0 truncates the list before unlock evaluation.
	Resolve(hints []*domain.Hint, attemptCount int, maxHints int) []domain.HintView
}
