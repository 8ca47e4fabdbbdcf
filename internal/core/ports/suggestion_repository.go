package ports

import (
	"context"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// SuggestionRepository defines persistence operations for suggested quotes.
type SuggestionRepository interface {
	Create(ctx context.Context, s *domain.SuggestedQuote) error
	// FindByID retrieves a suggestion with its category preloaded.
	FindByID(ctx context.Context, id uint) (*domain.SuggestedQuote, error)
	// ListByUser returns the user's suggestions (all statuses), optionally
	// restricted to a category, with categories preloaded.
	ListByUser(ctx context.Context, userID uint, categoryID *uint) ([]*domain.SuggestedQuote, error)
	// ListAll returns every suggestion ordered by creation time descending,
	// with submitter and category preloaded.
	ListAll(ctx context.Context) ([]*domain.SuggestedQuote, error)
	// ApproveAndMaterialize atomically flips the suggestion status from
	// Pending to Approved and inserts the given quote. The status flip is
	// guarded by a compare-and-swap on the Pending state: a suggestion that
	// was already moderated yields domain.ErrSuggestionNotPending and no
	// quote is created.
	ApproveAndMaterialize(ctx context.Context, suggestionID uint, quote *domain.Quote) error
	// UpdateStatus flips the suggestion status from one state to another,
	// guarded the same way as ApproveAndMaterialize.
	UpdateStatus(ctx context.Context, id uint, from, to domain.SuggestionStatus) error
}
