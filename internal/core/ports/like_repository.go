package ports

import (
	"context"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// LikeRepository defines persistence operations for quote likes. Uniqueness of
// the (user, quote) pair is enforced by the storage layer, not just here.
type LikeRepository interface {
	// Create inserts a like; a duplicate (user, quote) pair yields
	// domain.ErrAlreadyLiked.
	Create(ctx context.Context, l *domain.QuoteLike) error
	// Delete removes the like for the pair; absence yields domain.ErrLikeNotFound.
	Delete(ctx context.Context, userID, quoteID uint) error
	// ListByUser returns the user's likes ordered by liked_at descending,
	// with quotes and their categories preloaded.
	ListByUser(ctx context.Context, userID uint) ([]*domain.QuoteLike, error)
	Exists(ctx context.Context, userID, quoteID uint) (bool, error)
}
