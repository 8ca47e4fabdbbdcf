package ports

import (
	"context"
	"time"
)

// FavouriteQuote is a liked quote enriched with the like timestamp.
type FavouriteQuote struct {
	QuoteView
	LikedAt time.Time
}

// LikeService manages the user-likes-quote relation.
type LikeService interface {
	// Like records the favourite and returns the new like id. Liking a
	// nonexistent quote fails with domain.ErrQuoteNotFound; liking twice
	// fails with domain.ErrAlreadyLiked.
	Like(ctx context.Context, userID, quoteID uint) (uint, error)
	Unlike(ctx context.Context, userID, quoteID uint) error
	ListForUser(ctx context.Context, userID uint) ([]FavouriteQuote, error)
	// IsLiked is a pure existence check; it never fails on absence.
	IsLiked(ctx context.Context, userID, quoteID uint) (bool, error)
}
