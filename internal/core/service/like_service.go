package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quotify/quotify-api/internal/core/domain"
	"github.com/quotify/quotify-api/internal/core/ports"
)

// LikeService manages the user-likes-quote relation. Uniqueness of the
// (user, quote) pair is enforced by the storage layer; the service only maps
// the outcome.
type LikeService struct {
	likes  ports.LikeRepository
	quotes ports.QuoteRepository
	logger zerolog.Logger
}

func NewLikeService(likes ports.LikeRepository, quotes ports.QuoteRepository, logger zerolog.Logger) *LikeService {
	return &LikeService{likes: likes, quotes: quotes, logger: logger}
}

func (s *LikeService) Like(ctx context.Context, userID, quoteID uint) (uint, error) {
	if _, err := s.quotes.FindByID(ctx, quoteID); err != nil {
		return 0, err
	}

	like := &domain.QuoteLike{UserID: userID, QuoteID: quoteID}
	if err := s.likes.Create(ctx, like); err != nil {
		return 0, err
	}

	s.logger.Info().Uint("user_id", userID).Uint("quote_id", quoteID).Msg("quote liked")
	return like.ID, nil
}

func (s *LikeService) Unlike(ctx context.Context, userID, quoteID uint) error {
	if err := s.likes.Delete(ctx, userID, quoteID); err != nil {
		return err
	}
	s.logger.Info().Uint("user_id", userID).Uint("quote_id", quoteID).Msg("quote unliked")
	return nil
}

func (s *LikeService) ListForUser(ctx context.Context, userID uint) ([]ports.FavouriteQuote, error) {
	likes, err := s.likes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}

	favourites := make([]ports.FavouriteQuote, 0, len(likes))
	for _, l := range likes {
		fav := ports.FavouriteQuote{LikedAt: l.LikedAt}
		if l.Quote != nil {
			fav.QuoteView = quoteView(l.Quote)
		}
		favourites = append(favourites, fav)
	}
	return favourites, nil
}

func (s *LikeService) IsLiked(ctx context.Context, userID, quoteID uint) (bool, error) {
	return s.likes.Exists(ctx, userID, quoteID)
}
