package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/quotify/quotify-api/internal/core/domain"
	"github.com/quotify/quotify-api/internal/core/ports"
)

// SuggestionService drives the moderation workflow for user-submitted quotes.
type SuggestionService struct {
	suggestions ports.SuggestionRepository
	categories  ports.CategoryRepository
	logger      zerolog.Logger

	randInt func(n int64) int64
}

func NewSuggestionService(suggestions ports.SuggestionRepository, categories ports.CategoryRepository, logger zerolog.Logger) *SuggestionService {
	return &SuggestionService{
		suggestions: suggestions,
		categories:  categories,
		logger:      logger,
		randInt:     rand.Int64N,
	}
}

// Submit records a new suggestion in the Pending state. A category reference,
// when supplied, must point at an existing category.
func (s *SuggestionService) Submit(ctx context.Context, input ports.SubmitSuggestionInput) (*ports.SuggestionView, error) {
	var categoryName string
	if input.CategoryID != nil {
		category, err := s.categories.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		categoryName = category.Name
	}

	suggestion := &domain.SuggestedQuote{
		Text:       input.Text,
		Author:     input.Author,
		CategoryID: input.CategoryID,
		UserID:     input.UserID,
		Status:     domain.SuggestionPending,
	}
	if err := s.suggestions.Create(ctx, suggestion); err != nil {
		s.logger.Error().Err(err).Uint("user_id", input.UserID).Msg("failed to create suggestion")
		return nil, err
	}

	s.logger.Info().Uint("suggestion_id", suggestion.ID).Uint("user_id", input.UserID).Msg("suggestion submitted")

	view := suggestionView(suggestion)
	view.CategoryName = categoryName
	return &view, nil
}

func (s *SuggestionService) ListForUser(ctx context.Context, userID uint) ([]ports.SuggestionView, error) {
	suggestions, err := s.suggestions.ListByUser(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}

	views := make([]ports.SuggestionView, 0, len(suggestions))
	for _, sq := range suggestions {
		views = append(views, suggestionView(sq))
	}
	return views, nil
}

// RandomForUser draws uniformly from the user's own suggestions, any status.
// There is no last-served suppression: repeats are fine here.
func (s *SuggestionService) RandomForUser(ctx context.Context, userID uint, categoryID *uint) (*ports.SuggestionView, error) {
	suggestions, err := s.suggestions.ListByUser(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("random suggestion: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, nil
	}

	pick := suggestions[s.randInt(int64(len(suggestions)))]
	view := suggestionView(pick)
	return &view, nil
}

func (s *SuggestionService) ListAll(ctx context.Context) ([]ports.SuggestionAdminView, error) {
	suggestions, err := s.suggestions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all suggestions: %w", err)
	}

	views := make([]ports.SuggestionAdminView, 0, len(suggestions))
	for _, sq := range suggestions {
		view := ports.SuggestionAdminView{
			SuggestionView: suggestionView(sq),
			UserID:         sq.UserID,
		}
		if sq.User != nil {
			view.UserEmail = sq.User.Email
		}
		views = append(views, view)
	}
	return views, nil
}

// Approve materializes the suggestion into a new quote and flips its status,
// atomically. A suggestion without a category, or whose category no longer
// exists, cannot become a quote and fails loudly. Approving an
// already-moderated suggestion fails with domain.ErrSuggestionNotPending and
// never creates a second quote.
func (s *SuggestionService) Approve(ctx context.Context, id uint) (*ports.ApproveResult, error) {
	suggestion, err := s.suggestions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if suggestion.CategoryID == nil {
		return nil, domain.ErrSuggestionWithoutCategory
	}
	if _, err := s.categories.FindByID(ctx, *suggestion.CategoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, domain.ErrSuggestionCategoryGone
		}
		return nil, fmt.Errorf("approve suggestion: %w", err)
	}

	quote := &domain.Quote{
		Text:       suggestion.Text,
		Author:     suggestion.Author,
		CategoryID: *suggestion.CategoryID,
	}
	if err := s.suggestions.ApproveAndMaterialize(ctx, id, quote); err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("suggestion_id", id).
		Uint("quote_id", quote.ID).
		Msg("suggestion approved, quote created")

	return &ports.ApproveResult{QuoteID: quote.ID}, nil
}

// Reject flips the suggestion to Rejected. The record is retained for history.
func (s *SuggestionService) Reject(ctx context.Context, id uint) error {
	if err := s.suggestions.UpdateStatus(ctx, id, domain.SuggestionPending, domain.SuggestionRejected); err != nil {
		return err
	}
	s.logger.Info().Uint("suggestion_id", id).Msg("suggestion rejected")
	return nil
}

func suggestionView(sq *domain.SuggestedQuote) ports.SuggestionView {
	view := ports.SuggestionView{
		ID:         sq.ID,
		Text:       sq.Text,
		Author:     sq.Author,
		CategoryID: sq.CategoryID,
		Status:     sq.Status,
		CreatedAt:  sq.CreatedAt,
	}
	if sq.Category != nil {
		view.CategoryName = sq.Category.Name
	}
	return view
}
