package ports

import (
	"context"
	"time"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// SubmitSuggestionInput carries a user-submitted candidate quote.
type SubmitSuggestionInput struct {
	Text       string
	Author     string
	CategoryID *uint // optional at submission; required for approval
	UserID     uint
}

// SuggestionView is the suggestion payload returned to its submitter.
type SuggestionView struct {
	ID           uint
	Text         string
	Author       string
	CategoryID   *uint
	CategoryName string
	Status       domain.SuggestionStatus
	CreatedAt    time.Time
}

// SuggestionAdminView enriches SuggestionView with submitter identity for the
// moderation queue.
type SuggestionAdminView struct {
	SuggestionView
	UserID    uint
	UserEmail string
}

// ApproveResult reports the quote materialized from an approved suggestion.
type ApproveResult struct {
	QuoteID uint
}

// SuggestionService drives the Pending -> Approved/Rejected moderation
// workflow for user-submitted quotes.
type SuggestionService interface {
	Submit(ctx context.Context, input SubmitSuggestionInput) (*SuggestionView, error)
	ListForUser(ctx context.Context, userID uint) ([]SuggestionView, error)
	// RandomForUser picks uniformly from the user's own suggestions (any
	// status), optionally filtered by category. An empty set yields
	// (nil, nil). Unlike the public random quote, there is no last-served
	// suppression here.
	RandomForUser(ctx context.Context, userID uint, categoryID *uint) (*SuggestionView, error)
	ListAll(ctx context.Context) ([]SuggestionAdminView, error)
	// Approve materializes the suggestion into a new quote and marks it
	// Approved, atomically. Approving an already-moderated suggestion fails
	// with domain.ErrSuggestionNotPending.
	Approve(ctx context.Context, id uint) (*ApproveResult, error)
	// Reject marks the suggestion Rejected; the record is retained.
	Reject(ctx context.Context, id uint) error
}
