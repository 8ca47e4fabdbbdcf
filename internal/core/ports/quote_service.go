package ports

import (
	"context"
	"time"
)

// CreateQuoteInput carries all data needed to create a new quote.
type CreateQuoteInput struct {
	Text       string
	Author     string
	ImageURL   string
	CategoryID uint
}

// UpdateQuoteInput carries a partial quote update. Nil fields are untouched;
// the category is always re-pointed and must reference an existing category.
type UpdateQuoteInput struct {
	Text       *string
	Author     *string
	CategoryID uint
}

// QuoteView is the quote payload returned to callers, enriched with the
// category name.
type QuoteView struct {
	ID           uint
	Text         string
	Author       string
	ImageURL     string
	CreatedAt    time.Time
	CategoryID   uint
	CategoryName string
}

// ListQuotesInput carries all parameters for the list endpoint.
type ListQuotesInput struct {
	CategoryID *uint
	Page       int
	Limit      int
}

// ListQuotesResult is returned by List.
type ListQuotesResult struct {
	Items      []QuoteView
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// QuoteService defines use-case operations for quotes.
type QuoteService interface {
	// Random picks a quote pseudo-randomly from the pool, suppressing an
	// immediate repeat of the last-served quote on a best-effort basis.
	// An empty pool yields (nil, nil) — an explicit empty result, not an error.
	Random(ctx context.Context, categoryID *uint) (*QuoteView, error)
	Get(ctx context.Context, id uint) (*QuoteView, error)
	List(ctx context.Context, input ListQuotesInput) (*ListQuotesResult, error)
	Create(ctx context.Context, input CreateQuoteInput) (*QuoteView, error)
	Update(ctx context.Context, id uint, input UpdateQuoteInput) error
	Delete(ctx context.Context, id uint) error
}
