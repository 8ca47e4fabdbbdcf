package ports

import (
	"context"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// ListQuotesFilter carries the query parameters for listing quotes.
type ListQuotesFilter struct {
	CategoryID *uint // optional: restrict to a single category
	Page       int   // 1-based
	Limit      int   // max rows per page (capped by the service)
}

// QuoteRepository defines persistence operations for quotes.
type QuoteRepository interface {
	Create(ctx context.Context, q *domain.Quote) error
	// FindByID retrieves a quote with its category preloaded.
	FindByID(ctx context.Context, id uint) (*domain.Quote, error)
	// List returns a page of quotes matching filter and the total count.
	List(ctx context.Context, filter ListQuotesFilter) ([]*domain.Quote, int64, error)
	// Count returns the pool size for random selection, optionally restricted
	// to a category.
	Count(ctx context.Context, categoryID *uint) (int64, error)
	// FindByOffset returns the quote at the given offset in stable id order,
	// optionally restricted to a category. Used by the random selector.
	FindByOffset(ctx context.Context, categoryID *uint, offset int64) (*domain.Quote, error)
	Update(ctx context.Context, q *domain.Quote) error
	Delete(ctx context.Context, id uint) error
}
