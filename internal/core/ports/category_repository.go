package ports

import (
	"context"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	FindByID(ctx context.Context, id uint) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	// List returns a page of categories in id order and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.Category, int64, error)
	Update(ctx context.Context, c *domain.Category) error
	// DeleteWithReassign atomically re-points all quotes of category id to
	// fallbackID, nulls out suggestion references to it, and deletes the
	// category. Returns the number of reassigned quotes.
	DeleteWithReassign(ctx context.Context, id, fallbackID uint) (int64, error)
}
