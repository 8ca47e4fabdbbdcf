package ports

import (
	"context"
	"time"
)

// CreateCategoryInput carries the data for a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput carries a partial category update. Nil fields are untouched.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategoryView is the category payload returned to callers.
type CategoryView struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
}

// ListCategoriesResult is returned by List.
type ListCategoriesResult struct {
	Items      []CategoryView
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// DeleteCategoryResult reports the outcome of a guarded category deletion.
type DeleteCategoryResult struct {
	Name         string // name of the deleted category
	FallbackName string // name of the category that absorbed its quotes
	Reassigned   int64  // number of quotes re-pointed to the fallback
}

// CategoryService defines use-case operations for categories, including the
// guarded deletion that reassigns dependent quotes to the fallback category.
type CategoryService interface {
	List(ctx context.Context, page, limit int) (*ListCategoriesResult, error)
	Get(ctx context.Context, id uint) (*CategoryView, error)
	Create(ctx context.Context, input CreateCategoryInput) (*CategoryView, error)
	Update(ctx context.Context, id uint, input UpdateCategoryInput) error
	Delete(ctx context.Context, id uint) (*DeleteCategoryResult, error)
}
