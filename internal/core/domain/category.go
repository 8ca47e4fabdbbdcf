package domain

import (
	"errors"
	"time"
)

// FallbackCategoryName is the reserved category that absorbs quotes when their
// own category is deleted. It must exist before any deletion can proceed and
// can never be deleted itself.
const FallbackCategoryName = "Uncategorized"

var ErrCategoryNotFound = errors.New("category not found")
var ErrCategoryNameRequired = errors.New("category name is required")
var ErrNoFallbackCategory = errors.New("fallback category does not exist")
var ErrFallbackCategoryProtected = errors.New("fallback category cannot be deleted")

// Category is a named grouping of quotes.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description,omitempty" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}
