package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// CategoryRepository implements ports.CategoryRepository on SQLite.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context, page, limit int) ([]*domain.Category, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	var categories []*domain.Category
	err := r.db.WithContext(ctx).
		Order("id").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&categories).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	return categories, total, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	result := r.db.WithContext(ctx).Model(&domain.Category{ID: category.ID}).Updates(map[string]any{
		"name":        category.Name,
		"description": category.Description,
	})
	if result.Error != nil {
		return fmt.Errorf("update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// DeleteWithReassign deletes the category after re-pointing its quotes to the
// fallback category and detaching its pending suggestions, all in one
// transaction. Either every step lands or none does. Returns the number of
// quotes reassigned.
func (r *CategoryRepository) DeleteWithReassign(ctx context.Context, id, fallbackID uint) (int64, error) {
	var reassigned int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		moved := tx.Model(&domain.Quote{}).
			Where("category_id = ?", id).
			Update("category_id", fallbackID)
		if moved.Error != nil {
			return fmt.Errorf("reassign quotes: %w", moved.Error)
		}
		reassigned = moved.RowsAffected

		if err := tx.Model(&domain.SuggestedQuote{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("detach suggestions: %w", err)
		}

		result := tx.Delete(&domain.Category{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrCategoryNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reassigned, nil
}
