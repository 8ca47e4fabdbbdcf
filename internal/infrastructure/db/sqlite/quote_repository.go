package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/quotify/quotify-api/internal/core/domain"
	"github.com/quotify/quotify-api/internal/core/ports"
)

// QuoteRepository implements ports.QuoteRepository on SQLite.
type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, quote *domain.Quote) error {
	if err := r.db.WithContext(ctx).Create(quote).Error; err != nil {
		return fmt.Errorf("create quote: %w", err)
	}
	return nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id uint) (*domain.Quote, error) {
	var quote domain.Quote
	err := r.db.WithContext(ctx).Preload("Category").First(&quote, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("find quote: %w", err)
	}
	return &quote, nil
}

func (r *QuoteRepository) List(ctx context.Context, filter ports.ListQuotesFilter) ([]*domain.Quote, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Quote{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count quotes: %w", err)
	}

	var quotes []*domain.Quote
	err := query.
		Preload("Category").
		Order("id").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&quotes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, total, nil
}

func (r *QuoteRepository) Count(ctx context.Context, categoryID *uint) (int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Quote{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return total, nil
}

// FindByOffset returns the quote at the given position in a stable id
// ordering, optionally restricted to a category. The stable ordering makes an
// offset drawn uniformly in [0, count) a uniform draw over the pool.
func (r *QuoteRepository) FindByOffset(ctx context.Context, categoryID *uint, offset int64) (*domain.Quote, error) {
	query := r.db.WithContext(ctx).Model(&domain.Quote{})
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var quotes []*domain.Quote
	err := query.
		Preload("Category").
		Order("id").
		Offset(int(offset)).
		Limit(1).
		Find(&quotes).Error
	if err != nil {
		return nil, fmt.Errorf("quote by offset: %w", err)
	}
	if len(quotes) == 0 {
		return nil, domain.ErrQuoteNotFound
	}
	return quotes[0], nil
}

func (r *QuoteRepository) Update(ctx context.Context, quote *domain.Quote) error {
	result := r.db.WithContext(ctx).Model(&domain.Quote{ID: quote.ID}).Updates(map[string]any{
		"text":        quote.Text,
		"author":      quote.Author,
		"image_url":   quote.ImageURL,
		"category_id": quote.CategoryID,
	})
	if result.Error != nil {
		return fmt.Errorf("update quote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuoteNotFound
	}
	return nil
}

func (r *QuoteRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Quote{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete quote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuoteNotFound
	}
	return nil
}
