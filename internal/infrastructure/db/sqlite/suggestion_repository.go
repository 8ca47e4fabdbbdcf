package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// SuggestionRepository implements ports.SuggestionRepository on SQLite.
type SuggestionRepository struct {
	db *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

func (r *SuggestionRepository) Create(ctx context.Context, suggestion *domain.SuggestedQuote) error {
	if err := r.db.WithContext(ctx).Create(suggestion).Error; err != nil {
		return fmt.Errorf("create suggestion: %w", err)
	}
	return nil
}

func (r *SuggestionRepository) FindByID(ctx context.Context, id uint) (*domain.SuggestedQuote, error) {
	var suggestion domain.SuggestedQuote
	err := r.db.WithContext(ctx).Preload("Category").First(&suggestion, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("find suggestion: %w", err)
	}
	return &suggestion, nil
}

func (r *SuggestionRepository) ListByUser(ctx context.Context, userID uint, categoryID *uint) ([]*domain.SuggestedQuote, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var suggestions []*domain.SuggestedQuote
	if err := query.Preload("Category").Order("id").Find(&suggestions).Error; err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	return suggestions, nil
}

func (r *SuggestionRepository) ListAll(ctx context.Context) ([]*domain.SuggestedQuote, error) {
	var suggestions []*domain.SuggestedQuote
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Order("created_at desc").
		Find(&suggestions).Error
	if err != nil {
		return nil, fmt.Errorf("list all suggestions: %w", err)
	}
	return suggestions, nil
}

// ApproveAndMaterialize flips the suggestion from Pending to Approved and
// inserts the given quote in a single transaction. The status flip is a
// compare-and-set on Pending: a suggestion that was already moderated leaves
// the transaction without side effects, so a quote can never be created twice
// from the same suggestion.
func (r *SuggestionRepository) ApproveAndMaterialize(ctx context.Context, suggestionID uint, quote *domain.Quote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.SuggestedQuote{}).
			Where("id = ? AND status = ?", suggestionID, domain.SuggestionPending).
			Update("status", domain.SuggestionApproved)
		if result.Error != nil {
			return fmt.Errorf("approve suggestion: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// Either the suggestion is gone or it was already moderated.
			var count int64
			if err := tx.Model(&domain.SuggestedQuote{}).
				Where("id = ?", suggestionID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("approve suggestion: %w", err)
			}
			if count == 0 {
				return domain.ErrSuggestionNotFound
			}
			return domain.ErrSuggestionNotPending
		}

		if err := tx.Create(quote).Error; err != nil {
			return fmt.Errorf("materialize quote: %w", err)
		}
		return nil
	})
}

// UpdateStatus performs a compare-and-set status transition.
func (r *SuggestionRepository) UpdateStatus(ctx context.Context, id uint, from, to domain.SuggestionStatus) error {
	result := r.db.WithContext(ctx).Model(&domain.SuggestedQuote{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return fmt.Errorf("update suggestion status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&domain.SuggestedQuote{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return fmt.Errorf("update suggestion status: %w", err)
		}
		if count == 0 {
			return domain.ErrSuggestionNotFound
		}
		return domain.ErrSuggestionNotPending
	}
	return nil
}
