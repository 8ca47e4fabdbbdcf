package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// LikeRepository implements ports.LikeRepository on SQLite. Uniqueness of the
// (user, quote) pair is enforced by a unique index; a duplicate insert maps to
// domain.ErrAlreadyLiked.
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Create(ctx context.Context, like *domain.QuoteLike) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyLiked
		}
		return fmt.Errorf("create like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, userID, quoteID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND quote_id = ?", userID, quoteID).
		Delete(&domain.QuoteLike{})
	if result.Error != nil {
		return fmt.Errorf("delete like: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrLikeNotFound
	}
	return nil
}

func (r *LikeRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.QuoteLike, error) {
	var likes []*domain.QuoteLike
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Quote").
		Preload("Quote.Category").
		Order("liked_at desc").
		Find(&likes).Error
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	return likes, nil
}

func (r *LikeRepository) Exists(ctx context.Context, userID, quoteID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.QuoteLike{}).
		Where("user_id = ? AND quote_id = ?", userID, quoteID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("like exists: %w", err)
	}
	return count > 0, nil
}
