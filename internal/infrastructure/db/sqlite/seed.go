package sqlite

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// Seed prepares the store for first use. It is idempotent: every step checks
// before it writes.
//
//   - The fallback category always exists; category deletion depends on it.
//   - An admin account is created when credentials are configured.
//   - A handful of sample quotes are inserted into an otherwise empty store.
func Seed(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string) error {
	fallback, err := ensureFallbackCategory(ctx, db)
	if err != nil {
		return err
	}
	if err := ensureAdmin(ctx, db, adminEmail, adminPassword); err != nil {
		return err
	}
	return ensureSampleQuotes(ctx, db, fallback.ID)
}

func ensureFallbackCategory(ctx context.Context, db *gorm.DB) (*domain.Category, error) {
	var category domain.Category
	err := db.WithContext(ctx).
		Where("name = ?", domain.FallbackCategoryName).
		First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("seed fallback category: %w", err)
	}

	category = domain.Category{
		Name:        domain.FallbackCategoryName,
		Description: "Default category for quotes whose original category was removed.",
	}
	if err := db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("seed fallback category: %w", err)
	}
	return &category, nil
}

func ensureAdmin(ctx context.Context, db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	admin := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func ensureSampleQuotes(ctx context.Context, db *gorm.DB, fallbackID uint) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Quote{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed quotes: %w", err)
	}
	if count > 0 {
		return nil
	}

	wisdom := domain.Category{Name: "Wisdom", Description: "Timeless observations."}
	motivation := domain.Category{Name: "Motivation", Description: "A push for hard days."}
	for _, c := range []*domain.Category{&wisdom, &motivation} {
		if err := db.WithContext(ctx).Where("name = ?", c.Name).FirstOrCreate(c).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}

	quotes := []domain.Quote{
		{Text: "The unexamined life is not worth living.", Author: "Socrates", CategoryID: wisdom.ID},
		{Text: "We suffer more often in imagination than in reality.", Author: "Seneca", CategoryID: wisdom.ID},
		{Text: "It always seems impossible until it is done.", Author: "Nelson Mandela", CategoryID: motivation.ID},
		{Text: "Well begun is half done.", Author: "Aristotle", CategoryID: motivation.ID},
		{Text: "When you have nothing to say, say nothing.", Author: "Charles Caleb Colton", CategoryID: fallbackID},
	}
	if err := db.WithContext(ctx).Create(&quotes).Error; err != nil {
		return fmt.Errorf("seed quotes: %w", err)
	}
	return nil
}
