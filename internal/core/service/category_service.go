package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/quotify/quotify-api/internal/core/domain"
	"github.com/quotify/quotify-api/internal/core/ports"
)

// CategoryService implements category CRUD and the guarded deletion that
// reassigns dependent quotes to the fallback category.
type CategoryService struct {
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

func (s *CategoryService) List(ctx context.Context, page, limit int) (*ports.ListCategoriesResult, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	categories, total, err := s.categories.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	items := make([]ports.CategoryView, 0, len(categories))
	for _, c := range categories {
		items = append(items, categoryView(c))
	}

	return &ports.ListCategoriesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*ports.CategoryView, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := categoryView(c)
	return &view, nil
}

func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) (*ports.CategoryView, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrCategoryNameRequired
	}

	category := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		s.logger.Error().Err(err).Msg("failed to create category")
		return nil, err
	}

	s.logger.Info().Uint("category_id", category.ID).Str("name", category.Name).Msg("category created")

	view := categoryView(category)
	return &view, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, input ports.UpdateCategoryInput) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return domain.ErrCategoryNameRequired
		}
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}

	return s.categories.Update(ctx, category)
}

// Delete removes a category after re-pointing its quotes to the fallback
// category. Without a fallback in the store the deletion does not proceed at
// all; the fallback itself can never be deleted.
func (s *CategoryService) Delete(ctx context.Context, id uint) (*ports.DeleteCategoryResult, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fallback, err := s.categories.FindByName(ctx, domain.FallbackCategoryName)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, domain.ErrNoFallbackCategory
		}
		return nil, fmt.Errorf("delete category: %w", err)
	}
	if fallback.ID == category.ID {
		return nil, domain.ErrFallbackCategoryProtected
	}

	reassigned, err := s.categories.DeleteWithReassign(ctx, category.ID, fallback.ID)
	if err != nil {
		s.logger.Error().Err(err).Uint("category_id", id).Msg("category deletion failed")
		return nil, fmt.Errorf("delete category: %w", err)
	}

	s.logger.Info().
		Uint("category_id", id).
		Str("name", category.Name).
		Int64("reassigned", reassigned).
		Msg("category deleted, quotes reassigned to fallback")

	return &ports.DeleteCategoryResult{
		Name:         category.Name,
		FallbackName: fallback.Name,
		Reassigned:   reassigned,
	}, nil
}

func categoryView(c *domain.Category) ports.CategoryView {
	return ports.CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
