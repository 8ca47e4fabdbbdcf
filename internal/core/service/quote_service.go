package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"

	"github.com/quotify/quotify-api/internal/core/domain"
	"github.com/quotify/quotify-api/internal/core/ports"
)

const (
	// maxRandomAttempts bounds the redraw loop that suppresses an immediate
	// repeat of the last-served quote. After the bound is exhausted the last
	// draw is returned even if it repeats.
	maxRandomAttempts = 5

	defaultPageLimit = 20
	maxPageLimit     = 100
)

// QuoteService implements quote CRUD and non-repeating random selection.
type QuoteService struct {
	quotes     ports.QuoteRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger

	// randInt draws a uniform value in [0, n). Overridable in tests.
	randInt func(n int64) int64

	// lastQuoteID is the process-wide last-served pointer. It is shared
	// across all categories and users: a draw in one category suppresses the
	// same id in the next draw anywhere. Lost updates under concurrency are
	// tolerated; suppression is best-effort only.
	mu          sync.Mutex
	lastQuoteID uint
}

func NewQuoteService(quotes ports.QuoteRepository, categories ports.CategoryRepository, logger zerolog.Logger) *QuoteService {
	return &QuoteService{
		quotes:     quotes,
		categories: categories,
		logger:     logger,
		randInt:    rand.Int64N,
	}
}

// Random picks one quote uniformly from the pool, optionally restricted to a
// category. An empty pool yields (nil, nil): callers respond with "no content",
// not a failure. A pool of one returns its only quote even when it repeats.
func (s *QuoteService) Random(ctx context.Context, categoryID *uint) (*ports.QuoteView, error) {
	count, err := s.quotes.Count(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("random quote: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	last := s.lastServed()

	var quote *domain.Quote
	for attempt := 0; attempt < maxRandomAttempts; attempt++ {
		q, err := s.quotes.FindByOffset(ctx, categoryID, s.randInt(count))
		if err != nil {
			// The pool may shrink between Count and the offset read.
			if errors.Is(err, domain.ErrQuoteNotFound) {
				continue
			}
			return nil, fmt.Errorf("random quote: %w", err)
		}
		quote = q
		if count == 1 || q.ID != last {
			break
		}
	}
	if quote == nil {
		return nil, nil
	}

	s.setLastServed(quote.ID)

	view := quoteView(quote)
	return &view, nil
}

func (s *QuoteService) lastServed() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuoteID
}

func (s *QuoteService) setLastServed(id uint) {
	s.mu.Lock()
	s.lastQuoteID = id
	s.mu.Unlock()
}

func (s *QuoteService) Get(ctx context.Context, id uint) (*ports.QuoteView, error) {
	q, err := s.quotes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := quoteView(q)
	return &view, nil
}

func (s *QuoteService) List(ctx context.Context, input ports.ListQuotesInput) (*ports.ListQuotesResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	quotes, total, err := s.quotes.List(ctx, ports.ListQuotesFilter{
		CategoryID: input.CategoryID,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	items := make([]ports.QuoteView, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, quoteView(q))
	}

	return &ports.ListQuotesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *QuoteService) Create(ctx context.Context, input ports.CreateQuoteInput) (*ports.QuoteView, error) {
	category, err := s.categories.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	quote := &domain.Quote{
		Text:       input.Text,
		Author:     input.Author,
		ImageURL:   input.ImageURL,
		CategoryID: category.ID,
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		s.logger.Error().Err(err).Msg("failed to create quote")
		return nil, err
	}

	s.logger.Info().Uint("quote_id", quote.ID).Uint("category_id", category.ID).Msg("quote created")

	return &ports.QuoteView{
		ID:           quote.ID,
		Text:         quote.Text,
		Author:       quote.Author,
		ImageURL:     quote.ImageURL,
		CreatedAt:    quote.CreatedAt,
		CategoryID:   quote.CategoryID,
		CategoryName: category.Name,
	}, nil
}

// Update applies a partial update. Text and author are only touched when
// provided; the category reference is always re-pointed and must exist.
func (s *QuoteService) Update(ctx context.Context, id uint, input ports.UpdateQuoteInput) error {
	quote, err := s.quotes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return err
	}

	if input.Text != nil {
		quote.Text = *input.Text
	}
	if input.Author != nil {
		quote.Author = *input.Author
	}
	quote.CategoryID = input.CategoryID

	return s.quotes.Update(ctx, quote)
}

func (s *QuoteService) Delete(ctx context.Context, id uint) error {
	if _, err := s.quotes.FindByID(ctx, id); err != nil {
		return err
	}
	return s.quotes.Delete(ctx, id)
}

func quoteView(q *domain.Quote) ports.QuoteView {
	view := ports.QuoteView{
		ID:         q.ID,
		Text:       q.Text,
		Author:     q.Author,
		ImageURL:   q.ImageURL,
		CreatedAt:  q.CreatedAt,
		CategoryID: q.CategoryID,
	}
	if q.Category != nil {
		view.CategoryName = q.Category.Name
	}
	return view
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
