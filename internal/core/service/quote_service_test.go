package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quotify/quotify-api/internal/core/domain"
	"github.com/quotify/quotify-api/internal/core/ports"
)

func seedQuote(t *testing.T, repo *stubQuoteRepo, text string, categoryID uint) *domain.Quote {
	t.Helper()
	q := &domain.Quote{Text: text, Author: "Anonymous", CategoryID: categoryID}
	if err := repo.Create(context.Background(), q); err != nil {
		t.Fatalf("seed quote: %v", err)
	}
	return q
}

func TestQuoteServiceRandomEmptyPool(t *testing.T) {
	quotes := newStubQuoteRepo()
	svc := NewQuoteService(quotes, newStubCategoryRepo(), zerolog.Nop())

	view, err := svc.Random(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view != nil {
		t.Fatalf("expected nil view for empty pool, got %+v", view)
	}
}

func TestQuoteServiceRandomSingleQuoteRepeats(t *testing.T) {
	quotes := newStubQuoteRepo()
	only := seedQuote(t, quotes, "the only one", 1)

	svc := NewQuoteService(quotes, newStubCategoryRepo(), zerolog.Nop())
	svc.setLastServed(only.ID)

	view, err := svc.Random(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view == nil || view.ID != only.ID {
		t.Fatalf("expected the single quote %d, got %+v", only.ID, view)
	}
}

func TestQuoteServiceRandomSuppressesImmediateRepeat(t *testing.T) {
	quotes := newStubQuoteRepo()
	a := seedQuote(t, quotes, "quote A", 1)
	b := seedQuote(t, quotes, "quote B", 1)

	svc := NewQuoteService(quotes, newStubCategoryRepo(), zerolog.Nop())

	// Deterministic draws cycling 0, 1, 0, 1, ...: the first draw always
	// lands on A, so a correct redraw must settle on B.
	var draw int64
	svc.randInt = func(n int64) int64 {
		v := draw % n
		draw++
		return v
	}

	for i := 0; i < 100; i++ {
		draw = 0
		svc.setLastServed(a.ID)

		view, err := svc.Random(context.Background(), nil)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}
		if view == nil || view.ID != b.ID {
			t.Fatalf("iteration %d: expected quote %d, got %+v", i, b.ID, view)
		}
	}
}

func TestQuoteServiceRandomUpdatesLastServed(t *testing.T) {
	quotes := newStubQuoteRepo()
	seedQuote(t, quotes, "first", 1)
	seedQuote(t, quotes, "second", 1)

	svc := NewQuoteService(quotes, newStubCategoryRepo(), zerolog.Nop())

	view, err := svc.Random(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := svc.lastServed(); got != view.ID {
		t.Fatalf("expected last served %d, got %d", view.ID, got)
	}
}

func TestQuoteServiceRandomRetryIsBounded(t *testing.T) {
	quotes := newStubQuoteRepo()
	a := seedQuote(t, quotes, "quote A", 1)
	seedQuote(t, quotes, "quote B", 1)

	svc := NewQuoteService(quotes, newStubCategoryRepo(), zerolog.Nop())
	svc.setLastServed(a.ID)

	// Every draw lands on the suppressed quote. The loop must give up after
	// maxRandomAttempts and return the repeat rather than spin.
	svc.randInt = func(int64) int64 { return 0 }

	view, err := svc.Random(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view == nil || view.ID != a.ID {
		t.Fatalf("expected the repeated quote %d, got %+v", a.ID, view)
	}
	if quotes.offsetCalls != maxRandomAttempts {
		t.Fatalf("expected %d draws, got %d", maxRandomAttempts, quotes.offsetCalls)
	}
}

func TestQuoteServiceRandomFiltersByCategory(t *testing.T) {
	quotes := newStubQuoteRepo()
	seedQuote(t, quotes, "motivation", 1)
	wisdom := seedQuote(t, quotes, "wisdom", 2)

	svc := NewQuoteService(quotes, newStubCategoryRepo(), zerolog.Nop())

	categoryID := uint(2)
	for i := 0; i < 20; i++ {
		view, err := svc.Random(context.Background(), &categoryID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view == nil || view.ID != wisdom.ID {
			t.Fatalf("expected quote %d from category 2, got %+v", wisdom.ID, view)
		}
	}
}

func TestQuoteServiceCreateUnknownCategory(t *testing.T) {
	svc := NewQuoteService(newStubQuoteRepo(), newStubCategoryRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateQuoteInput{
		Text:       "no home",
		CategoryID: 99,
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestQuoteServiceCreate(t *testing.T) {
	quotes := newStubQuoteRepo()
	categories := newStubCategoryRepo()
	if err := categories.Create(context.Background(), &domain.Category{Name: "Wisdom"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	svc := NewQuoteService(quotes, categories, zerolog.Nop())

	view, err := svc.Create(context.Background(), ports.CreateQuoteInput{
		Text:       "know thyself",
		Author:     "Socrates",
		CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ID == 0 {
		t.Fatal("expected an assigned quote id")
	}
	if view.CategoryName != "Wisdom" {
		t.Fatalf("expected category name Wisdom, got %q", view.CategoryName)
	}
}

func TestQuoteServiceUpdatePartial(t *testing.T) {
	quotes := newStubQuoteRepo()
	categories := newStubCategoryRepo()
	if err := categories.Create(context.Background(), &domain.Category{Name: "Wisdom"}); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	q := seedQuote(t, quotes, "original text", 1)

	svc := NewQuoteService(quotes, categories, zerolog.Nop())

	newText := "updated text"
	err := svc.Update(context.Background(), q.ID, ports.UpdateQuoteInput{
		Text:       &newText,
		CategoryID: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, _ := quotes.FindByID(context.Background(), q.ID)
	if updated.Text != newText {
		t.Fatalf("expected text %q, got %q", newText, updated.Text)
	}
	if updated.Author != q.Author {
		t.Fatalf("author should be untouched, got %q", updated.Author)
	}
}

func TestQuoteServiceListPagination(t *testing.T) {
	quotes := newStubQuoteRepo()
	for i := 0; i < 5; i++ {
		seedQuote(t, quotes, "quote", 1)
	}

	svc := NewQuoteService(quotes, newStubCategoryRepo(), zerolog.Nop())

	result, err := svc.List(context.Background(), ports.ListQuotesInput{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 5 {
		t.Fatalf("expected total 5, got %d", result.Total)
	}
	if result.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", result.TotalPages)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items on page 2, got %d", len(result.Items))
	}
	if result.Items[0].ID != 3 {
		t.Fatalf("expected page 2 to start at quote 3, got %d", result.Items[0].ID)
	}
}

func TestQuoteServiceDeleteNotFound(t *testing.T) {
	svc := NewQuoteService(newStubQuoteRepo(), newStubCategoryRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}
