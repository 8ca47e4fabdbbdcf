package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quotify/quotify-api/internal/core/domain"
	"github.com/quotify/quotify-api/internal/core/ports"
)

func newSuggestionFixture() (*SuggestionService, *stubSuggestionRepo, *stubCategoryRepo, *stubQuoteRepo) {
	quotes := newStubQuoteRepo()
	suggestions := newStubSuggestionRepo(quotes)
	categories := newStubCategoryRepo()
	svc := NewSuggestionService(suggestions, categories, zerolog.Nop())
	return svc, suggestions, categories, quotes
}

func seedPending(t *testing.T, repo *stubSuggestionRepo, userID uint, categoryID *uint) *domain.SuggestedQuote {
	t.Helper()
	sq := &domain.SuggestedQuote{
		Text:       "carpe diem",
		Author:     "Horace",
		CategoryID: categoryID,
		UserID:     userID,
		Status:     domain.SuggestionPending,
	}
	if err := repo.Create(context.Background(), sq); err != nil {
		t.Fatalf("seed suggestion: %v", err)
	}
	return sq
}

func TestSuggestionServiceSubmit(t *testing.T) {
	svc, _, categories, _ := newSuggestionFixture()
	ctx := context.Background()

	category := &domain.Category{Name: "Wisdom"}
	if err := categories.Create(ctx, category); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	view, err := svc.Submit(ctx, ports.SubmitSuggestionInput{
		Text:       "carpe diem",
		Author:     "Horace",
		CategoryID: &category.ID,
		UserID:     7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != domain.SuggestionPending {
		t.Fatalf("expected Pending, got %s", view.Status)
	}
	if view.CategoryName != "Wisdom" {
		t.Fatalf("expected category name Wisdom, got %q", view.CategoryName)
	}
}

func TestSuggestionServiceSubmitUnknownCategory(t *testing.T) {
	svc, _, _, _ := newSuggestionFixture()

	missing := uint(99)
	_, err := svc.Submit(context.Background(), ports.SubmitSuggestionInput{
		Text:       "orphan",
		CategoryID: &missing,
		UserID:     7,
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestSuggestionServiceSubmitWithoutCategory(t *testing.T) {
	svc, _, _, _ := newSuggestionFixture()

	view, err := svc.Submit(context.Background(), ports.SubmitSuggestionInput{
		Text:   "uncategorized wisdom",
		UserID: 7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.CategoryID != nil {
		t.Fatalf("expected nil category, got %d", *view.CategoryID)
	}
}

func TestSuggestionServiceApprove(t *testing.T) {
	svc, suggestions, categories, quotes := newSuggestionFixture()
	ctx := context.Background()

	category := &domain.Category{Name: "Wisdom"}
	if err := categories.Create(ctx, category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	sq := seedPending(t, suggestions, 7, &category.ID)

	result, err := svc.Approve(ctx, sq.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	quote, err := quotes.FindByID(ctx, result.QuoteID)
	if err != nil {
		t.Fatalf("materialized quote missing: %v", err)
	}
	if quote.Text != sq.Text || quote.Author != sq.Author || quote.CategoryID != category.ID {
		t.Fatalf("materialized quote does not match suggestion: %+v", quote)
	}

	moderated, _ := suggestions.FindByID(ctx, sq.ID)
	if moderated.Status != domain.SuggestionApproved {
		t.Fatalf("expected Approved, got %s", moderated.Status)
	}
}

func TestSuggestionServiceApproveTwice(t *testing.T) {
	svc, suggestions, categories, quotes := newSuggestionFixture()
	ctx := context.Background()

	category := &domain.Category{Name: "Wisdom"}
	if err := categories.Create(ctx, category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	sq := seedPending(t, suggestions, 7, &category.ID)

	if _, err := svc.Approve(ctx, sq.ID); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	_, err := svc.Approve(ctx, sq.ID)
	if !errors.Is(err, domain.ErrSuggestionNotPending) {
		t.Fatalf("expected ErrSuggestionNotPending, got %v", err)
	}
	if len(quotes.byID) != 1 {
		t.Fatalf("expected exactly one materialized quote, got %d", len(quotes.byID))
	}
}

func TestSuggestionServiceApproveWithoutCategory(t *testing.T) {
	svc, suggestions, _, quotes := newSuggestionFixture()
	ctx := context.Background()

	sq := seedPending(t, suggestions, 7, nil)

	_, err := svc.Approve(ctx, sq.ID)
	if !errors.Is(err, domain.ErrSuggestionWithoutCategory) {
		t.Fatalf("expected ErrSuggestionWithoutCategory, got %v", err)
	}

	unchanged, _ := suggestions.FindByID(ctx, sq.ID)
	if unchanged.Status != domain.SuggestionPending {
		t.Fatalf("suggestion should stay Pending, got %s", unchanged.Status)
	}
	if len(quotes.byID) != 0 {
		t.Fatalf("no quote may be created, got %d", len(quotes.byID))
	}
}

func TestSuggestionServiceApproveDanglingCategory(t *testing.T) {
	svc, suggestions, _, quotes := newSuggestionFixture()
	ctx := context.Background()

	gone := uint(55)
	sq := seedPending(t, suggestions, 7, &gone)

	_, err := svc.Approve(ctx, sq.ID)
	if !errors.Is(err, domain.ErrSuggestionCategoryGone) {
		t.Fatalf("expected ErrSuggestionCategoryGone, got %v", err)
	}
	if len(quotes.byID) != 0 {
		t.Fatalf("no quote may be created, got %d", len(quotes.byID))
	}
}

func TestSuggestionServiceApproveNotFound(t *testing.T) {
	svc, _, _, _ := newSuggestionFixture()

	_, err := svc.Approve(context.Background(), 42)
	if !errors.Is(err, domain.ErrSuggestionNotFound) {
		t.Fatalf("expected ErrSuggestionNotFound, got %v", err)
	}
}

func TestSuggestionServiceReject(t *testing.T) {
	svc, suggestions, categories, quotes := newSuggestionFixture()
	ctx := context.Background()

	category := &domain.Category{Name: "Wisdom"}
	if err := categories.Create(ctx, category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	sq := seedPending(t, suggestions, 7, &category.ID)

	if err := svc.Reject(ctx, sq.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rejected, _ := suggestions.FindByID(ctx, sq.ID)
	if rejected.Status != domain.SuggestionRejected {
		t.Fatalf("expected Rejected, got %s", rejected.Status)
	}

	// Terminal states are final: no re-moderation in either direction.
	if err := svc.Reject(ctx, sq.ID); !errors.Is(err, domain.ErrSuggestionNotPending) {
		t.Fatalf("expected ErrSuggestionNotPending on second reject, got %v", err)
	}
	if _, err := svc.Approve(ctx, sq.ID); !errors.Is(err, domain.ErrSuggestionNotPending) {
		t.Fatalf("expected ErrSuggestionNotPending on approve after reject, got %v", err)
	}
	if len(quotes.byID) != 0 {
		t.Fatalf("rejected suggestion must not materialize a quote, got %d", len(quotes.byID))
	}
}

func TestSuggestionServiceRandomForUser(t *testing.T) {
	svc, suggestions, _, _ := newSuggestionFixture()
	ctx := context.Background()

	view, err := svc.RandomForUser(ctx, 7, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view != nil {
		t.Fatalf("expected nil view for empty set, got %+v", view)
	}

	mine := seedPending(t, suggestions, 7, nil)
	seedPending(t, suggestions, 8, nil)

	svc.randInt = func(int64) int64 { return 0 }

	view, err = svc.RandomForUser(ctx, 7, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view == nil || view.ID != mine.ID {
		t.Fatalf("expected suggestion %d, got %+v", mine.ID, view)
	}
}

func TestSuggestionServiceListAll(t *testing.T) {
	svc, suggestions, _, _ := newSuggestionFixture()
	ctx := context.Background()

	sq := seedPending(t, suggestions, 7, nil)
	suggestions.byID[sq.ID].User = &domain.User{ID: 7, Email: "submitter@example.com"}

	views, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(views))
	}
	if views[0].UserID != 7 || views[0].UserEmail != "submitter@example.com" {
		t.Fatalf("expected submitter identity, got %+v", views[0])
	}
}
