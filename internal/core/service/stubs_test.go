package service

import (
	"context"
	"sort"
	"time"

	"github.com/quotify/quotify-api/internal/core/domain"
	"github.com/quotify/quotify-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. They mirror the
// behavior of the real SQLite repositories, including the error mapping.
// ---------------------------------------------------------------------------

type stubQuoteRepo struct {
	byID        map[uint]*domain.Quote
	nextID      uint
	offsetCalls int   // number of FindByOffset invocations
	failErr     error // if set, every operation returns this error
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{byID: make(map[uint]*domain.Quote)}
}

func (r *stubQuoteRepo) sortedIDs(categoryID *uint) []uint {
	ids := make([]uint, 0, len(r.byID))
	for id, q := range r.byID {
		if categoryID != nil && q.CategoryID != *categoryID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *stubQuoteRepo) Create(_ context.Context, q *domain.Quote) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.nextID++
	q.ID = r.nextID
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	clone := *q
	r.byID[q.ID] = &clone
	return nil
}

func (r *stubQuoteRepo) FindByID(_ context.Context, id uint) (*domain.Quote, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	q, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrQuoteNotFound
	}
	clone := *q
	return &clone, nil
}

func (r *stubQuoteRepo) List(_ context.Context, f ports.ListQuotesFilter) ([]*domain.Quote, int64, error) {
	if r.failErr != nil {
		return nil, 0, r.failErr
	}
	ids := r.sortedIDs(f.CategoryID)
	total := int64(len(ids))

	skip := (f.Page - 1) * f.Limit
	if skip < 0 {
		skip = 0
	}
	if skip > len(ids) {
		return nil, total, nil
	}
	end := skip + f.Limit
	if end > len(ids) {
		end = len(ids)
	}

	var page []*domain.Quote
	for _, id := range ids[skip:end] {
		clone := *r.byID[id]
		page = append(page, &clone)
	}
	return page, total, nil
}

func (r *stubQuoteRepo) Count(_ context.Context, categoryID *uint) (int64, error) {
	if r.failErr != nil {
		return 0, r.failErr
	}
	return int64(len(r.sortedIDs(categoryID))), nil
}

func (r *stubQuoteRepo) FindByOffset(_ context.Context, categoryID *uint, offset int64) (*domain.Quote, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	r.offsetCalls++
	ids := r.sortedIDs(categoryID)
	if offset < 0 || offset >= int64(len(ids)) {
		return nil, domain.ErrQuoteNotFound
	}
	clone := *r.byID[ids[offset]]
	return &clone, nil
}

func (r *stubQuoteRepo) Update(_ context.Context, q *domain.Quote) error {
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.byID[q.ID]; !ok {
		return domain.ErrQuoteNotFound
	}
	clone := *q
	r.byID[q.ID] = &clone
	return nil
}

func (r *stubQuoteRepo) Delete(_ context.Context, id uint) error {
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrQuoteNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------

type stubCategoryRepo struct {
	byID   map[uint]*domain.Category
	nextID uint

	// cross-store links used by DeleteWithReassign
	quotes      *stubQuoteRepo
	suggestions *stubSuggestionRepo
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[uint]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	r.nextID++
	c.ID = r.nextID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uint) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range r.byID {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) List(_ context.Context, page, limit int) ([]*domain.Category, int64, error) {
	ids := make([]uint, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	total := int64(len(ids))

	skip := (page - 1) * limit
	if skip > len(ids) {
		return nil, total, nil
	}
	end := skip + limit
	if end > len(ids) {
		end = len(ids)
	}

	var out []*domain.Category
	for _, id := range ids[skip:end] {
		clone := *r.byID[id]
		out = append(out, &clone)
	}
	return out, total, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) DeleteWithReassign(_ context.Context, id, fallbackID uint) (int64, error) {
	if _, ok := r.byID[id]; !ok {
		return 0, domain.ErrCategoryNotFound
	}

	var reassigned int64
	if r.quotes != nil {
		for _, q := range r.quotes.byID {
			if q.CategoryID == id {
				q.CategoryID = fallbackID
				reassigned++
			}
		}
	}
	if r.suggestions != nil {
		for _, sq := range r.suggestions.byID {
			if sq.CategoryID != nil && *sq.CategoryID == id {
				sq.CategoryID = nil
			}
		}
	}

	delete(r.byID, id)
	return reassigned, nil
}

// ---------------------------------------------------------------------------

type stubSuggestionRepo struct {
	byID   map[uint]*domain.SuggestedQuote
	nextID uint

	quotes *stubQuoteRepo // target store for materialized quotes
}

func newStubSuggestionRepo(quotes *stubQuoteRepo) *stubSuggestionRepo {
	return &stubSuggestionRepo{byID: make(map[uint]*domain.SuggestedQuote), quotes: quotes}
}

func (r *stubSuggestionRepo) Create(_ context.Context, s *domain.SuggestedQuote) error {
	r.nextID++
	s.ID = r.nextID
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubSuggestionRepo) FindByID(_ context.Context, id uint) (*domain.SuggestedQuote, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrSuggestionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSuggestionRepo) ListByUser(_ context.Context, userID uint, categoryID *uint) ([]*domain.SuggestedQuote, error) {
	var out []*domain.SuggestedQuote
	for _, s := range r.byID {
		if s.UserID != userID {
			continue
		}
		if categoryID != nil && (s.CategoryID == nil || *s.CategoryID != *categoryID) {
			continue
		}
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSuggestionRepo) ListAll(_ context.Context) ([]*domain.SuggestedQuote, error) {
	var out []*domain.SuggestedQuote
	for _, s := range r.byID {
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubSuggestionRepo) ApproveAndMaterialize(ctx context.Context, suggestionID uint, quote *domain.Quote) error {
	s, ok := r.byID[suggestionID]
	if !ok {
		return domain.ErrSuggestionNotFound
	}
	if s.Status != domain.SuggestionPending {
		return domain.ErrSuggestionNotPending
	}
	s.Status = domain.SuggestionApproved
	return r.quotes.Create(ctx, quote)
}

func (r *stubSuggestionRepo) UpdateStatus(_ context.Context, id uint, from, to domain.SuggestionStatus) error {
	s, ok := r.byID[id]
	if !ok {
		return domain.ErrSuggestionNotFound
	}
	if s.Status != from {
		return domain.ErrSuggestionNotPending
	}
	s.Status = to
	return nil
}

// ---------------------------------------------------------------------------

type likeKey struct{ userID, quoteID uint }

type stubLikeRepo struct {
	byPair map[likeKey]*domain.QuoteLike
	nextID uint

	quotes *stubQuoteRepo // used to enrich ListByUser
}

func newStubLikeRepo(quotes *stubQuoteRepo) *stubLikeRepo {
	return &stubLikeRepo{byPair: make(map[likeKey]*domain.QuoteLike), quotes: quotes}
}

func (r *stubLikeRepo) Create(_ context.Context, l *domain.QuoteLike) error {
	key := likeKey{l.UserID, l.QuoteID}
	if _, ok := r.byPair[key]; ok {
		return domain.ErrAlreadyLiked
	}
	r.nextID++
	l.ID = r.nextID
	if l.LikedAt.IsZero() {
		l.LikedAt = time.Now().UTC()
	}
	clone := *l
	r.byPair[key] = &clone
	return nil
}

func (r *stubLikeRepo) Delete(_ context.Context, userID, quoteID uint) error {
	key := likeKey{userID, quoteID}
	if _, ok := r.byPair[key]; !ok {
		return domain.ErrLikeNotFound
	}
	delete(r.byPair, key)
	return nil
}

func (r *stubLikeRepo) ListByUser(_ context.Context, userID uint) ([]*domain.QuoteLike, error) {
	var out []*domain.QuoteLike
	for _, l := range r.byPair {
		if l.UserID != userID {
			continue
		}
		clone := *l
		if r.quotes != nil {
			if q, ok := r.quotes.byID[l.QuoteID]; ok {
				qc := *q
				clone.Quote = &qc
			}
		}
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LikedAt.After(out[j].LikedAt) })
	return out, nil
}

func (r *stubLikeRepo) Exists(_ context.Context, userID, quoteID uint) (bool, error) {
	_, ok := r.byPair[likeKey{userID, quoteID}]
	return ok, nil
}

// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	byEmail map[string]*domain.User
	nextID  uint
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.byEmail[user.Email] = &clone
	return &clone, nil
}
