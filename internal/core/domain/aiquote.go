package domain

import "errors"

// AI provider failures are propagated verbatim to the boundary; the core never
// falls back to a canned quote.
var ErrAiRateLimited = errors.New("ai provider rate limited")
var ErrAiUnavailable = errors.New("ai provider unavailable")
