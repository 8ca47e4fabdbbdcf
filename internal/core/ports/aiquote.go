package ports

import "context"

// AiQuoteClient generates short original quotes via an external LLM provider.
// Rate limiting and retries are the client's own concern; callers only see
// domain.ErrAiRateLimited / domain.ErrAiUnavailable on failure.
type AiQuoteClient interface {
	Generate(ctx context.Context, theme string) (string, error)
}
