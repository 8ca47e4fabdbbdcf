// Package aiquote generates quotes through a DeepSeek-compatible
// chat-completions API.
package aiquote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/quotify/quotify-api/internal/core/domain"
)

const (
	completionsPath = "/chat/completions"

	// maxRetries bounds retry attempts after the initial call.
	maxRetries     = 2
	initialBackoff = 500 * time.Millisecond

	systemPrompt = "You are a quote generator. Reply with a single short " +
		"inspirational quote about the given theme, with no attribution, " +
		"quotation marks or commentary."
)

// Gate blocks until the caller may issue the next upstream request.
// *redis.Throttle satisfies it; a nil gate disables throttling.
type Gate interface {
	Wait(ctx context.Context) error
}

// Client calls a DeepSeek-compatible chat-completions endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	gate       Gate
	logger     zerolog.Logger
}

func NewClient(baseURL, apiKey, model string, gate Gate, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		gate:       gate,
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate produces one quote for the theme. Transient upstream failures are
// retried with exponential backoff; a 429 honours the Retry-After header when
// present. Exhausted retries surface as domain.ErrAiRateLimited or
// domain.ErrAiUnavailable.
func (c *Client) Generate(ctx context.Context, theme string) (string, error) {
	if c.gate != nil {
		if err := c.gate.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %s", domain.ErrAiRateLimited, err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := initialBackoff * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		quote, retryAfter, err := c.call(ctx, theme)
		if err == nil {
			return quote, nil
		}
		lastErr = err

		c.logger.Warn().Err(err).Int("attempt", attempt).Msg("ai quote call failed")

		if retryAfter > 0 {
			select {
			case <-time.After(retryAfter):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", lastErr
}

// call performs a single upstream request. For a 429 it additionally returns
// the server-requested retry delay.
func (c *Client) call(ctx context.Context, theme string) (string, time.Duration, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Theme: " + theme},
		},
	})
	if err != nil {
		return "", 0, fmt.Errorf("%w: encode request: %s", domain.ErrAiUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(payload))
	if err != nil {
		return "", 0, fmt.Errorf("%w: build request: %s", domain.ErrAiUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s", domain.ErrAiUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", parseRetryAfter(resp.Header.Get("Retry-After")),
			fmt.Errorf("%w: upstream returned 429", domain.ErrAiRateLimited)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", 0, fmt.Errorf("%w: upstream returned %d: %s", domain.ErrAiUnavailable, resp.StatusCode, body)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", 0, fmt.Errorf("%w: decode response: %s", domain.ErrAiUnavailable, err)
	}
	if len(parsed.Choices) == 0 {
		return "", 0, fmt.Errorf("%w: empty response", domain.ErrAiUnavailable)
	}

	quote := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if quote == "" {
		return "", 0, fmt.Errorf("%w: blank quote", domain.ErrAiUnavailable)
	}
	return quote, 0, nil
}

// Disabled is a stand-in client used when no API key is configured.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: generation is not configured", domain.ErrAiUnavailable)
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
