package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrQuoteNotFound):
		return http.StatusNotFound, "quote not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, domain.ErrSuggestionNotFound):
		return http.StatusNotFound, "suggestion not found"
	case errors.Is(err, domain.ErrLikeNotFound):
		return http.StatusNotFound, "like not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrAlreadyLiked):
		return http.StatusConflict, "quote already liked"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrSuggestionNotPending):
		return http.StatusConflict, "suggestion already moderated"
	case errors.Is(err, domain.ErrSuggestionWithoutCategory):
		return http.StatusUnprocessableEntity, "suggestion has no category"
	case errors.Is(err, domain.ErrSuggestionCategoryGone):
		return http.StatusUnprocessableEntity, "suggestion category no longer exists"
	case errors.Is(err, domain.ErrNoFallbackCategory):
		return http.StatusPreconditionFailed, "fallback category is missing"
	case errors.Is(err, domain.ErrFallbackCategoryProtected):
		return http.StatusPreconditionFailed, "fallback category cannot be deleted"
	case errors.Is(err, domain.ErrCategoryNameRequired):
		return http.StatusBadRequest, "category name is required"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrAiRateLimited):
		return http.StatusTooManyRequests, "generation temporarily rate limited"
	case errors.Is(err, domain.ErrAiUnavailable):
		return http.StatusBadGateway, "generation service unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
