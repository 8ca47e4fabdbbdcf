package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quotify/quotify-api/internal/api/metrics"
	"github.com/quotify/quotify-api/internal/core/domain"
	"github.com/quotify/quotify-api/internal/core/ports"
)

// AiQuoteHandler handles HTTP requests for AI-generated quotes.
type AiQuoteHandler struct {
	client ports.AiQuoteClient
}

func NewAiQuoteHandler(client ports.AiQuoteClient) *AiQuoteHandler {
	return &AiQuoteHandler{client: client}
}

type aiQuoteRequest struct {
	Theme string `json:"theme" validate:"required,min=1,max=100"`
}

type aiQuoteResponse struct {
	Theme string `json:"theme"`
	Quote string `json:"quote"`
}

// Generate handles POST /ai-quotes.
//
// @Summary      Generate a quote with AI
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      aiQuoteRequest  true  "Generation theme"
// @Success      200   {object}  aiQuoteResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /ai-quotes [post]
func (h *AiQuoteHandler) Generate(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req aiQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	quote, err := h.client.Generate(c.Request().Context(), req.Theme)
	metrics.AiQuoteDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAiRateLimited):
			metrics.AiQuoteRequestsTotal.WithLabelValues("rate_limited").Inc()
		default:
			metrics.AiQuoteRequestsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.AiQuoteRequestsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, aiQuoteResponse{Theme: req.Theme, Quote: quote})
}
