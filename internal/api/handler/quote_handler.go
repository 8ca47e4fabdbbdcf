package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quotify/quotify-api/internal/api/metrics"
	"github.com/quotify/quotify-api/internal/core/ports"
)

// QuoteHandler handles HTTP requests for quote operations.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// --- Request / Response types ---

type createQuoteRequest struct {
	Text       string `json:"text" validate:"required,min=1,max=1000"`
	Author     string `json:"author" validate:"max=200"`
	ImageURL   string `json:"image_url" validate:"omitempty,url"`
	CategoryID uint   `json:"category_id" validate:"required,gt=0"`
}

type updateQuoteRequest struct {
	Text       *string `json:"text" validate:"omitempty,min=1,max=1000"`
	Author     *string `json:"author" validate:"omitempty,max=200"`
	CategoryID uint    `json:"category_id" validate:"required,gt=0"`
}

type quoteResponse struct {
	ID           uint      `json:"id"`
	Text         string    `json:"text"`
	Author       string    `json:"author"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
}

type quoteListResponse struct {
	Items      []quoteResponse `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

func toQuoteResponse(v *ports.QuoteView) quoteResponse {
	return quoteResponse{
		ID:           v.ID,
		Text:         v.Text,
		Author:       v.Author,
		ImageURL:     v.ImageURL,
		CreatedAt:    v.CreatedAt,
		CategoryID:   v.CategoryID,
		CategoryName: v.CategoryName,
	}
}

// List handles GET /quotes.
//
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Param        category_id  query     int  false  "Filter by category"
// @Param        page         query     int  false  "Page number (default 1)"
// @Param        limit        query     int  false  "Page size (default 20, max 100)"
// @Success      200          {object}  quoteListResponse
// @Failure      400          {object}  map[string]string
// @Router       /quotes [get]
func (h *QuoteHandler) List(c echo.Context) error {
	categoryID, err := queryCategoryID(c)
	if err != nil {
		return err
	}
	page, limit := queryPagination(c)

	result, err := h.service.List(c.Request().Context(), ports.ListQuotesInput{
		CategoryID: categoryID,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	items := make([]quoteResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toQuoteResponse(&result.Items[i]))
	}

	return c.JSON(http.StatusOK, quoteListResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Random handles GET /quotes/random.
//
// @Summary      Get a random quote
// @Description  Picks a quote at random, avoiding an immediate repeat of the
// @Description  previously served quote when the pool allows it. An empty pool
// @Description  yields 204 No Content.
// @Tags         quotes
// @Produce      json
// @Param        category_id  query     int  false  "Restrict the pool to a category"
// @Success      200          {object}  quoteResponse
// @Success      204          "The pool is empty"
// @Failure      400          {object}  map[string]string
// @Router       /quotes/random [get]
func (h *QuoteHandler) Random(c echo.Context) error {
	categoryID, err := queryCategoryID(c)
	if err != nil {
		return err
	}

	view, err := h.service.Random(c.Request().Context(), categoryID)
	if err != nil {
		return err
	}
	if view == nil {
		metrics.RandomDrawsTotal.WithLabelValues("empty").Inc()
		return c.NoContent(http.StatusNoContent)
	}

	metrics.RandomDrawsTotal.WithLabelValues("served").Inc()
	return c.JSON(http.StatusOK, toQuoteResponse(view))
}

// Get handles GET /quotes/:id.
//
// @Summary      Get a quote by id
// @Tags         quotes
// @Produce      json
// @Param        id   path      int  true  "Quote id"
// @Success      200  {object}  quoteResponse
// @Failure      404  {object}  map[string]string
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuoteResponse(view))
}

// Create handles POST /quotes (admin only).
//
// @Summary      Create a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuoteRequest  true  "Quote details"
// @Success      201   {object}  quoteResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /quotes [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	var req createQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), ports.CreateQuoteInput{
		Text:       req.Text,
		Author:     req.Author,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toQuoteResponse(view))
}

// Update handles PATCH /quotes/:id (admin only).
//
// @Summary      Update a quote
// @Tags         quotes
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Quote id"
// @Param        body  body  updateQuoteRequest  true  "Fields to update"
// @Success      204   "Updated"
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /quotes/{id} [patch]
func (h *QuoteHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), id, ports.UpdateQuoteInput{
		Text:       req.Text,
		Author:     req.Author,
		CategoryID: req.CategoryID,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /quotes/:id (admin only).
//
// @Summary      Delete a quote
// @Tags         quotes
// @Security     BearerAuth
// @Param        id   path  int  true  "Quote id"
// @Success      204  "Deleted"
// @Failure      404  {object}  map[string]string
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
