package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quotify/quotify-api/internal/api/metrics"
	"github.com/quotify/quotify-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// --- Request / Response types ---

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type categoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type categoryListResponse struct {
	Items      []categoryResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

type deleteCategoryResponse struct {
	Deleted    string `json:"deleted"`
	Fallback   string `json:"fallback"`
	Reassigned int64  `json:"reassigned_quotes"`
}

func toCategoryResponse(v *ports.CategoryView) categoryResponse {
	return categoryResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}

// List handles GET /categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  categoryListResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	page, limit := queryPagination(c)

	result, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	items := make([]categoryResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toCategoryResponse(&result.Items[i]))
	}

	return c.JSON(http.StatusOK, categoryListResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /categories/:id.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(view))
}

// Create handles POST /categories (admin only).
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  map[string]string
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCategoryResponse(view))
}

// Update handles PATCH /categories/:id (admin only).
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                    true  "Category id"
// @Param        body  body  updateCategoryRequest  true  "Fields to update"
// @Success      204   "Updated"
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /categories/{id} [patch]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), id, ports.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /categories/:id (admin only). Quotes in the deleted
// category are reassigned to the fallback category; without a fallback the
// deletion is refused outright.
//
// @Summary      Delete a category
// @Description  Deletes the category after re-pointing its quotes to the
// @Description  fallback category. Fails with 412 when no fallback exists or
// @Description  when targeting the fallback itself.
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  deleteCategoryResponse
// @Failure      404  {object}  map[string]string
// @Failure      412  {object}  map[string]string
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.QuotesReassignedTotal.Add(float64(result.Reassigned))

	return c.JSON(http.StatusOK, deleteCategoryResponse{
		Deleted:    result.Name,
		Fallback:   result.FallbackName,
		Reassigned: result.Reassigned,
	})
}
