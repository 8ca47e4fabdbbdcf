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

// SuggestionHandler handles HTTP requests for the suggestion workflow.
type SuggestionHandler struct {
	service ports.SuggestionService
}

func NewSuggestionHandler(service ports.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{service: service}
}

// --- Request / Response types ---

type submitSuggestionRequest struct {
	Text       string `json:"text" validate:"required,min=1,max=1000"`
	Author     string `json:"author" validate:"max=200"`
	CategoryID *uint  `json:"category_id" validate:"omitempty,gt=0"`
}

type suggestionResponse struct {
	ID           uint      `json:"id"`
	Text         string    `json:"text"`
	Author       string    `json:"author,omitempty"`
	CategoryID   *uint     `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type suggestionAdminResponse struct {
	suggestionResponse
	UserID    uint   `json:"user_id"`
	UserEmail string `json:"user_email,omitempty"`
}

type approveResponse struct {
	QuoteID uint `json:"quote_id"`
}

func toSuggestionResponse(v *ports.SuggestionView) suggestionResponse {
	return suggestionResponse{
		ID:           v.ID,
		Text:         v.Text,
		Author:       v.Author,
		CategoryID:   v.CategoryID,
		CategoryName: v.CategoryName,
		Status:       string(v.Status),
		CreatedAt:    v.CreatedAt,
	}
}

// Submit handles POST /suggestions.
//
// @Summary      Submit a quote suggestion
// @Tags         suggestions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitSuggestionRequest  true  "Suggestion details"
// @Success      201   {object}  suggestionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /suggestions [post]
func (h *SuggestionHandler) Submit(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitSuggestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Submit(c.Request().Context(), ports.SubmitSuggestionInput{
		Text:       req.Text,
		Author:     req.Author,
		CategoryID: req.CategoryID,
		UserID:     userID,
	})
	if err != nil {
		// A bad category reference in the payload is the caller's mistake,
		// not a lookup miss.
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "category does not exist")
		}
		return err
	}

	metrics.SuggestionsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, toSuggestionResponse(view))
}

// ListMine handles GET /suggestions/user.
//
// @Summary      List the caller's suggestions
// @Tags         suggestions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   suggestionResponse
// @Failure      401  {object}  map[string]string
// @Router       /suggestions/user [get]
func (h *SuggestionHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]suggestionResponse, 0, len(views))
	for i := range views {
		out = append(out, toSuggestionResponse(&views[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// RandomMine handles GET /suggestions/user/random.
//
// @Summary      Get a random suggestion of the caller's own
// @Tags         suggestions
// @Produce      json
// @Security     BearerAuth
// @Param        category_id  query     int  false  "Restrict to a category"
// @Success      200          {object}  suggestionResponse
// @Success      204          "The caller has no matching suggestions"
// @Failure      401          {object}  map[string]string
// @Router       /suggestions/user/random [get]
func (h *SuggestionHandler) RandomMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	categoryID, err := queryCategoryID(c)
	if err != nil {
		return err
	}

	view, err := h.service.RandomForUser(c.Request().Context(), userID, categoryID)
	if err != nil {
		return err
	}
	if view == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toSuggestionResponse(view))
}

// ListAll handles GET /suggestions/admin/all (admin only).
//
// @Summary      List all suggestions for moderation
// @Tags         suggestions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   suggestionAdminResponse
// @Failure      403  {object}  map[string]string
// @Router       /suggestions/admin/all [get]
func (h *SuggestionHandler) ListAll(c echo.Context) error {
	views, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]suggestionAdminResponse, 0, len(views))
	for i := range views {
		out = append(out, suggestionAdminResponse{
			suggestionResponse: toSuggestionResponse(&views[i].SuggestionView),
			UserID:             views[i].UserID,
			UserEmail:          views[i].UserEmail,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Approve handles POST /suggestions/:id/approve (admin only).
//
// @Summary      Approve a suggestion
// @Description  Marks the suggestion Approved and publishes it as a quote in a
// @Description  single step. A suggestion that was already moderated, that has
// @Description  no category, or whose category no longer exists is refused.
// @Tags         suggestions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Suggestion id"
// @Success      200  {object}  approveResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /suggestions/{id}/approve [post]
func (h *SuggestionHandler) Approve(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.service.Approve(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.SuggestionsModeratedTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, approveResponse{QuoteID: result.QuoteID})
}

// Reject handles POST /suggestions/:id/reject (admin only).
//
// @Summary      Reject a suggestion
// @Tags         suggestions
// @Security     BearerAuth
// @Param        id   path  int  true  "Suggestion id"
// @Success      204  "Rejected"
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /suggestions/{id}/reject [post]
func (h *SuggestionHandler) Reject(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Reject(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.SuggestionsModeratedTotal.WithLabelValues("rejected").Inc()
	return c.NoContent(http.StatusNoContent)
}
