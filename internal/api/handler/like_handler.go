package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quotify/quotify-api/internal/api/metrics"
	"github.com/quotify/quotify-api/internal/core/ports"
)

// LikeHandler handles HTTP requests for quote likes.
type LikeHandler struct {
	service ports.LikeService
}

func NewLikeHandler(service ports.LikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

// --- Request / Response types ---

type likeRequest struct {
	QuoteID uint `json:"quote_id" validate:"required,gt=0"`
}

type likeResponse struct {
	LikeID  uint `json:"like_id"`
	QuoteID uint `json:"quote_id"`
}

type favouriteResponse struct {
	quoteResponse
	LikedAt time.Time `json:"liked_at"`
}

type likedStatusResponse struct {
	QuoteID uint `json:"quote_id"`
	Liked   bool `json:"liked"`
}

// Like handles POST /likes.
//
// @Summary      Like a quote
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      likeRequest  true  "Quote to like"
// @Success      201   {object}  likeResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /likes [post]
func (h *LikeHandler) Like(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req likeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	likeID, err := h.service.Like(c.Request().Context(), userID, req.QuoteID)
	if err != nil {
		return err
	}

	metrics.LikesTotal.WithLabelValues("like").Inc()
	return c.JSON(http.StatusCreated, likeResponse{LikeID: likeID, QuoteID: req.QuoteID})
}

// Unlike handles DELETE /likes/:quote_id.
//
// @Summary      Remove a like
// @Tags         likes
// @Security     BearerAuth
// @Param        quote_id  path  int  true  "Quote id"
// @Success      204       "Unliked"
// @Failure      404       {object}  map[string]string
// @Router       /likes/{quote_id} [delete]
func (h *LikeHandler) Unlike(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	quoteID, err := pathID(c, "quote_id")
	if err != nil {
		return err
	}

	if err := h.service.Unlike(c.Request().Context(), userID, quoteID); err != nil {
		return err
	}

	metrics.LikesTotal.WithLabelValues("unlike").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ListMine handles GET /likes/user.
//
// @Summary      List the caller's liked quotes
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   favouriteResponse
// @Failure      401  {object}  map[string]string
// @Router       /likes/user [get]
func (h *LikeHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	favourites, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]favouriteResponse, 0, len(favourites))
	for i := range favourites {
		out = append(out, favouriteResponse{
			quoteResponse: toQuoteResponse(&favourites[i].QuoteView),
			LikedAt:       favourites[i].LikedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// IsLiked handles GET /likes/user/:quote_id.
//
// @Summary      Check whether the caller liked a quote
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        quote_id  path      int  true  "Quote id"
// @Success      200       {object}  likedStatusResponse
// @Failure      401       {object}  map[string]string
// @Router       /likes/user/{quote_id} [get]
func (h *LikeHandler) IsLiked(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	quoteID, err := pathID(c, "quote_id")
	if err != nil {
		return err
	}

	liked, err := h.service.IsLiked(c.Request().Context(), userID, quoteID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likedStatusResponse{QuoteID: quoteID, Liked: liked})
}
