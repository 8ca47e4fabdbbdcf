package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses a numeric path parameter. A non-numeric or non-positive value
// is a client error, never a lookup miss.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// queryCategoryID parses the optional category_id query parameter.
func queryCategoryID(c echo.Context) (*uint, error) {
	raw := c.QueryParam("category_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid category_id")
	}
	v := uint(id)
	return &v, nil
}

// queryPagination parses page and limit query parameters. Absent or malformed
// values fall back to zero; the service applies its own defaults and caps.
func queryPagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
