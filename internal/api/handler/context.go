package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the authenticated identity injected by the Auth
// middleware. A missing user id means the middleware did not run on this
// route; fail fast with 401 before any service call.
func ctxIdentity(c echo.Context) (userID uint, role string, err error) {
	userID, _ = c.Get("user_id").(uint)
	if userID == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(string)
	return userID, role, nil
}
