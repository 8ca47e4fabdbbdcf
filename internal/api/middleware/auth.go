package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// Auth validates the JWT and injects the user identity into context.
// Claims carried over: user_id (uint), email, role (normalized).
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// JSON numbers decode as float64.
			userID, ok := claims["user_id"].(float64)
			if !ok || userID <= 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
			}

			role, _ := claims["role"].(string)
			email, _ := claims["email"].(string)

			c.Set("user_id", uint(userID))
			c.Set("email", email)
			c.Set("role", domain.NormalizeRole(role))

			return next(c)
		}
	}
}
