package middleware // middleware provides shared request processing for handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-ground-booking/internal/session"
)

// RequireSession returns middleware that resolves the session cookie
// against the server-side store and injects the authenticated identity
// into the request context under "user_id" and "is_admin". Requests
// without a live session are rejected with 401.
func RequireSession(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
			}
			data, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
			}
			c.Set("user_id", data.UserID)
			c.Set("is_admin", data.IsAdmin)
			return next(c)
		}
	}
}

// RequireAdmin returns middleware that rejects non-admin callers with
// 403. It assumes RequireSession ran earlier in the chain.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, ok := c.Get("is_admin").(bool)
			if !ok || !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden - Admin access required"})
			}
			return next(c)
		}
	}
}
