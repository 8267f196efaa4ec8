package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-ground-booking/internal/metrics"
)

// Metrics returns middleware counting requests per matched route.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			metrics.IncHTTP(c.Path())
			return next(c)
		}
	}
}
