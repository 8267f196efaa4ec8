// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/sports-ground-booking/internal/handler"
	"github.com/iliyamo/sports-ground-booking/internal/middleware"
	"github.com/iliyamo/sports-ground-booking/internal/session"
)

// RegisterSystem mounts liveness and metrics endpoints.
func RegisterSystem(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterAuth mounts registration, login and session routes.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, store *session.Store) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout, middleware.RequireSession(store))
	g.GET("/me", a.Me, middleware.RequireSession(store))
}

// RegisterCatalogue mounts the public ground and slot read routes.
// cache may be a pass-through middleware when response caching is off.
func RegisterCatalogue(e *echo.Echo, gh *handler.GroundHandler, sh *handler.SlotHandler, cache echo.MiddlewareFunc) {
	e.GET("/api/grounds", gh.List, cache)
	e.GET("/api/grounds/:id", gh.Get, cache)
	e.GET("/api/slots", sh.List, cache)
	e.GET("/api/slots/:id", sh.Get, cache)
	e.GET("/api/grounds/:groundId/slots", sh.ListByGround, cache)
	e.GET("/api/grounds/:groundId/slots/available", sh.ListAvailable, cache)
}

// RegisterAdminCatalogue mounts the admin-only ground and slot write
// routes.
func RegisterAdminCatalogue(e *echo.Echo, gh *handler.GroundHandler, sh *handler.SlotHandler, store *session.Store) {
	auth := middleware.RequireSession(store)
	admin := middleware.RequireAdmin()

	e.POST("/api/grounds", gh.Create, auth, admin)
	e.PUT("/api/grounds/:id", gh.Update, auth, admin)
	e.DELETE("/api/grounds/:id", gh.Delete, auth, admin)

	e.POST("/api/slots", sh.Create, auth, admin)
	e.PUT("/api/slots/:id", sh.Update, auth, admin)
	e.DELETE("/api/slots/:id", sh.Delete, auth, admin)
}

// RegisterUsers mounts the user account routes.
func RegisterUsers(e *echo.Echo, uh *handler.UserHandler, store *session.Store) {
	auth := middleware.RequireSession(store)
	admin := middleware.RequireAdmin()

	e.GET("/api/users", uh.List, auth, admin)
	e.GET("/api/users/:id", uh.Get, auth)
	e.PUT("/api/users/:id", uh.Update, auth)
}

// RegisterBookings mounts the booking routes. Ownership checks beyond
// the admin gate live in the booking service.
func RegisterBookings(e *echo.Echo, bh *handler.BookingHandler, store *session.Store) {
	auth := middleware.RequireSession(store)
	admin := middleware.RequireAdmin()

	e.POST("/api/bookings", bh.Create, auth)
	e.GET("/api/bookings", bh.List, auth, admin)
	e.GET("/api/bookings/:id", bh.Get, auth)
	e.PUT("/api/bookings/:id/status", bh.UpdateStatus, auth)
	e.GET("/api/users/:userId/bookings", bh.ListByUser, auth)
	e.GET("/api/grounds/:groundId/bookings", bh.ListByGround, auth, admin)
}

// RegisterPayments mounts the payment routes.
func RegisterPayments(e *echo.Echo, ph *handler.PaymentHandler, store *session.Store) {
	auth := middleware.RequireSession(store)
	admin := middleware.RequireAdmin()

	e.POST("/api/payments", ph.Create, auth)
	e.GET("/api/payments", ph.List, auth, admin)
	e.GET("/api/payments/:id", ph.Get, auth)
	e.PUT("/api/payments/:id/status", ph.UpdateStatus, auth, admin)
	e.GET("/api/bookings/:bookingId/payment", ph.GetByBooking, auth)
}

// RegisterReports mounts the admin reporting routes.
func RegisterReports(e *echo.Echo, rh *handler.ReportHandler, store *session.Store) {
	auth := middleware.RequireSession(store)
	admin := middleware.RequireAdmin()

	e.GET("/api/reports/grounds/:groundId/revenue", rh.GroundRevenue, auth, admin)
	e.GET("/api/reports/grounds/:groundId/occupancy", rh.GroundOccupancy, auth, admin)
	e.GET("/api/reports/bookings/export", rh.ExportBookings, auth, admin)
}
