package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/arefins/consultation-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/arefins/consultation-booking/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/arefins/consultation-booking/internal/model"      // import model for the admin role constant
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The GET request at "/healthz" maps to the Health handler.  Load
	// balancers and monitoring systems use it to verify that the service
	// is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Routes under /v1/auth do not require an existing session.  There is
	// no register endpoint: admin accounts are seeded into the database.
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token; refresh-access issues a new
	// access token without rotating.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout does not require JWT middleware: it accepts either a bearer
	// token (revoke all sessions) or a refresh_token body (revoke one).
	g.POST("/logout", a.Logout)

	// Routes on this group require a valid access token with the ADMIN
	// role.  Every admin in this system carries that role.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin))
	auth.GET("/me", a.Me)
	auth.POST("/auth/change-password", a.ChangePassword)

	// POST /v1/logout mirrors /v1/auth/logout so clients can call either
	// path with a refresh token in the body to terminate a session.
	e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers the unauthenticated consultation endpoints.
// cache may be nil when Redis is unavailable; rateLimit guards the
// booking submission endpoint against burst abuse.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, b *handler.BookingHandler, cache, rateLimit echo.MiddlewareFunc) {
	g := e.Group("/v1/consultation")
	// The read endpoints are safe to cache: slot availability tolerates
	// the short cache TTL and the rest is display copy.
	reads := []echo.MiddlewareFunc{}
	if cache != nil {
		reads = append(reads, cache)
	}
	g.GET("/slots", p.ListAvailableSlots, reads...)
	g.GET("/content/:section", p.GetContent, reads...)
	g.GET("/reviews", p.ListReviews, reads...)
	g.GET("/projects", p.ListProjects, reads...)

	// Booking submission is the only public write; rate limit it.
	writes := []echo.MiddlewareFunc{}
	if rateLimit != nil {
		writes = append(writes, rateLimit)
	}
	g.POST("/bookings", b.CreateBooking, writes...)
}

// RegisterAdmin registers the operator surface under /v1/admin.  All
// routes require a valid access token carrying the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))

	// Slot management, including the batch quick-generate operation.
	g.GET("/slots", a.ListSlots)
	g.POST("/slots", a.CreateSlot)
	g.POST("/slots/quick-generate", a.QuickGenerateSlots)
	g.PATCH("/slots/:id", a.UpdateSlot)
	g.DELETE("/slots/:id", a.DeleteSlot)

	// Booking review and lifecycle updates.
	g.GET("/bookings", a.ListBookings)
	g.GET("/bookings/:id", a.GetBooking)
	g.PATCH("/bookings/:id", a.UpdateBooking)

	// Page content, reviews and projects.
	g.GET("/content/:section", a.GetContentSection)
	g.PUT("/content/:section", a.UpsertContentSection)
	g.POST("/reviews", a.CreateReview)
	g.PUT("/reviews/:id", a.UpdateReview)
	g.DELETE("/reviews/:id", a.DeleteReview)
	g.POST("/projects", a.CreateProject)
	g.PUT("/projects/:id", a.UpdateProject)
	g.DELETE("/projects/:id", a.DeleteProject)
}
