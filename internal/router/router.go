// Package router wires HTTP routes to their handlers.  Registration
// is split by audience: health probes, admin authentication, the
// public storefront, and the JWT-protected back office.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-reservation/internal/handler"
	"github.com/iliyamo/travel-reservation/internal/middleware"
)

// RegisterRoutes registers routes with no authentication or caching.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the admin credential endpoints.  Register and
// login are open; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN"))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the storefront: catalog browsing, quoting
// and the reservation workflow.  Catalog reads go through the response
// cache; reservation submission sits behind the rate limiter.  Either
// middleware may be a no-op when Redis is unavailable.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, b *handler.BookingHandler, cache, limit echo.MiddlewareFunc) {
	cat := e.Group("/v1", cache)
	// the static popular route must be registered before /packages/:id
	cat.GET("/packages/popular", p.GetPopularPackages)
	cat.GET("/packages", p.GetPackages)
	cat.GET("/packages/:id", p.GetPackage)
	cat.GET("/packages/:id/departures", p.GetDepartures)
	cat.GET("/search/packages", p.SearchPackages)

	e.POST("/v1/reservations/quote", b.Quote)
	e.POST("/v1/reservations", b.Create, limit)
	e.GET("/v1/reservations/:id", b.Get)
}

// RegisterAdmin registers the back office under /v1/admin.  Every
// route requires a valid token carrying the ADMIN role.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))

	g.GET("/packages", h.ListPackages)
	g.POST("/packages", h.CreatePackage)
	g.GET("/packages/:id", h.GetPackage)
	g.PUT("/packages/:id", h.UpdatePackage)
	g.DELETE("/packages/:id", h.DeletePackage)
	g.PATCH("/packages/:id/images", h.EditPackageImages)

	g.GET("/properties/:type", h.ListProperties)
	g.POST("/properties/:type", h.CreateProperty)
	g.GET("/properties/:type/:id", h.GetProperty)
	g.PUT("/properties/:type/:id", h.UpdateProperty)
	g.DELETE("/properties/:type/:id", h.DeleteProperty)
	g.PATCH("/properties/:type/:id/images", h.EditPropertyImages)

	g.GET("/reservations", h.ListReservations)
	g.GET("/reservations/:id", h.GetReservation)
	g.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
	g.PATCH("/reservations/:id/payment", h.UpdateReservationPayment)
	g.DELETE("/reservations/:id", h.DeleteReservation)
}
