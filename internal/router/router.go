package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/parking-admin/internal/access"     // capability table used for per-route gates
	"github.com/iliyamo/parking-admin/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/parking-admin/internal/middleware" // import middleware for JWT authentication and capability enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes.  Login and logout do not
// require a token: login is how a token is obtained, and clearing an
// already-empty session is harmless.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)
}

// RegisterAPI registers every protected endpoint.  The JWT middleware is the
// outer gate on the whole /v1 group: an unauthenticated request is rejected
// with 401 before any capability check runs.  Per-route capability
// middleware then enforces the role table, returning 403 without invoking
// the handler when the role lacks the capability.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, sp *handler.SpotHandler, v *handler.VehicleHandler, p *handler.PaymentHandler, u *handler.UserHandler, d *handler.DashboardHandler, jwtSecret string) {
	api := e.Group("/v1")
	api.Use(middleware.JWTAuth(jwtSecret))

	// Session and navigation.  Every authenticated role may see its own
	// profile, menu and the dashboard.
	api.GET("/me", a.Me)
	api.PUT("/profile", a.UpdateProfile)
	api.GET("/menu", handler.Menu)
	api.GET("/menu/resolve", handler.ResolveRoute)
	api.GET("/dashboard", d.Stats, middleware.RequireCapability(access.CapViewDashboard))

	// Parking spots.  Viewing is open to all roles; structural changes and
	// releases are staff operations, reserving is open to everyone.
	api.GET("/spots", sp.List, middleware.RequireCapability(access.CapViewDashboard))
	api.POST("/spots", sp.Create, middleware.RequireCapability(access.CapAddSpot))
	api.DELETE("/spots/:id", sp.Delete, middleware.RequireCapability(access.CapRemoveSpot))
	api.POST("/spots/:id/reserve", sp.Reserve, middleware.RequireCapability(access.CapReserveSpot))
	api.POST("/spots/:id/release", sp.Release, middleware.RequireCapability(access.CapReleaseSpot))

	// Vehicles.
	api.GET("/vehicles", v.List, middleware.RequireCapability(access.CapViewVehicles))
	api.POST("/vehicles", v.Create, middleware.RequireCapability(access.CapAddVehicle))
	api.DELETE("/vehicles/:id", v.Delete, middleware.RequireCapability(access.CapRemoveVehicle))

	// Payments.  Everyone can view and pay; history and statistics are
	// staff views.
	api.GET("/payments", p.List, middleware.RequireCapability(access.CapViewDashboard))
	api.POST("/payments", p.Create, middleware.RequireCapability(access.CapMakePayment))
	api.GET("/payments/quote", p.Quote, middleware.RequireCapability(access.CapMakePayment))
	api.GET("/payments/history", p.History, middleware.RequireCapability(access.CapViewPayStats))
	api.GET("/payments/stats", p.Stats, middleware.RequireCapability(access.CapViewPayStats))

	// Users.
	api.GET("/users", u.List, middleware.RequireCapability(access.CapViewUsers))
	api.POST("/users", u.Create, middleware.RequireCapability(access.CapAddUser))
}
