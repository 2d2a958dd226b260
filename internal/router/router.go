package router // package router defines how HTTP routes are registered for each service

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/aura-journal/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/aura-journal/internal/middleware" // import middleware for JWT authentication
)

// RegisterAuth registers the auth service surface.  Register, login, refresh
// and logout are open routes (refresh and logout authenticate through the
// refresh token they carry); profile and logout-all take a bearer access
// token which the handler resolves through the session store, so no
// middleware wraps them here.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.GET("/health", handler.Health("auth"))

	g := e.Group("/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)
	g.POST("/logout-all", a.LogoutAll)
	g.GET("/profile", a.Profile)
}

// RegisterEntries registers the ingestor surface.  Entry routes sit behind
// the JWT middleware: the ingestor shares the signing secret with the auth
// service and trusts access tokens cryptographically.
func RegisterEntries(e *echo.Echo, h *handler.EntryHandler, jwtSecret string) {
	e.GET("/health", handler.Health("entry-ingestor"))

	g := e.Group("/entries")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.POST("", h.Create)
	g.GET("", h.List)
}

// RegisterAnalyze registers the nlp service surface.  The analyze endpoint is
// internal (service-to-service) and carries no auth of its own.
func RegisterAnalyze(e *echo.Echo, h *handler.AnalyzeHandler) {
	e.GET("/health", handler.Health("nlp-agent"))
	e.POST("/analyze", h.Analyze)
}
