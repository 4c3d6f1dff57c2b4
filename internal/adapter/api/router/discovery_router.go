package router

import (
	"github.com/labstack/echo/v4"

	"localmart/internal/adapter/api/handler"
	"localmart/internal/adapter/api/middleware"
	"localmart/internal/infrastructure/ratelimit"
)

func SetupDiscoveryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	discoveryHandler := handler.GetDiscoveryHandler()

	// Anonymous callers get the public view; a valid token upgrades the
	// view to include the caller's own unapproved shops.
	discovery := e.Group("/v1/discovery")
	discovery.Use(authMiddleware.OptionalAuthenticate)
	discovery.Use(middleware.RateLimit(limiter))
	discovery.GET("/shops", discoveryHandler.FindShops)
	discovery.GET("/products", discoveryHandler.SearchProducts)
}
