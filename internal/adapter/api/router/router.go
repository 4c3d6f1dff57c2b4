package router

import (
	"github.com/labstack/echo/v4"

	"localmart/internal/adapter/api/middleware"
	"localmart/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, discoveryLimiter *ratelimit.RateLimiter) {
	SetupHealthRouter(e)
	SetupAccountRouter(e, authMiddleware)
	SetupShopRouter(e, authMiddleware)
	SetupDiscoveryRouter(e, authMiddleware, discoveryLimiter)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
}
