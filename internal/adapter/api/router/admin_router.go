package router

import (
	"github.com/labstack/echo/v4"

	"localmart/internal/adapter/api/handler"
	"localmart/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	verificationHandler := handler.GetVerificationHandler()
	accountHandler := handler.GetAccountHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/verifications", verificationHandler.ListPending)
	admin.POST("/shops/:id/verification/decision", verificationHandler.Decide)
	admin.PUT("/accounts/:id/role", accountHandler.ChangeRole)
}
