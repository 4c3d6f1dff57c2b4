package router

import (
	"github.com/labstack/echo/v4"

	"localmart/internal/adapter/api/handler"
	"localmart/internal/adapter/api/middleware"
)

func SetupAccountRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	accountHandler := handler.GetAccountHandler()

	accounts := e.Group("/v1/accounts")
	accounts.Use(authMiddleware.Authenticate)
	accounts.POST("", accountHandler.Register)
	accounts.GET("/me", accountHandler.Me)
	accounts.PATCH("/me", accountHandler.UpdateProfile)
}
