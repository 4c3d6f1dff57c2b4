package router

import (
	"github.com/labstack/echo/v4"

	"localmart/internal/adapter/api/handler"
	"localmart/internal/adapter/api/middleware"
)

func SetupShopRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	shopHandler := handler.GetShopHandler()
	productHandler := handler.GetProductHandler()
	verificationHandler := handler.GetVerificationHandler()

	// Public reads
	e.GET("/v1/shops/:id", shopHandler.GetShop)
	e.GET("/v1/shops/:id/products", productHandler.ListShopProducts)
	e.GET("/v1/products/:id", productHandler.GetProduct)

	shops := e.Group("/v1/shops")
	shops.Use(authMiddleware.Authenticate)
	shops.POST("", shopHandler.CreateShop)
	shops.PUT("/:id", shopHandler.UpdateShop)
	shops.DELETE("/:id", shopHandler.DeleteShop)
	shops.POST("/:id/products", productHandler.AddProduct)
	shops.POST("/:id/verification", verificationHandler.SubmitForReview)
	shops.GET("/:id/verification", verificationHandler.GetShopStatus)

	myShops := e.Group("/v1/my-shops")
	myShops.Use(authMiddleware.Authenticate)
	myShops.GET("", shopHandler.ListMyShops)

	products := e.Group("/v1/products")
	products.Use(authMiddleware.Authenticate)
	products.PUT("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)
}
