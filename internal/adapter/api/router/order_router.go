package router

import (
	"trendkart/internal/adapter/api/handler"
	"trendkart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.PlaceOrder)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetOrder)

	sellers := e.Group("/v1/sellers/me")
	sellers.Use(authMiddleware.Authenticate)
	sellers.GET("/orders", orderHandler.SellerOrders)
	sellers.GET("/stats", orderHandler.SellerStats)
}
