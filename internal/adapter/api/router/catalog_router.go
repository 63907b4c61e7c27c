package router

import (
	"trendkart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()

	categories := e.Group("/v1/categories")
	categories.GET("", catalogHandler.ListCategories)
	categories.GET("/:name/products", catalogHandler.ListCategoryProducts)
	categories.GET("/id/:id/products", catalogHandler.ListProductsByCategoryID)

	e.GET("/v1/products/:id", catalogHandler.GetProduct)
}
