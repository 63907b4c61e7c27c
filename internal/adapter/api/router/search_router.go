package router

import (
	"trendkart/internal/adapter/api/handler"
	"trendkart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupSearchRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	searchHandler := handler.GetSearchHandler()

	search := e.Group("/v1/search")
	search.GET("/suggestions", searchHandler.Suggestions)
	search.GET("/trending", searchHandler.Trending)

	recent := search.Group("/recent")
	recent.Use(authMiddleware.Authenticate)
	recent.GET("", searchHandler.ListRecent)
	recent.POST("", searchHandler.SaveRecent)
	recent.DELETE("", searchHandler.DeleteRecent)
}
