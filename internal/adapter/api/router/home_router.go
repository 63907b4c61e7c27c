package router

import (
	"trendkart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupHomeRouter(e *echo.Echo) {
	homeHandler := handler.GetHomeHandler()

	home := e.Group("/v1/home/sections")
	home.GET("", homeHandler.ListSections)
	home.GET("/:key", homeHandler.SectionProducts)
	home.DELETE("/:key/cache", homeHandler.InvalidateSection)
}
