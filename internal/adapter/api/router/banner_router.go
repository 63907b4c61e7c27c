package router

import (
	"trendkart/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupBannerRouter(e *echo.Echo) {
	bannerHandler := handler.GetBannerHandler()

	e.GET("/v1/banners", bannerHandler.ListActive)
}
