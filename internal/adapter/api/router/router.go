package router

import (
	"trendkart/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupCatalogRouter(e)
	SetupSearchRouter(e, authMiddleware)
	SetupBannerRouter(e)
	SetupHomeRouter(e)
	SetupOrderRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
