package handler

import (
	"trendkart/internal/usecase"
	"trendkart/pkg/response"
	"trendkart/pkg/utils"

	"github.com/labstack/echo/v4"
)

type BannerHandler struct {
	bannerUseCase *usecase.BannerUseCase
}

func NewBannerHandler(bannerUseCase *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{
		bannerUseCase: bannerUseCase,
	}
}

func (h *BannerHandler) ListActive(c echo.Context) error {
	limit := utils.GetLimitParam(c, 0, usecase.BannerLimit)

	banners, err := h.bannerUseCase.ListActive(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, banners)
}
