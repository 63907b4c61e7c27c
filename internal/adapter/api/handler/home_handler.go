package handler

import (
	"trendkart/internal/usecase"
	"trendkart/pkg/response"

	"github.com/labstack/echo/v4"
)

type HomeHandler struct {
	homeUseCase *usecase.HomeUseCase
}

func NewHomeHandler(homeUseCase *usecase.HomeUseCase) *HomeHandler {
	return &HomeHandler{
		homeUseCase: homeUseCase,
	}
}

func (h *HomeHandler) ListSections(c echo.Context) error {
	return response.Success(c, h.homeUseCase.Sections())
}

func (h *HomeHandler) SectionProducts(c echo.Context) error {
	products, err := h.homeUseCase.SectionProducts(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *HomeHandler) InvalidateSection(c echo.Context) error {
	if err := h.homeUseCase.InvalidateSection(c.Request().Context(), c.Param("key")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "invalidated"})
}
