package handler

import (
	"trendkart/internal/usecase"
	"trendkart/pkg/response"
	"trendkart/pkg/utils"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

// ListCategoryProducts serves one page of the infinite-scroll category
// listing. The client echoes nextCursor back to fetch the following
// page.
func (h *CatalogHandler) ListCategoryProducts(c echo.Context) error {
	category := c.Param("name")
	cursor := c.QueryParam("cursor")
	limit := utils.GetLimitParam(c, usecase.DefaultPageSize, 50)

	products, nextCursor, hasMore, err := h.catalogUseCase.ListCategoryPage(
		c.Request().Context(),
		category,
		cursor,
		limit,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paged(c, products, nextCursor, hasMore)
}

func (h *CatalogHandler) ListProductsByCategoryID(c echo.Context) error {
	categoryID := c.Param("id")
	nameHint := c.QueryParam("name")

	products, categoryName, err := h.catalogUseCase.ProductsByCategoryRef(
		c.Request().Context(),
		categoryID,
		nameHint,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"category_name": categoryName,
		"products":      products,
	})
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}
