package handler

import (
	"trendkart/internal/usecase"
	"trendkart/pkg/errors"
	"trendkart/pkg/response"

	"github.com/labstack/echo/v4"
)

type SearchHandler struct {
	searchUseCase *usecase.SearchUseCase
}

func NewSearchHandler(searchUseCase *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
	}
}

func (h *SearchHandler) Suggestions(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return response.Error(c, errors.BadRequest("Search query is required", nil))
	}

	products, err := h.searchUseCase.Suggest(c.Request().Context(), term)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *SearchHandler) Trending(c echo.Context) error {
	products, err := h.searchUseCase.Trending(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *SearchHandler) ListRecent(c echo.Context) error {
	uid := c.Get("uid").(string)

	terms, err := h.searchUseCase.RecentSearches(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, terms)
}

type saveRecentSearchRequest struct {
	Term string `json:"term" validate:"required"`
}

func (h *SearchHandler) SaveRecent(c echo.Context) error {
	var req saveRecentSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	terms, err := h.searchUseCase.SaveRecentSearch(c.Request().Context(), uid, req.Term)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, terms)
}

// DeleteRecent removes one saved term, or the whole list when no term
// is given.
func (h *SearchHandler) DeleteRecent(c echo.Context) error {
	uid := c.Get("uid").(string)
	term := c.QueryParam("term")

	if term == "" {
		if err := h.searchUseCase.ClearRecentSearches(c.Request().Context(), uid); err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, []string{})
	}

	terms, err := h.searchUseCase.DeleteRecentSearch(c.Request().Context(), uid, term)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, terms)
}
