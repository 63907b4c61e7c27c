package handler

import (
	"trendkart/internal/usecase"
)

var (
	catalogHandler *CatalogHandler
	searchHandler  *SearchHandler
	bannerHandler  *BannerHandler
	homeHandler    *HomeHandler
	orderHandler   *OrderHandler
	healthHandler  *HealthHandler
)

func Setup(
	catalogUseCase *usecase.CatalogUseCase,
	searchUseCase *usecase.SearchUseCase,
	bannerUseCase *usecase.BannerUseCase,
	homeUseCase *usecase.HomeUseCase,
	orderUseCase *usecase.OrderUseCase,
) {
	catalogHandler = NewCatalogHandler(catalogUseCase)
	searchHandler = NewSearchHandler(searchUseCase)
	bannerHandler = NewBannerHandler(bannerUseCase)
	homeHandler = NewHomeHandler(homeUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	healthHandler = NewHealthHandler()
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetSearchHandler() *SearchHandler {
	return searchHandler
}

func GetBannerHandler() *BannerHandler {
	return bannerHandler
}

func GetHomeHandler() *HomeHandler {
	return homeHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
