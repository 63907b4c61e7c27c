package usecase

import (
	"context"
	"strings"

	"trendkart/internal/domain/entity"
	"trendkart/internal/domain/repository"
)

const (
	// SuggestionLimit caps the keyword query.
	SuggestionLimit = 6
	// FallbackScanLimit is how many products the substring fallback
	// inspects. Intentionally only the first window of the collection.
	FallbackScanLimit = 20
	// TrendingLimit is the size of the trending list shown for an empty
	// input.
	TrendingLimit = 5
)

type SearchUseCase struct {
	productRepo repository.ProductRepository
	historyRepo repository.SearchHistoryRepository
}

func NewSearchUseCase(
	productRepo repository.ProductRepository,
	historyRepo repository.SearchHistoryRepository,
) *SearchUseCase {
	return &SearchUseCase{
		productRepo: productRepo,
		historyRepo: historyRepo,
	}
}

// Suggest looks the term up against the searchkeywords token array; when
// that matches nothing it scans the first twenty products and keeps the
// ones whose display name contains the term.
func (uc *SearchUseCase) Suggest(ctx context.Context, term string) ([]*entity.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}

	products, err := uc.productRepo.SuggestByKeyword(ctx, strings.ToLower(term), SuggestionLimit)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		return products, nil
	}

	scanned, err := uc.productRepo.ListFirst(ctx, FallbackScanLimit)
	if err != nil {
		return nil, err
	}

	var matched []*entity.Product
	for _, product := range scanned {
		if product.MatchesPattern(term) {
			matched = append(matched, product)
		}
	}

	return matched, nil
}

func (uc *SearchUseCase) Trending(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.Trending(ctx, TrendingLimit)
}

func (uc *SearchUseCase) RecentSearches(ctx context.Context, userID string) ([]string, error) {
	return uc.historyRepo.List(ctx, userID)
}

func (uc *SearchUseCase) SaveRecentSearch(ctx context.Context, userID, term string) ([]string, error) {
	return uc.historyRepo.Save(ctx, userID, term)
}

func (uc *SearchUseCase) DeleteRecentSearch(ctx context.Context, userID, term string) ([]string, error) {
	return uc.historyRepo.Delete(ctx, userID, term)
}

func (uc *SearchUseCase) ClearRecentSearches(ctx context.Context, userID string) error {
	return uc.historyRepo.Clear(ctx, userID)
}
