package usecase

import (
	"context"

	"trendkart/internal/domain/entity"
	"trendkart/internal/domain/repository"
	"trendkart/pkg/errors"
	"trendkart/pkg/utils"
)

// DefaultPageSize is the category listing page size.
const DefaultPageSize = 8

type CatalogUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListCategoryPage fetches one name-ordered page of a category listing.
// hasMore is false once a page comes back short, which is how the
// infinite scroll knows to stop asking.
func (uc *CatalogUseCase) ListCategoryPage(ctx context.Context, category, encodedCursor string, limit int) ([]*entity.Product, string, bool, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	cursor, err := utils.DecodeCursor(encodedCursor)
	if err != nil {
		return nil, "", false, err
	}

	products, next, err := uc.productRepo.ListByCategory(ctx, category, cursor, limit)
	if err != nil {
		return nil, "", false, err
	}

	hasMore := len(products) == limit
	nextCursor := ""
	if hasMore && next != nil {
		nextCursor = next.Encode()
	}

	return products, nextCursor, hasMore, nil
}

func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

// ProductsByCategoryRef resolves a categoryId to its products, falling
// back to a category-name equality query when the foreign key matches
// nothing. nameHint skips the category lookup when the caller already
// knows the label.
func (uc *CatalogUseCase) ProductsByCategoryRef(ctx context.Context, categoryID, nameHint string) ([]*entity.Product, string, error) {
	categoryName := nameHint
	if categoryName == "" {
		category, err := uc.categoryRepo.GetByID(ctx, categoryID)
		if err == nil {
			categoryName = category.Name
		} else if !errors.Is(err, "NOT_FOUND") {
			return nil, "", err
		}
	}

	products, err := uc.productRepo.ListByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, "", err
	}

	if len(products) == 0 && categoryName != "" {
		products, _, err = uc.productRepo.ListByCategory(ctx, categoryName, nil, 0)
		if err != nil {
			return nil, "", err
		}
	}

	return products, categoryName, nil
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}
