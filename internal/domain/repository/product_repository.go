package repository

import (
	"context"

	"trendkart/internal/domain/entity"
	"trendkart/pkg/utils"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// ListByCategory returns up to limit products with the given category
	// label, ordered by name ascending, resuming after cursor when one is
	// given. The returned cursor marks the last document of the page and
	// is nil for an empty page.
	ListByCategory(ctx context.Context, category string, cursor *utils.Cursor, limit int) ([]*entity.Product, *utils.Cursor, error)
	// ListByCategoryID filters on the categoryId foreign key.
	ListByCategoryID(ctx context.Context, categoryID string) ([]*entity.Product, error)
	// SuggestByKeyword matches the lowercased term against the
	// searchkeywords token array.
	SuggestByKeyword(ctx context.Context, keyword string, limit int) ([]*entity.Product, error)
	// ListFirst reads the first limit products of the whole collection,
	// unfiltered. The substring-fallback search scans only this window.
	ListFirst(ctx context.Context, limit int) ([]*entity.Product, error)
	// Trending returns the newest products by creation time.
	Trending(ctx context.Context, limit int) ([]*entity.Product, error)
}
