package repository

import (
	"context"

	"trendkart/internal/domain/entity"
)

type BannerRepository interface {
	// ListActive returns posters with status "active". A limit of 0 means
	// all of them.
	ListActive(ctx context.Context, limit int) ([]*entity.Banner, error)
}
