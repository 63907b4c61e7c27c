package usecase

import (
	"context"

	"trendkart/internal/domain/entity"
	"trendkart/internal/domain/repository"
)

// BannerLimit caps the header carousel variant; the full-width variant
// passes 0 and renders every active poster.
const BannerLimit = 5

type BannerUseCase struct {
	bannerRepo repository.BannerRepository
}

func NewBannerUseCase(bannerRepo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{
		bannerRepo: bannerRepo,
	}
}

func (uc *BannerUseCase) ListActive(ctx context.Context, limit int) ([]*entity.Banner, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > BannerLimit {
		limit = BannerLimit
	}
	return uc.bannerRepo.ListActive(ctx, limit)
}
