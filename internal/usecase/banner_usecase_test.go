package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendkart/internal/domain/entity"
)

func makeBanners(n int) []*entity.Banner {
	banners := make([]*entity.Banner, n)
	for i := range banners {
		banners[i] = &entity.Banner{
			ID:     fmt.Sprintf("banner-%d", i+1),
			Image:  fmt.Sprintf("https://cdn.example.com/poster-%d.jpg", i+1),
			Status: entity.BannerStatusActive,
		}
	}
	return banners
}

func TestListActiveBannersClampsToCap(t *testing.T) {
	uc := NewBannerUseCase(&fakeBannerRepo{banners: makeBanners(8)})

	banners, err := uc.ListActive(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, banners, BannerLimit)
}

func TestListActiveBannersZeroLimitReturnsAll(t *testing.T) {
	uc := NewBannerUseCase(&fakeBannerRepo{banners: makeBanners(8)})

	banners, err := uc.ListActive(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, banners, 8)

	banners, err = uc.ListActive(context.Background(), -3)
	require.NoError(t, err)
	assert.Len(t, banners, 8)
}

func TestListActiveBannersFewerThanCap(t *testing.T) {
	uc := NewBannerUseCase(&fakeBannerRepo{banners: makeBanners(2)})

	banners, err := uc.ListActive(context.Background(), BannerLimit)
	require.NoError(t, err)
	assert.Len(t, banners, 2)
}
