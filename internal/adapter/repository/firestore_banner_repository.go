package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"trendkart/internal/domain/entity"
	"trendkart/internal/domain/repository"
	"trendkart/pkg/errors"
)

type firestoreBannerRepository struct {
	client *firestore.Client
}

func NewFirestoreBannerRepository(client *firestore.Client) repository.BannerRepository {
	return &firestoreBannerRepository{
		client: client,
	}
}

func (r *firestoreBannerRepository) ListActive(ctx context.Context, limit int) ([]*entity.Banner, error) {
	query := r.client.Collection("posters").
		Where("status", "==", entity.BannerStatusActive)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var banners []*entity.Banner
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate banners", err)
		}

		var banner entity.Banner
		if err := doc.DataTo(&banner); err != nil {
			return nil, errors.Internal("Failed to parse banner data", err)
		}
		banner.ID = doc.Ref.ID
		banners = append(banners, &banner)
	}

	return banners, nil
}
