package repository

import (
	"context"

	"trendkart/internal/domain/entity"
)

type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}
