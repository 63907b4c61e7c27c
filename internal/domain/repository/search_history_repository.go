package repository

import (
	"context"
)

// SearchHistoryRepository is the durable per-user recent-search list:
// capped, de-duplicated, most recent first.
type SearchHistoryRepository interface {
	List(ctx context.Context, userID string) ([]string, error)
	Save(ctx context.Context, userID, term string) ([]string, error)
	Delete(ctx context.Context, userID, term string) ([]string, error)
	Clear(ctx context.Context, userID string) error
}
