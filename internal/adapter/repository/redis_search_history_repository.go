package repository

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	domain "trendkart/internal/domain/repository"
	"trendkart/pkg/errors"
)

// Recent searches are capped at five entries, most recent first,
// de-duplicated.
const recentSearchLimit = 5

type redisSearchHistoryRepository struct {
	client *redis.Client
}

func NewRedisSearchHistoryRepository(client *redis.Client) domain.SearchHistoryRepository {
	return &redisSearchHistoryRepository{
		client: client,
	}
}

func recentSearchKey(userID string) string {
	return "search:recent:" + userID
}

func (r *redisSearchHistoryRepository) List(ctx context.Context, userID string) ([]string, error) {
	terms, err := r.client.LRange(ctx, recentSearchKey(userID), 0, recentSearchLimit-1).Result()
	if err != nil {
		return nil, errors.Internal("Failed to list recent searches", err)
	}
	return terms, nil
}

func (r *redisSearchHistoryRepository) Save(ctx context.Context, userID, term string) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.List(ctx, userID)
	}

	key := recentSearchKey(userID)
	pipe := r.client.TxPipeline()
	pipe.LRem(ctx, key, 0, term)
	pipe.LPush(ctx, key, term)
	pipe.LTrim(ctx, key, 0, recentSearchLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Internal("Failed to save recent search", err)
	}

	return r.List(ctx, userID)
}

func (r *redisSearchHistoryRepository) Delete(ctx context.Context, userID, term string) ([]string, error) {
	if err := r.client.LRem(ctx, recentSearchKey(userID), 0, term).Err(); err != nil {
		return nil, errors.Internal("Failed to delete recent search", err)
	}
	return r.List(ctx, userID)
}

func (r *redisSearchHistoryRepository) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, recentSearchKey(userID)).Err(); err != nil {
		return errors.Internal("Failed to clear recent searches", err)
	}
	return nil
}
