package repository

import (
	"context"
	"strings"
	"sync"

	domain "trendkart/internal/domain/repository"
)

// memorySearchHistoryRepository keeps recent searches in process memory.
// Used when no Redis address is configured, and in tests.
type memorySearchHistoryRepository struct {
	mu    sync.Mutex
	terms map[string][]string
}

func NewMemorySearchHistoryRepository() domain.SearchHistoryRepository {
	return &memorySearchHistoryRepository{
		terms: make(map[string][]string),
	}
}

func (r *memorySearchHistoryRepository) List(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.terms[userID]...), nil
}

func (r *memorySearchHistoryRepository) Save(ctx context.Context, userID, term string) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.List(ctx, userID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	updated := []string{term}
	for _, t := range r.terms[userID] {
		if t != term {
			updated = append(updated, t)
		}
	}
	if len(updated) > recentSearchLimit {
		updated = updated[:recentSearchLimit]
	}
	r.terms[userID] = updated

	return append([]string(nil), updated...), nil
}

func (r *memorySearchHistoryRepository) Delete(ctx context.Context, userID, term string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var updated []string
	for _, t := range r.terms[userID] {
		if t != term {
			updated = append(updated, t)
		}
	}
	r.terms[userID] = updated

	return append([]string(nil), updated...), nil
}

func (r *memorySearchHistoryRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.terms, userID)
	return nil
}
