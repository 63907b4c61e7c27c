package usecase

import (
	"context"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFeedPagination(t *testing.T) {
	// 2 full pages of 8 plus a short page of 3
	repo := newFakeProductRepo(makeProducts("Footwears", 19)...)
	feed := NewCategoryFeed(repo, "Footwears", 8)

	page1, err := feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, page1, 8)
	assert.True(t, feed.HasMore())

	page2, err := feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, page2, 8)
	assert.True(t, feed.HasMore())

	page3, err := feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, page3, 3)
	assert.False(t, feed.HasMore())

	// further triggers are no-ops
	page4, err := feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page4)
	assert.Len(t, feed.Products(), 19)
	assert.Equal(t, 3, repo.calls())
}

func TestCategoryFeedExactMultipleOfPageSize(t *testing.T) {
	repo := newFakeProductRepo(makeProducts("Footwears", 16)...)
	feed := NewCategoryFeed(repo, "Footwears", 8)

	_, err := feed.LoadMore(context.Background())
	require.NoError(t, err)
	_, err = feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.True(t, feed.HasMore())

	// the third fetch comes back empty and terminates the feed
	page, err := feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.False(t, feed.HasMore())
	assert.Len(t, feed.Products(), 16)
}

func TestCategoryFeedNoDuplicatesAcrossPages(t *testing.T) {
	repo := newFakeProductRepo(makeProducts("Toys", 20)...)
	feed := NewCategoryFeed(repo, "Toys", 8)

	for feed.HasMore() {
		_, err := feed.LoadMore(context.Background())
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for _, p := range feed.Products() {
		assert.False(t, seen[p.ID], "duplicate product %s", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 20)
}

func TestCategoryFeedSuppressesConcurrentLoads(t *testing.T) {
	repo := newFakeProductRepo(makeProducts("Footwears", 30)...)
	repo.gate = make(chan struct{})
	feed := NewCategoryFeed(repo, "Footwears", 8)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		feed.LoadMore(context.Background())
	}()

	// wait for the first load to be inside the repository call
	for repo.calls() == 0 {
		runtime.Gosched()
	}

	// repeated triggers while a fetch is outstanding must be no-ops
	for i := 0; i < 5; i++ {
		page, err := feed.LoadMore(context.Background())
		require.NoError(t, err)
		assert.Nil(t, page)
	}

	close(repo.gate)
	wg.Wait()

	assert.Equal(t, 1, repo.calls())
	assert.Len(t, feed.Products(), 8)
}

func TestCategoryFeedErrorKeepsLoadedPages(t *testing.T) {
	repo := newFakeProductRepo(makeProducts("Footwears", 20)...)
	feed := NewCategoryFeed(repo, "Footwears", 8)

	_, err := feed.LoadMore(context.Background())
	require.NoError(t, err)

	repo.failList = true
	_, err = feed.LoadMore(context.Background())
	assert.Error(t, err)
	assert.Len(t, feed.Products(), 8)
	assert.True(t, feed.HasMore())

	// a later retry picks up where the cursor left off
	repo.failList = false
	page, err := feed.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, page, 8)
	assert.Len(t, feed.Products(), 16)
}
