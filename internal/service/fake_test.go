package service

import (
	"context"
	"sync"

	"github.com/mmcdole/popcorn/internal/domain"
)

// fakeCatalog is an in-memory CatalogRepository.
// Calls on a done context fail immediately. When block is set, calls wait for it to close or for ctx to be cancelled.
type fakeCatalog struct {
	mu      sync.Mutex
	search  map[string][]domain.SearchResultItem
	details map[string]*domain.MovieDetails
	err     error
	block   chan struct{}

	searchCalls  []string
	detailsCalls []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		search:  make(map[string][]domain.SearchResultItem),
		details: make(map[string]*domain.MovieDetails),
	}
}

func (f *fakeCatalog) Search(ctx context.Context, query string) ([]domain.SearchResultItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, query)
	block, err := f.block, f.err
	items, ok := f.search[query]
	f.mu.Unlock()

	if block != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-block:
		}
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return items, nil
}

func (f *fakeCatalog) GetDetails(ctx context.Context, id string) (*domain.MovieDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.detailsCalls = append(f.detailsCalls, id)
	block, err := f.block, f.err
	d, ok := f.details[id]
	f.mu.Unlock()

	if block != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-block:
		}
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (f *fakeCatalog) searchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searchCalls)
}

var batmanBegins = domain.SearchResultItem{
	ID:        "tt0372784",
	Title:     "Batman Begins",
	Year:      "2005",
	PosterURL: "https://m.media-amazon.com/images/M/batman.jpg",
}
