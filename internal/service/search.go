package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mmcdole/popcorn/internal/domain"
)

// MinQueryLength is the shortest trimmed query that triggers a catalog search
const MinQueryLength = 2

// User-facing search failure messages
const (
	MsgMovieNotFound = "Movie not found"
	MsgSearchFailed  = "Something went wrong with fetching the movies"
)

// SearchRequest is a single catalog search issued by the controller.
// Do runs on a background goroutine; everything else stays on the caller's.
type SearchRequest struct {
	Gen   uint64
	Query string

	ctx      context.Context
	repo     domain.CatalogRepository
	timeout  time.Duration
	debounce time.Duration
	logger   *slog.Logger
}

// SearchResult carries the outcome of a SearchRequest back to the controller
type SearchResult struct {
	Gen   uint64
	Query string
	Items []domain.SearchResultItem
	Err   error
}

// Do waits out the debounce window and queries the catalog.
// A request superseded during either phase returns context.Canceled.
func (r *SearchRequest) Do() SearchResult {
	res := SearchResult{Gen: r.Gen, Query: r.Query}

	if r.debounce > 0 {
		timer := time.NewTimer(r.debounce)
		select {
		case <-r.ctx.Done():
			timer.Stop()
			res.Err = r.ctx.Err()
			return res
		case <-timer.C:
		}
	}

	ctx := r.ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(r.ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	items, err := r.repo.Search(ctx, r.Query)
	if err != nil {
		// Supersession wins over whatever the transport reported
		if r.ctx.Err() != nil {
			err = r.ctx.Err()
		}
		res.Err = err
		return res
	}

	r.logger.Debug("search completed", "query", r.Query, "results", len(items), "duration", time.Since(start))
	res.Items = items
	return res
}

// SearchController owns the query, the result list and the search status.
// At most one request is in flight; issuing a new one cancels the previous.
type SearchController struct {
	repo     domain.CatalogRepository
	logger   *slog.Logger
	timeout  time.Duration
	debounce time.Duration

	mu      sync.RWMutex
	query   string
	results []domain.SearchResultItem
	loading bool
	errMsg  string
	gen     uint64
	cancel  context.CancelFunc
}

// NewSearchController creates a controller backed by the given catalog
func NewSearchController(repo domain.CatalogRepository, timeout, debounce time.Duration, logger *slog.Logger) *SearchController {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchController{
		repo:     repo,
		logger:   logger,
		timeout:  timeout,
		debounce: debounce,
	}
}

// OnQueryChange records the new query and decides whether to search.
// Any in-flight request is cancelled. Queries shorter than MinQueryLength
// clear results and error and return nil; otherwise the returned request
// must be executed and its result passed to Apply.
func (c *SearchController) OnQueryChange(query string) *SearchRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.query = query
	c.cancelLocked()
	c.gen++

	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		c.results = nil
		c.errMsg = ""
		c.loading = false
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.errMsg = ""
	c.loading = true

	return &SearchRequest{
		Gen:      c.gen,
		Query:    trimmed,
		ctx:      ctx,
		repo:     c.repo,
		timeout:  c.timeout,
		debounce: c.debounce,
		logger:   c.logger,
	}
}

// Apply folds a finished request into the controller state.
// Returns false when the result was dropped (stale or cancelled).
// Failures clear the result list and set a user-facing message.
func (c *SearchController) Apply(res SearchResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res.Gen != c.gen {
		c.logger.Debug("dropping stale search result", "query", res.Query, "gen", res.Gen, "current", c.gen)
		return false
	}
	if errors.Is(res.Err, context.Canceled) {
		c.logger.Debug("search cancelled", "query", res.Query)
		return false
	}

	c.loading = false
	c.cancel = nil

	switch {
	case res.Err == nil:
		c.results = res.Items
		c.errMsg = ""
	case errors.Is(res.Err, domain.ErrNotFound):
		c.logger.Info("no movies matched", "query", res.Query)
		c.results = nil
		c.errMsg = MsgMovieNotFound
	default:
		c.logger.Error("search failed", "query", res.Query, "error", res.Err)
		c.results = nil
		c.errMsg = MsgSearchFailed
	}
	return true
}

// Query returns the raw query as last typed
func (c *SearchController) Query() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.query
}

// Results returns a copy of the current result list
func (c *SearchController) Results() []domain.SearchResultItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.SearchResultItem, len(c.results))
	copy(out, c.results)
	return out
}

// Loading reports whether a search is in flight
func (c *SearchController) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the user-facing error message, or ""
func (c *SearchController) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMsg
}

// Shutdown cancels any in-flight request
func (c *SearchController) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.gen++
	c.loading = false
}

func (c *SearchController) cancelLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
