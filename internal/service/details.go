package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mmcdole/popcorn/internal/domain"
)

// User-facing detail failure messages
const (
	MsgDetailsNotFound = "Movie details not found"
	MsgDetailsFailed   = "Could not load movie details"
)

// DetailsRequest fetches the full record for one selected ID
type DetailsRequest struct {
	Gen uint64
	ID  string

	ctx     context.Context
	repo    domain.CatalogRepository
	timeout time.Duration
}

// DetailsResult carries the outcome of a DetailsRequest
type DetailsResult struct {
	Gen     uint64
	ID      string
	Details *domain.MovieDetails
	Err     error
}

// Do queries the catalog for the record
func (r *DetailsRequest) Do() DetailsResult {
	res := DetailsResult{Gen: r.Gen, ID: r.ID}

	ctx := r.ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(r.ctx, r.timeout)
		defer cancel()
	}

	details, err := r.repo.GetDetails(ctx, r.ID)
	if err != nil {
		if r.ctx.Err() != nil {
			err = r.ctx.Err()
		}
		res.Err = err
		return res
	}
	res.Details = details
	return res
}

// DetailsController owns the record for the current selection.
// Results for an ID that is no longer selected are discarded.
type DetailsController struct {
	repo    domain.CatalogRepository
	logger  *slog.Logger
	timeout time.Duration

	mu      sync.RWMutex
	id      string
	details *domain.MovieDetails
	loading bool
	errMsg  string
	gen     uint64
	cancel  context.CancelFunc
}

// NewDetailsController creates a controller backed by the given catalog
func NewDetailsController(repo domain.CatalogRepository, timeout time.Duration, logger *slog.Logger) *DetailsController {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetailsController{
		repo:    repo,
		logger:  logger,
		timeout: timeout,
	}
}

// OnSelectionChange is called with the selected ID, or "" when the selection closes.
// Returns a request only when the ID changes to a concrete value.
// Reselecting an ID after closing fetches it again; nothing is cached.
func (c *DetailsController) OnSelectionChange(id string) *DetailsRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == c.id {
		return nil
	}

	c.cancelLocked()
	c.gen++
	c.id = id
	c.details = nil
	c.errMsg = ""

	if id == "" {
		c.loading = false
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.loading = true

	return &DetailsRequest{
		Gen:     c.gen,
		ID:      id,
		ctx:     ctx,
		repo:    c.repo,
		timeout: c.timeout,
	}
}

// Apply folds a finished request into the controller state.
// Returns false when the result belongs to a stale selection.
func (c *DetailsController) Apply(res DetailsResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res.ID != c.id || res.Gen != c.gen {
		c.logger.Debug("dropping stale details", "id", res.ID, "current", c.id)
		return false
	}
	if errors.Is(res.Err, context.Canceled) {
		return false
	}

	c.loading = false
	c.cancel = nil

	switch {
	case res.Err == nil:
		c.details = res.Details
	case errors.Is(res.Err, domain.ErrNotFound):
		c.logger.Info("movie details not found", "id", res.ID)
		c.errMsg = MsgDetailsNotFound
	default:
		c.logger.Error("failed to load movie details", "id", res.ID, "error", res.Err)
		c.errMsg = MsgDetailsFailed
	}
	return true
}

// ID returns the ID the controller is tracking, or ""
func (c *DetailsController) ID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

// Details returns the loaded record, or nil
func (c *DetailsController) Details() *domain.MovieDetails {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.details
}

// Loading reports whether a fetch is in flight
func (c *DetailsController) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the user-facing error message, or ""
func (c *DetailsController) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMsg
}

// WindowTitle returns the terminal title to show.
// While a titled record is active it is "Movie | <title>", otherwise defaultTitle.
func (c *DetailsController) WindowTitle(defaultTitle string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.details == nil || c.details.Title == "" {
		return defaultTitle
	}
	return "Movie | " + c.details.Title
}

// Shutdown cancels any in-flight fetch and forgets the selection
func (c *DetailsController) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.gen++
	c.id = ""
	c.details = nil
	c.loading = false
	c.errMsg = ""
}

func (c *DetailsController) cancelLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
