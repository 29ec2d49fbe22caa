// Package catalog builds the remote movie catalog from configuration.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/popcorn/internal/catalog/omdb"
	"github.com/mmcdole/popcorn/internal/config"
	"github.com/mmcdole/popcorn/internal/domain"
)

const verifyTimeout = 10 * time.Second

// probeID is a well-known title used to check an API key (Guardians of the Galaxy Vol. 2)
const probeID = "tt3896198"

// NewClient creates the catalog repository described by cfg
func NewClient(cfg *config.Config, logger *slog.Logger) (domain.CatalogRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if !cfg.IsConfigured() {
		return nil, fmt.Errorf("catalog API key is required")
	}

	return omdb.NewClient(
		cfg.Catalog.BaseURL,
		cfg.Catalog.APIKey,
		logger,
		omdb.WithRateLimit(cfg.Catalog.RateLimit, cfg.Catalog.Burst),
	), nil
}

// VerifyAPIKey checks that the configured key is accepted by looking up a known title.
// Returns domain.ErrInvalidAPIKey when the catalog rejects it.
func VerifyAPIKey(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repo, err := NewClient(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	_, err = repo.GetDetails(ctx, probeID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidAPIKey):
		return err
	default:
		return fmt.Errorf("could not verify API key: %w", err)
	}
}
