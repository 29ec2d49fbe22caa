package domain

import "context"

// CatalogRepository provides read-only access to the remote movie catalog.
// Implementations must honour ctx cancellation and return ctx.Err() (possibly wrapped)
// when a call is abandoned, so callers can tell superseded requests from failures.
type CatalogRepository interface {
	// Search returns the first page of titles matching query, in catalog order.
	// Returns ErrNotFound when the catalog reports no matches.
	Search(ctx context.Context, query string) ([]SearchResultItem, error)

	// GetDetails returns the full record for a catalog ID.
	GetDetails(ctx context.Context, id string) (*MovieDetails, error)
}
