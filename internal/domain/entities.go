package domain

import "fmt"

// SearchResultItem is a single hit from a catalog search.
// It only lives as long as the result set it came from.
type SearchResultItem struct {
	ID        string // Catalog identifier (IMDb ID, e.g. "tt0372784")
	Title     string
	Year      string // Kept as text: the catalog returns ranges like "2005–2008"
	PosterURL string // Empty when the catalog has no poster
}

// GetID returns the catalog identifier
func (s SearchResultItem) GetID() string { return s.ID }

// GetTitle returns the display title
func (s SearchResultItem) GetTitle() string { return s.Title }

// DisplayTitle returns the title with its year, e.g. "Batman Begins (2005)"
func (s SearchResultItem) DisplayTitle() string {
	if s.Year == "" {
		return s.Title
	}
	return fmt.Sprintf("%s (%s)", s.Title, s.Year)
}

// MovieDetails is the full catalog record for a single title.
// It is fetched fresh for every selection and never cached.
type MovieDetails struct {
	ID             string
	Title          string
	Year           string
	PosterURL      string
	RuntimeMinutes int     // 0 when unknown
	IMDbRating     float64 // 0-10 scale, 0 when unknown
	Plot           string
	Released       string
	Actors         string
	Director       string
	Genre          string
}

// FormattedRuntime returns the runtime as "148 min", or "" when unknown
func (d MovieDetails) FormattedRuntime() string {
	if d.RuntimeMinutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%d min", d.RuntimeMinutes)
}

// Rating bounds for a user-assigned rating
const (
	MinUserRating = 1
	MaxUserRating = 10
)

// WatchedEntry is a movie the user has marked as watched and rated.
// Entries are immutable once created; ID is the natural key.
type WatchedEntry struct {
	ID             string
	Title          string
	Year           string
	PosterURL      string
	RuntimeMinutes int
	IMDbRating     float64
	UserRating     int // 1-10
}

// GetID returns the catalog identifier
func (w WatchedEntry) GetID() string { return w.ID }

// GetTitle returns the display title
func (w WatchedEntry) GetTitle() string { return w.Title }

// NewWatchedEntry builds a watched entry from a fetched record and the user's rating.
// The rating is validated by the watched store, not here.
func NewWatchedEntry(d MovieDetails, userRating int) WatchedEntry {
	return WatchedEntry{
		ID:             d.ID,
		Title:          d.Title,
		Year:           d.Year,
		PosterURL:      d.PosterURL,
		RuntimeMinutes: d.RuntimeMinutes,
		IMDbRating:     d.IMDbRating,
		UserRating:     userRating,
	}
}

// ValidUserRating reports whether r is an acceptable user rating
func ValidUserRating(r int) bool {
	return r >= MinUserRating && r <= MaxUserRating
}
