package omdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/popcorn/internal/domain"
)

const notAvailable = "N/A"

// OMDb signals a bad key through the Error field of an otherwise valid payload
const invalidKeyReason = "Invalid API key!"

// checkResponse validates the Response flag shared by all payloads.
// A "False" response becomes ErrNotFound, or ErrInvalidAPIKey for key rejections.
func checkResponse(flag, reason string) error {
	switch flag {
	case "True":
		return nil
	case "False":
		if reason == invalidKeyReason {
			return domain.ErrInvalidAPIKey
		}
		if reason == "" {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: %s", domain.ErrNotFound, reason)
	default:
		return fmt.Errorf("%w: unexpected Response flag %q", domain.ErrMalformedResponse, flag)
	}
}

// MapSearchResults converts a search payload into result items, preserving order
func MapSearchResults(resp SearchResponse) ([]domain.SearchResultItem, error) {
	if err := checkResponse(resp.Response, resp.Error); err != nil {
		return nil, err
	}
	if resp.Search == nil {
		return nil, fmt.Errorf("%w: missing Search list", domain.ErrMalformedResponse)
	}

	items := make([]domain.SearchResultItem, 0, len(resp.Search))
	for i, r := range resp.Search {
		if r.IMDbID == "" {
			return nil, fmt.Errorf("%w: search result %d has no imdbID", domain.ErrMalformedResponse, i)
		}
		items = append(items, domain.SearchResultItem{
			ID:        r.IMDbID,
			Title:     r.Title,
			Year:      r.Year,
			PosterURL: parsePoster(r.Poster),
		})
	}
	return items, nil
}

// MapTitle converts a title payload into a detail record.
// wantID guards against the catalog answering for a different title.
func MapTitle(resp TitleResponse, wantID string) (*domain.MovieDetails, error) {
	if err := checkResponse(resp.Response, resp.Error); err != nil {
		return nil, err
	}
	if resp.IMDbID == "" || resp.Title == "" {
		return nil, fmt.Errorf("%w: title payload lacks imdbID or Title", domain.ErrMalformedResponse)
	}
	if wantID != "" && resp.IMDbID != wantID {
		return nil, fmt.Errorf("%w: asked for %s, got %s", domain.ErrMalformedResponse, wantID, resp.IMDbID)
	}

	return &domain.MovieDetails{
		ID:             resp.IMDbID,
		Title:          resp.Title,
		Year:           resp.Year,
		PosterURL:      parsePoster(resp.Poster),
		RuntimeMinutes: parseRuntime(resp.Runtime),
		IMDbRating:     parseRating(resp.IMDbRating),
		Plot:           orEmpty(resp.Plot),
		Released:       orEmpty(resp.Released),
		Actors:         orEmpty(resp.Actors),
		Director:       orEmpty(resp.Director),
		Genre:          orEmpty(resp.Genre),
	}, nil
}

// parseRuntime reads the leading integer of values like "148 min"
func parseRuntime(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func parseRating(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == notAvailable {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parsePoster(s string) string {
	if s == notAvailable {
		return ""
	}
	return s
}

func orEmpty(s string) string {
	if s == notAvailable {
		return ""
	}
	return s
}
