package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/popcorn/internal/domain"
)

const batmanSearchBody = `{
  "Search": [
    {"Title": "Batman Begins", "Year": "2005", "imdbID": "tt0372784", "Type": "movie", "Poster": "https://m.media-amazon.com/images/M/batman.jpg"}
  ],
  "totalResults": "1",
  "Response": "True"
}`

const batmanTitleBody = `{
  "Title": "Batman Begins", "Year": "2005", "Released": "15 Jun 2005", "Runtime": "140 min",
  "Genre": "Action, Crime, Drama", "Director": "Christopher Nolan",
  "Actors": "Christian Bale, Michael Caine, Ken Watanabe",
  "Plot": "After witnessing his parents' death, Bruce learns the art of fighting.",
  "Poster": "N/A", "imdbRating": "8.2", "imdbID": "tt0372784", "Type": "movie", "Response": "True"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", "test-key", nil, WithRateLimit(0, 1))
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if got := r.URL.Query().Get("s"); got != "batman" {
			t.Errorf("s = %q, want batman", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "test-key" {
			t.Errorf("apikey = %q, want test-key", got)
		}
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("User-Agent = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(batmanSearchBody))
	})

	items, err := c.Search(context.Background(), "batman")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	want := domain.SearchResultItem{
		ID:        "tt0372784",
		Title:     "Batman Begins",
		Year:      "2005",
		PosterURL: "https://m.media-amazon.com/images/M/batman.jpg",
	}
	if items[0] != want {
		t.Errorf("item = %+v, want %+v", items[0], want)
	}
}

func TestSearchNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	})

	_, err := c.Search(context.Background(), "zzqxv")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSearchInvalidKey(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"401", http.StatusUnauthorized},
		{"200 with error payload", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
			})
			_, err := c.Search(context.Background(), "batman")
			if !errors.Is(err, domain.ErrInvalidAPIKey) {
				t.Errorf("err = %v, want ErrInvalidAPIKey", err)
			}
		})
	}
}

func TestSearchServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Search(context.Background(), "batman")
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("err = %v, want ErrCatalogUnavailable", err)
	}
}

func TestSearchMalformedBody(t *testing.T) {
	bodies := map[string]string{
		"not json":       `<html>oops</html>`,
		"missing flag":   `{"Search":[]}`,
		"missing list":   `{"Response":"True"}`,
		"missing imdbID": `{"Response":"True","Search":[{"Title":"Batman"}]}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})
			_, err := c.Search(context.Background(), "batman")
			if !errors.Is(err, domain.ErrMalformedResponse) {
				t.Errorf("err = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestSearchUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(url, "test-key", nil, WithRateLimit(0, 1))
	_, err := c.Search(context.Background(), "batman")
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("err = %v, want ErrCatalogUnavailable", err)
	}
}

func TestSearchCancelled(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.Search(ctx, "batman")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestGetDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("i") != "tt0372784" || q.Get("plot") != "full" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		w.Write([]byte(batmanTitleBody))
	})

	d, err := c.GetDetails(context.Background(), "tt0372784")
	if err != nil {
		t.Fatalf("GetDetails() error: %v", err)
	}
	if d.Title != "Batman Begins" || d.RuntimeMinutes != 140 || d.IMDbRating != 8.2 {
		t.Errorf("details = %+v", d)
	}
	if d.PosterURL != "" {
		t.Errorf("PosterURL = %q, want empty for N/A", d.PosterURL)
	}
	if d.Director != "Christopher Nolan" {
		t.Errorf("Director = %q", d.Director)
	}
}

func TestGetDetailsWrongID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(batmanTitleBody))
	})

	_, err := c.GetDetails(context.Background(), "tt0468569")
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Errorf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestGetDetailsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
	})

	_, err := c.GetDetails(context.Background(), "tt0000000")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
