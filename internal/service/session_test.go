package service

import (
	"testing"
	"time"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/selection"
	"github.com/mmcdole/popcorn/internal/watched"
)

func TestSnapshot(t *testing.T) {
	repo := newFakeCatalog()
	repo.search["batman"] = []domain.SearchResultItem{batmanBegins}
	search := newTestSearch(repo)
	details := NewDetailsController(repo, time.Second, nil)
	store := watched.NewStore()
	var sel selection.Machine

	search.Apply(search.OnQueryChange("batman").Do())
	details.OnSelectionChange(sel.Select("tt0372784"))
	if err := store.Add(domain.WatchedEntry{ID: "tt0468569", UserRating: 9}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	s := Snapshot(search, &sel, details, store)
	if s.Query != "batman" || len(s.SearchResults) != 1 {
		t.Errorf("search part = %q/%d", s.Query, len(s.SearchResults))
	}
	if s.SelectedID != "tt0372784" {
		t.Errorf("SelectedID = %q", s.SelectedID)
	}
	if !s.DetailsLoading {
		t.Error("DetailsLoading should be true while the fetch is pending")
	}
	if len(s.Watched) != 1 || s.SearchLoading || s.SearchError != "" {
		t.Errorf("unexpected snapshot %+v", s)
	}
}
