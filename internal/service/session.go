package service

import (
	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/selection"
	"github.com/mmcdole/popcorn/internal/watched"
)

// Session is a point-in-time view of everything the user is looking at
type Session struct {
	Query          string
	SearchResults  []domain.SearchResultItem
	SelectedID     string
	Watched        []domain.WatchedEntry
	SearchLoading  bool
	SearchError    string
	DetailsLoading bool
	DetailsError   string
}

// Snapshot collects the session state from its owners
func Snapshot(search *SearchController, sel *selection.Machine, details *DetailsController, store *watched.Store) Session {
	return Session{
		Query:          search.Query(),
		SearchResults:  search.Results(),
		SelectedID:     sel.ID(),
		Watched:        store.Entries(),
		SearchLoading:  search.Loading(),
		SearchError:    search.Err(),
		DetailsLoading: details.Loading(),
		DetailsError:   details.Err(),
	}
}
