// Package search filters titles that are already on screen.
// Catalog queries go through the service package; nothing here touches the network.
package search

import (
	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// Match is a title that passed the filter
type Match struct {
	Index          int   // Index in the source slice
	MatchedIndexes []int // Byte offsets in the title that matched (for highlighting)
}

// FilterOrdered keeps the titles that contain the query's characters in order,
// ignoring case and diacritics. Matches keep the order of titles.
// An empty query returns nil.
func FilterOrdered(query string, titles []string) []Match {
	if query == "" {
		return nil
	}

	matches := make([]Match, 0, len(titles))
	for i, title := range titles {
		if fuzzysearch.MatchNormalizedFold(query, title) {
			matches = append(matches, Match{Index: i})
		}
	}
	return matches
}

// FilterRanked keeps the titles that fuzzily match the query, best match first,
// with the matched positions for highlighting. An empty query returns nil.
func FilterRanked(query string, titles []string) []Match {
	if query == "" {
		return nil
	}

	found := fuzzy.Find(query, titles)
	matches := make([]Match, len(found))
	for i, m := range found {
		matches[i] = Match{
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return matches
}

// Indexes returns the source index of each match
func Indexes(matches []Match) []int {
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	return idx
}
