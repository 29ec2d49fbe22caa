// Package watched holds the session's list of rated movies.
package watched

import (
	"fmt"
	"sync"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/stats"
)

// Summary holds aggregate statistics over the watched list
type Summary struct {
	Count         int
	AvgIMDbRating float64
	AvgUserRating float64
	AvgRuntime    float64 // minutes
}

// Store is an ordered, in-memory collection of watched entries keyed by catalog ID.
// Nothing is persisted; the list lives for the session only.
type Store struct {
	mu      sync.RWMutex
	entries []domain.WatchedEntry
}

// NewStore creates an empty watched list
func NewStore() *Store {
	return &Store{}
}

// Add appends an entry.
// Returns ErrInvalidRating for ratings outside 1-10 and ErrAlreadyWatched
// if an entry with the same ID exists; the list is unchanged on error.
func (s *Store) Add(entry domain.WatchedEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("watched entry has no id")
	}
	if !domain.ValidUserRating(entry.UserRating) {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidRating, entry.UserRating)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(entry.ID) >= 0 {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyWatched, entry.ID)
	}
	s.entries = append(s.entries, entry)
	return nil
}

// Delete removes the entry with the given ID.
// Returns false (and does nothing) if it is not in the list.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	// Build a new slice so snapshots handed out by Entries stay intact
	next := make([]domain.WatchedEntry, 0, len(s.entries)-1)
	next = append(next, s.entries[:idx]...)
	next = append(next, s.entries[idx+1:]...)
	s.entries = next
	return true
}

// Contains returns true if the ID is in the list
func (s *Store) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0
}

// RatingFor returns the user's rating for an ID, if watched
func (s *Store) RatingFor(id string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return 0, false
	}
	return s.entries[idx].UserRating, true
}

// Get returns the entry for an ID, if watched
func (s *Store) Get(id string) (domain.WatchedEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.WatchedEntry{}, false
	}
	return s.entries[idx], true
}

// Entries returns a copy of the list in insertion order
func (s *Store) Entries() []domain.WatchedEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.WatchedEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Summary computes the aggregates over the current list.
// Recomputed on every call; averages are 0 for an empty list.
func (s *Store) Summary() Summary {
	entries := s.Entries()
	return Summary{
		Count:         len(entries),
		AvgIMDbRating: stats.AverageBy(entries, func(e domain.WatchedEntry) float64 { return e.IMDbRating }),
		AvgUserRating: stats.AverageBy(entries, func(e domain.WatchedEntry) int { return e.UserRating }),
		AvgRuntime:    stats.AverageBy(entries, func(e domain.WatchedEntry) int { return e.RuntimeMinutes }),
	}
}

// indexOf must be called with mu held
func (s *Store) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
