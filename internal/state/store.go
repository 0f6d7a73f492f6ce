package state

import (
	"fmt"
	"sync"
	"time"

	"ladle/internal/mealie"
)

// Data is the result of one full poll against the Mealie server.
type Data struct {
	ServerVersion string
	Today         []mealie.Mealplan
	Recipes       []mealie.BaseRecipe
	Lists         []mealie.ShoppingList
	Items         map[string][]mealie.ShoppingItem // keyed by shopping list id
	Stats         *mealie.Statistics
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Data
	HasData             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(data *Data, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if data != nil {
		s.snapshot.Data = cloneData(*data)
		s.snapshot.HasData = true
	} else {
		s.snapshot.HasData = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Data = cloneData(s.snapshot.Data)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneData(data Data) Data {
	dup := data
	dup.Today = cloneSlice(data.Today)
	dup.Recipes = cloneSlice(data.Recipes)
	dup.Lists = cloneSlice(data.Lists)
	if data.Items != nil {
		dup.Items = make(map[string][]mealie.ShoppingItem, len(data.Items))
		for id, items := range data.Items {
			dup.Items[id] = cloneSlice(items)
		}
	}
	if data.Stats != nil {
		stats := *data.Stats
		dup.Stats = &stats
	}
	return dup
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
