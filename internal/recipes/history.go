package recipes

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/IPatronD/Recipefinderplatform/internal/storage"
)

const searchKeyPrefix = "search:"

// Search is one completed recipe search: what the user submitted and what
// came back. The in-progress ingredient list is never persisted; only
// finished searches end up here.
type Search struct {
	ID          string    `json:"id"`
	Ingredients []string  `json:"ingredients"`
	Answer      string    `json:"answer"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaveSearch stores a completed search in the history database.
func SaveSearch(store *storage.Store, ingredients []string, answer string) (*Search, error) {
	rec := &Search{
		ID:          uuid.New().String(),
		Ingredients: ingredients,
		Answer:      answer,
		CreatedAt:   time.Now(),
	}

	// Zero-padded nanosecond key so List returns records in time order.
	key := fmt.Sprintf("%s%020d", searchKeyPrefix, rec.CreatedAt.UnixNano())
	if err := store.Set(key, rec); err != nil {
		return nil, fmt.Errorf("failed to save search: %w", err)
	}

	return rec, nil
}

// ListSearches returns the stored search history, newest first.
func ListSearches(store *storage.Store) ([]Search, error) {
	keys, err := store.List(searchKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list searches: %w", err)
	}

	searches := make([]Search, 0, len(keys))
	for _, key := range keys {
		var rec Search
		if err := store.Get(key, &rec); err != nil {
			continue
		}
		searches = append(searches, rec)
	}

	sort.Slice(searches, func(i, j int) bool {
		return searches[i].CreatedAt.After(searches[j].CreatedAt)
	})

	return searches, nil
}
