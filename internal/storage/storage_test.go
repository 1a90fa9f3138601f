package storage

import (
	"errors"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := record{Name: "Pollo", Count: 3}
	if err := store.Set("search:1", want); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got record
	if err := store.Get("search:1", &got); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := openTestStore(t)

	var got record
	err := store.Get("search:missing", &got)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListFiltersByPrefix(t *testing.T) {
	store := openTestStore(t)

	for _, key := range []string{"search:1", "search:2", "other:1"} {
		if err := store.Set(key, record{}); err != nil {
			t.Fatalf("set %s failed: %v", key, err)
		}
	}

	keys, err := store.List("search:")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("expected 2 keys, got %v", keys)
	}
	for _, key := range keys {
		if key != "search:1" && key != "search:2" {
			t.Errorf("unexpected key %q", key)
		}
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("search:1", record{}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Delete("search:1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var got record
	if err := store.Get("search:1", &got); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
