// Package ingredient holds the in-memory ingredient list the picker edits.
// A List is an ordered set of trimmed, non-empty ingredient names: insertion
// order is preserved and membership is by exact string value.
package ingredient

import "strings"

// List is the accumulated ingredient selection. The zero value is not usable;
// create one with NewList.
type List struct {
	items []string
	index map[string]struct{}
}

// NewList creates a list seeded with the given initial ingredients. Initial
// entries go through the same trim/dedupe rules as interactive adds, so a
// caller can pass raw user-supplied strings.
func NewList(initial ...string) *List {
	l := &List{
		index: make(map[string]struct{}, len(initial)),
	}
	for _, raw := range initial {
		l.Add(raw)
	}
	return l
}

// Add trims raw and appends it to the list. Empty (after trimming) and
// duplicate values are ignored. It reports whether the ingredient was added,
// so the UI can decide whether to clear the input field.
func (l *List) Add(raw string) bool {
	name := strings.TrimSpace(raw)
	if name == "" {
		return false
	}
	if _, ok := l.index[name]; ok {
		return false
	}
	l.items = append(l.items, name)
	l.index[name] = struct{}{}
	return true
}

// Remove deletes the ingredient with the given name. Removing a name that is
// not in the list is a no-op.
func (l *List) Remove(name string) bool {
	if _, ok := l.index[name]; !ok {
		return false
	}
	delete(l.index, name)
	for i, item := range l.items {
		if item == name {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether name is in the list (exact match).
func (l *List) Has(name string) bool {
	_, ok := l.index[name]
	return ok
}

// Items returns a copy of the list in insertion order. Callers may hold on to
// the returned slice; later mutations of the list do not affect it.
func (l *List) Items() []string {
	items := make([]string, len(l.items))
	copy(items, l.items)
	return items
}

// Len returns the number of ingredients in the list.
func (l *List) Len() int {
	return len(l.items)
}
