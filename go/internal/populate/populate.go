// Package populate resolves stored id references into the entities they
// point at. A reference whose target no longer exists resolves to nil.
package populate

import "github.com/google/uuid"

// Index maps each item's id to a pointer into items
func Index[T any](items []T, id func(*T) uuid.UUID) map[uuid.UUID]*T {
	index := make(map[uuid.UUID]*T, len(items))
	for i := range items {
		index[id(&items[i])] = &items[i]
	}
	return index
}

// Resolve returns one entry per id in the same order, nil where the id is unknown
func Resolve[T any](ids []uuid.UUID, index map[uuid.UUID]*T) []*T {
	resolved := make([]*T, len(ids))
	for i, id := range ids {
		resolved[i] = index[id]
	}
	return resolved
}

// Unique returns ids without duplicates, keeping first occurrence order
func Unique(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
