// Package memory provides the in-memory implementation of
// storage.Store: a mutex-guarded map plus an explicit insertion-order
// key slice. Lifetime equals process lifetime; there is no persistence,
// eviction, or background work.
//
// Insertion order matters because List order is part of the API
// contract and Go map iteration order is randomized. The order slice is
// the authoritative sequence; the map is the index.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/zhelinfan/HW1-CloudComputing/internal/storage"
)

// Store is an insertion-ordered in-memory collection keyed by UUID.
// The mutex gives single-operation atomicity only; a read-modify-write
// pair (e.g. get, merge, update) is not atomic across calls.
type Store[T any] struct {
	mu       sync.RWMutex
	resource string
	items    map[uuid.UUID]T
	order    []uuid.UUID
}

// New returns an empty store. resource is the display name used in
// error messages ("Student", "Course", …).
func New[T any](resource string) *Store[T] {
	return &Store[T]{
		resource: resource,
		items:    make(map[uuid.UUID]T),
	}
}

// Insert adds a record under id, failing with a ConflictError if the id
// is already present.
func (s *Store[T]) Insert(id uuid.UUID, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return &storage.ConflictError{Resource: s.resource, ID: id}
	}

	s.items[id] = record
	s.order = append(s.order, id)
	return nil
}

// Get returns the record stored under id.
func (s *Store[T]) Get(id uuid.UUID) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.items[id]
	if !ok {
		var zero T
		return zero, &storage.NotFoundError{Resource: s.resource, ID: id}
	}
	return record, nil
}

// List returns matching records in insertion order. A nil match returns
// everything. The result is always non-nil so it encodes as [] rather
// than null.
func (s *Store[T]) List(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]T, 0, len(s.order))
	for _, id := range s.order {
		record := s.items[id]
		if match == nil || match(record) {
			records = append(records, record)
		}
	}
	return records
}

// Update replaces the record stored under id. The id keeps its original
// position in the listing order.
func (s *Store[T]) Update(id uuid.UUID, record T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		var zero T
		return zero, &storage.NotFoundError{Resource: s.resource, ID: id}
	}

	s.items[id] = record
	return record, nil
}

// Delete removes the record stored under id.
func (s *Store[T]) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return &storage.NotFoundError{Resource: s.resource, ID: id}
	}

	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
