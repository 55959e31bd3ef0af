// Package storage defines the store contract every entity collection
// satisfies, plus the typed errors stores return.
//
// Handlers depend only on the Store interface, never on a concrete
// backend. Swapping the in-memory implementation for a persistent one
// means implementing this interface and changing one line in main.go;
// tests pass a fresh store per test with no shared state.
package storage

import (
	"fmt"

	"github.com/google/uuid"
)

// Store is the contract for a single entity collection keyed by a
// server-generated identifier.
//
// Each record is either absent (no entry) or present (exactly one
// entry). Insert is the only absent→present transition, Update the only
// present→present one, and Delete the only present→absent one.
type Store[T any] interface {
	// Insert adds a record under id. Returns a *ConflictError if the id
	// is already present. Creates generate fresh random ids, so the
	// conflict path is defensive rather than expected.
	Insert(id uuid.UUID, record T) error

	// Get returns the record stored under id, or a *NotFoundError.
	Get(id uuid.UUID) (T, error)

	// List returns every record for which match returns true, in
	// insertion order. A nil match returns all records. The returned
	// slice is never nil.
	List(match func(T) bool) []T

	// Update replaces the record stored under id and returns it, or a
	// *NotFoundError if the id is absent.
	Update(id uuid.UUID, record T) (T, error)

	// Delete removes the record stored under id, or returns a
	// *NotFoundError if the id is absent.
	Delete(id uuid.UUID) error

	// Len reports the number of stored records.
	Len() int
}

// NotFoundError reports an operation that targeted an identifier absent
// from the store. Resource is the display name ("Student", "Course", …)
// so the message can name the missing resource type.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError reports an insert that collided with an existing
// identifier.
type ConflictError struct {
	Resource string
	ID       uuid.UUID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with id %s already exists", e.Resource, e.ID)
}
