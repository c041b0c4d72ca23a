// Package catalog implements the generic client-side entity management used
// by every dashboard section: an in-memory list state per resource (Store),
// a draft/edit-buffer form layer (Form) and foreign-key label resolution for
// lookup collections (ResolveLabel, Options).
//
// The package knows nothing about HTTP or HTML. It talks to the backend only
// through the Repository interface, which internal/backend implements.
package catalog

import (
	"context"
	"time"
)

// Operation names used when reporting failures.
const (
	OpList   = "list"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Record is a persisted catalog row. RecordID returns the backend-assigned
// id, or 0 for a draft that has not been created yet.
//
// Implementations must be plain value types: Store clones records by
// assignment when it fills the edit buffer.
type Record interface {
	RecordID() int
}

// Lookup is a record that other records reference by id and that has a
// human-readable label (genres, directors, producers, content types).
type Lookup interface {
	Record
	Label() string
}

// Repository is the backend contract for one resource. All methods may block
// on a network round-trip and do not retry.
type Repository[T Record] interface {
	// List returns every record of the resource.
	List(ctx context.Context) ([]T, error)

	// Create sends a draft and returns the backend's record, including its id.
	Create(ctx context.Context, draft T) (T, error)

	// Update replaces the record with the given id and returns the backend's
	// resulting representation.
	Update(ctx context.Context, id int, rec T) (T, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int) error
}

// Timestamps holds the creation and update times every resource carries.
// Embed it in record types; the client stamps both values before sending and
// the backend response is authoritative.
type Timestamps struct {
	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

// StampCreated sets both timestamps for a new draft.
func (t *Timestamps) StampCreated(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
}

// StampUpdated refreshes the update timestamp.
func (t *Timestamps) StampUpdated(now time.Time) {
	t.UpdatedAt = now
}

// stamper is satisfied by pointers to records embedding Timestamps.
type stamper interface {
	StampCreated(now time.Time)
	StampUpdated(now time.Time)
}

// normalizer is satisfied by records that clean up user input before
// validation (trimming, stripping markup).
type normalizer interface {
	Normalize()
}
