package catalog

import (
	"context"
	"sync"
)

// Store is the list state for one resource: the in-memory collection in
// load/creation order plus the single "currently editing" slot and its edit
// buffer. It is the authoritative client-side copy of the collection.
//
// Invariants:
//   - the collection never holds two records with the same id;
//   - when an edit is in progress, its id is present in the collection.
//
// Store is safe for concurrent use. No lock is held across a repository call,
// so a failed request never leaves a partial mutation behind.
type Store[T Record] struct {
	resource string
	repo     Repository[T]
	reporter Reporter

	mu        sync.RWMutex
	items     []T
	loaded    bool
	editing   bool
	editingID int
	buffer    T
}

// NewStore creates an empty Store for the named resource. A nil reporter
// discards failure reports.
func NewStore[T Record](resource string, repo Repository[T], reporter Reporter) *Store[T] {
	if reporter == nil {
		reporter = discard
	}
	return &Store[T]{
		resource: resource,
		repo:     repo,
		reporter: reporter,
	}
}

// Resource returns the resource name the store was created for.
func (s *Store[T]) Resource() string {
	return s.resource
}

// Load replaces the collection with the repository's list. On failure the
// previous collection is kept as-is, the failure is reported and returned.
func (s *Store[T]) Load(ctx context.Context) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.reporter.Report(ctx, s.resource, OpList, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = dedupe(items)
	s.loaded = true

	// A reload can drop the record being edited (deleted elsewhere).
	if s.editing && s.indexOf(s.editingID) < 0 {
		s.clearEdit()
	}
	return nil
}

// ApplyCreated appends a newly created record. A record whose id is already
// present replaces the existing element instead.
func (s *Store[T]) ApplyCreated(rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(rec.RecordID()); i >= 0 {
		s.items[i] = rec
		return
	}
	s.items = append(s.items, rec)
}

// ApplyUpdated replaces the element with the same id. Unknown ids leave the
// collection unchanged.
func (s *Store[T]) ApplyUpdated(rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(rec.RecordID()); i >= 0 {
		s.items[i] = rec
	}
}

// ApplyDeleted removes the element with the given id and ends any edit of it.
// Unknown ids are a no-op.
func (s *Store[T]) ApplyDeleted(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing && s.editingID == id {
		s.clearEdit()
	}

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
}

// BeginEdit puts the record with the given id in edit mode and fills the edit
// buffer with a copy of it. Any edit already in progress is discarded without
// being persisted. Returns false, leaving state untouched, when the id is not
// in the collection.
func (s *Store[T]) BeginEdit(id int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}

	s.editing = true
	s.editingID = id
	s.buffer = s.items[i]
	return s.buffer, true
}

// CancelEdit leaves edit mode and discards the edit buffer.
func (s *Store[T]) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearEdit()
}

// EditingID returns the id of the record being edited, if any.
func (s *Store[T]) EditingID() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editingID, s.editing
}

// EditBuffer returns the id and working copy of the record being edited.
func (s *Store[T]) EditBuffer() (int, T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editingID, s.buffer, s.editing
}

// SetEditBuffer applies fn to the edit buffer. Returns false when no edit is
// in progress.
func (s *Store[T]) SetEditBuffer(fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editing {
		return false
	}
	fn(&s.buffer)
	return true
}

// snapshotEdit applies fn to the edit buffer of id and returns a copy of the
// result. Returns false when id is not the record being edited.
func (s *Store[T]) snapshotEdit(id int, fn func(*T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editing || s.editingID != id {
		var zero T
		return zero, false
	}
	fn(&s.buffer)
	return s.buffer, true
}

// Items returns a copy of the collection.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of records in the collection.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Loaded reports whether at least one Load has succeeded.
func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// finishEdit ends the edit of id once its update has been applied. An edit
// of another record begun in the meantime is left alone.
func (s *Store[T]) finishEdit(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing && s.editingID == id {
		s.clearEdit()
	}
}

// clearEdit resets the editing slot. Callers hold s.mu.
func (s *Store[T]) clearEdit() {
	var zero T
	s.editing = false
	s.editingID = 0
	s.buffer = zero
}

// indexOf returns the position of id in the collection, or -1. Callers hold s.mu.
func (s *Store[T]) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].RecordID() == id {
			return i
		}
	}
	return -1
}

// dedupe keeps the first position of every id and the last value seen for it.
func dedupe[T Record](items []T) []T {
	out := make([]T, 0, len(items))
	pos := make(map[int]int, len(items))
	for _, item := range items {
		if i, ok := pos[item.RecordID()]; ok {
			out[i] = item
			continue
		}
		pos[item.RecordID()] = len(out)
		out = append(out, item)
	}
	return out
}
