package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrNotEditing is returned by SubmitEdit when no edit is in progress.
var ErrNotEditing = errors.New("no record is being edited")

// Form binds user input to a creation draft and to the Store's edit buffer,
// and drives create/update/delete through the repository. The Store is only
// mutated after the backend acknowledges a request; on failure the draft or
// edit buffer is kept so the user can amend and retry.
type Form[T Record] struct {
	store    *Store[T]
	newDraft func() T
	validate *validator.Validate
	now      func() time.Time

	mu    sync.Mutex
	draft T
}

// FormOption configures a Form.
type FormOption func(*formOptions)

type formOptions struct {
	validate *validator.Validate
	now      func() time.Time
}

// WithValidator overrides the shared validator.
func WithValidator(v *validator.Validate) FormOption {
	return func(o *formOptions) { o.validate = v }
}

// WithClock overrides the clock used to stamp timestamps.
func WithClock(now func() time.Time) FormOption {
	return func(o *formOptions) { o.now = now }
}

// NewForm creates a Form over the given Store. newDraft returns an empty
// draft with the resource's defaults; it is called again after every
// successful create.
func NewForm[T Record](store *Store[T], newDraft func() T, opts ...FormOption) *Form[T] {
	o := formOptions{
		validate: DefaultValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Form[T]{
		store:    store,
		newDraft: newDraft,
		validate: o.validate,
		now:      o.now,
		draft:    newDraft(),
	}
}

// Store returns the list state the form writes to.
func (f *Form[T]) Store() *Store[T] {
	return f.store
}

// --- Create path ---

// Draft returns a copy of the creation draft.
func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft applies fn to the creation draft.
func (f *Form[T]) SetDraft(fn func(*T)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.draft)
}

// ResetDraft discards the draft and starts over from the defaults.
func (f *Form[T]) ResetDraft() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = f.newDraft()
}

// Submit validates the draft, creates it on the backend and appends the
// returned record to the Store. The draft is reset only on success.
func (f *Form[T]) Submit(ctx context.Context) (T, error) {
	return f.SubmitWith(ctx, nil)
}

// SubmitWith applies fn to the draft and submits it. Applying and taking the
// copy that is sent happen under one lock, so concurrent submits never send
// each other's input. A nil fn submits the draft as it is.
func (f *Form[T]) SubmitWith(ctx context.Context, fn func(*T)) (T, error) {
	var zero T

	f.mu.Lock()
	if fn != nil {
		fn(&f.draft)
	}
	normalize(&f.draft)
	draft := f.draft
	f.mu.Unlock()

	if err := validateRecord(f.validate, draft); err != nil {
		return zero, err
	}

	if s, ok := any(&draft).(stamper); ok {
		s.StampCreated(f.now())
	}

	created, err := f.store.repo.Create(ctx, draft)
	if err != nil {
		f.store.reporter.Report(ctx, f.store.resource, OpCreate, err)
		return zero, err
	}

	f.store.ApplyCreated(created)
	f.ResetDraft()
	return created, nil
}

// --- Edit path ---

// BeginEdit starts editing the record with the given id. See Store.BeginEdit.
func (f *Form[T]) BeginEdit(id int) (T, bool) {
	return f.store.BeginEdit(id)
}

// CancelEdit discards the edit buffer without persisting it.
func (f *Form[T]) CancelEdit() {
	f.store.CancelEdit()
}

// SetEditBuffer applies fn to the edit buffer. Returns false when no edit is
// in progress.
func (f *Form[T]) SetEditBuffer(fn func(*T)) bool {
	return f.store.SetEditBuffer(fn)
}

// SubmitEdit validates the edit buffer, sends it as a full replacement and
// applies the backend's representation to the Store, ending the edit.
func (f *Form[T]) SubmitEdit(ctx context.Context) (T, error) {
	id, editing := f.store.EditingID()
	if !editing {
		var zero T
		return zero, ErrNotEditing
	}
	return f.SubmitEditWith(ctx, id, nil)
}

// SubmitEditWith applies fn to the edit buffer of record id and submits it.
// The buffer is changed and copied under the Store lock. Returns
// ErrNotEditing when id is not the record being edited.
func (f *Form[T]) SubmitEditWith(ctx context.Context, id int, fn func(*T)) (T, error) {
	var zero T

	buf, ok := f.store.snapshotEdit(id, func(rec *T) {
		if fn != nil {
			fn(rec)
		}
		normalize(rec)
	})
	if !ok {
		return zero, ErrNotEditing
	}

	if err := validateRecord(f.validate, buf); err != nil {
		return zero, err
	}

	if s, ok := any(&buf).(stamper); ok {
		s.StampUpdated(f.now())
	}

	updated, err := f.store.repo.Update(ctx, id, buf)
	if err != nil {
		f.store.reporter.Report(ctx, f.store.resource, OpUpdate, err)
		return zero, err
	}

	f.store.ApplyUpdated(updated)
	f.store.finishEdit(id)
	return updated, nil
}

// --- Delete path ---

// Delete removes the record on the backend and then from the Store. There is
// no confirmation step. Ids the Store no longer holds are a Store no-op.
func (f *Form[T]) Delete(ctx context.Context, id int) error {
	if err := f.store.repo.Delete(ctx, id); err != nil {
		f.store.reporter.Report(ctx, f.store.resource, OpDelete, err)
		return err
	}
	f.store.ApplyDeleted(id)
	return nil
}

// normalize runs the record's own input cleanup, if it has one.
func normalize[T any](rec *T) {
	if n, ok := any(rec).(normalizer); ok {
		n.Normalize()
	}
}
