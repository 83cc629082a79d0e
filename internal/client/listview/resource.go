package listview

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// State is the load state of a Resource.
type State int

const (
	Loading State = iota
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Form is the create/edit form state, orthogonal to State. EditingID is
// empty while creating.
type Form struct {
	Open      bool
	EditingID string
}

// ErrNoDeleter is returned by Delete on a resource built without a deleter.
var ErrNoDeleter = errors.New("resource does not support delete")

type (
	Loader[T any] func(ctx context.Context) ([]T, error)
	Deleter       func(ctx context.Context, id string) error
	// Confirmer asks the user before a destructive action.
	Confirmer func(prompt string) bool
)

// Resource holds one entity list. It is safe for concurrent use.
type Resource[T any] struct {
	name    string
	load    Loader[T]
	compare func(a, b T) int
	remove  Deleter
	id      func(T) string
	confirm Confirmer

	mu    sync.RWMutex
	state State
	err   error
	items []T
	form  Form
}

// Builder assembles a Resource. Only the loader is required.
type Builder[T any] struct {
	name    string
	load    Loader[T]
	compare func(a, b T) int
	remove  Deleter
	id      func(T) string
	confirm Confirmer
}

func NewBuilder[T any](name string, load Loader[T]) *Builder[T] {
	return &Builder[T]{name: name, load: load}
}

// SortBy sets the order of the base list. Sorting is stable.
func (b *Builder[T]) SortBy(compare func(a, b T) int) *Builder[T] {
	b.compare = compare
	return b
}

func (b *Builder[T]) DeleteWith(id func(T) string, remove Deleter) *Builder[T] {
	b.id = id
	b.remove = remove
	return b
}

func (b *Builder[T]) ConfirmWith(c Confirmer) *Builder[T] {
	b.confirm = c
	return b
}

func (b *Builder[T]) Build() (*Resource[T], error) {
	if b.load == nil {
		return nil, fmt.Errorf("listview %s: loader is required", b.name)
	}
	return &Resource[T]{
		name:    b.name,
		load:    b.load,
		compare: b.compare,
		remove:  b.remove,
		id:      b.id,
		confirm: b.confirm,
		items:   []T{},
	}, nil
}

func (r *Resource[T]) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Err is the last load error, set only in the Failed state.
func (r *Resource[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

// Items returns a copy of the sorted base list.
func (r *Resource[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items)
}

// Load fetches and sorts the base list. On failure the previous items stay.
func (r *Resource[T]) Load(ctx context.Context) error {
	r.mu.Lock()
	r.state = Loading
	r.mu.Unlock()

	items, err := r.load(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.state, r.err = Failed, err
		return err
	}
	if items == nil {
		items = []T{}
	}
	if r.compare != nil {
		slices.SortStableFunc(items, r.compare)
	}
	r.state, r.err, r.items = Loaded, nil, items
	return nil
}

// View derives the filtered list from the current base list.
func (r *Resource[T]) View(criteria ...Criterion[T]) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Apply(r.items, criteria...)
}

// Delete asks for confirmation, deletes, then reloads. It reports whether
// the delete was carried out. A declined confirmation makes no calls.
func (r *Resource[T]) Delete(ctx context.Context, id string) (bool, error) {
	if r.remove == nil {
		return false, ErrNoDeleter
	}
	if r.confirm != nil && !r.confirm(fmt.Sprintf("Delete %s %s?", r.name, id)) {
		return false, nil
	}
	if err := r.remove(ctx, id); err != nil {
		return false, err
	}
	return true, r.Load(ctx)
}

// Find returns the loaded item with the given id.
func (r *Resource[T]) Find(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var zero T
	if r.id == nil {
		return zero, false
	}
	for _, item := range r.items {
		if r.id(item) == id {
			return item, true
		}
	}
	return zero, false
}

func (r *Resource[T]) Form() Form {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.form
}

// OpenForm opens the form for a new item (id == "") or for editing id.
func (r *Resource[T]) OpenForm(id string) {
	r.mu.Lock()
	r.form = Form{Open: true, EditingID: id}
	r.mu.Unlock()
}

func (r *Resource[T]) CloseForm() {
	r.mu.Lock()
	r.form = Form{}
	r.mu.Unlock()
}

// Submit runs save and, when it succeeds, closes the form and reloads.
// A failed save leaves the form open.
func (r *Resource[T]) Submit(ctx context.Context, save func(ctx context.Context, editingID string) error) error {
	form := r.Form()
	if !form.Open {
		return errors.New("form is not open")
	}
	if err := save(ctx, form.EditingID); err != nil {
		return err
	}
	r.CloseForm()
	return r.Load(ctx)
}
