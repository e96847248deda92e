package listview

import (
	"errors"
	"time"
)

// CloseDelay keeps a successful confirmation dialog on screen briefly after
// the action completed. The refresh is already issued when it starts.
const CloseDelay = 500 * time.Millisecond

var (
	ErrBusy         = errors.New("another action is in progress")
	ErrNotDeletable = errors.New("item cannot be deleted")
	ErrNoPending    = errors.New("no pending action")
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseConfirmingDelete
	PhaseDeleting
	PhaseConfirmingPrune
	PhasePruning
	// PhaseClosing means the action succeeded and the dialog is waiting for
	// CloseDelay before it goes away.
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseConfirmingDelete:
		return "confirming delete"
	case PhaseDeleting:
		return "deleting"
	case PhaseConfirmingPrune:
		return "confirming prune"
	case PhasePruning:
		return "pruning"
	case PhaseClosing:
		return "closing"
	default:
		return "idle"
	}
}

// Busy reports whether a request to the backend is in flight.
func (p Phase) Busy() bool {
	return p == PhaseDeleting || p == PhasePruning
}

// DialogOpen reports whether the confirmation dialog is visible.
func (p Phase) DialogOpen() bool {
	return p != PhaseIdle
}

// Controller holds the view state of one list screen. Destructive actions
// share a single phase, so a delete and a prune can never overlap.
type Controller[T any] struct {
	spec      Spec[T]
	deletable func(T) bool

	sort   Sort
	search string

	phase    Phase
	selected T
}

func NewController[T any](spec Spec[T], deletable func(T) bool) *Controller[T] {
	return &Controller[T]{
		spec:      spec,
		deletable: deletable,
		sort:      spec.DefaultSort,
	}
}

func (c *Controller[T]) Spec() Spec[T] {
	return c.spec
}

func (c *Controller[T]) Sort() Sort {
	return c.sort
}

// SetSort makes key active with order. Unknown keys are rejected.
func (c *Controller[T]) SetSort(key string, order Order) bool {
	if _, ok := c.spec.Column(key); !ok {
		return false
	}
	c.sort = Sort{Key: key, Order: order}
	return true
}

func (c *Controller[T]) ToggleSort(key string) bool {
	if _, ok := c.spec.Column(key); !ok {
		return false
	}
	c.sort = c.sort.Toggle(key)
	return true
}

func (c *Controller[T]) Search() string {
	return c.search
}

// SetSearch is a no-op for specs without a search accessor.
func (c *Controller[T]) SetSearch(term string) bool {
	if !c.spec.Searchable() {
		return false
	}
	c.search = term
	return true
}

func (c *Controller[T]) Query() Query {
	return Query{Search: c.search, Sort: c.sort}
}

func (c *Controller[T]) Visible(items []T) []T {
	return Derive(items, c.spec, c.Query())
}

func (c *Controller[T]) Phase() Phase {
	return c.phase
}

// Selected returns the entity snapshotted by RequestDelete.
func (c *Controller[T]) Selected() (T, bool) {
	switch c.phase {
	case PhaseConfirmingDelete, PhaseDeleting:
		return c.selected, true
	case PhaseClosing:
		return c.selected, c.hasSelection()
	default:
		var zero T
		return zero, false
	}
}

func (c *Controller[T]) CanDelete(item T) bool {
	return c.deletable != nil && c.deletable(item)
}

func (c *Controller[T]) RequestDelete(item T) error {
	if c.phase != PhaseIdle {
		return ErrBusy
	}
	if !c.CanDelete(item) {
		return ErrNotDeletable
	}
	c.selected = item
	c.phase = PhaseConfirmingDelete
	return nil
}

func (c *Controller[T]) ConfirmDelete() (T, error) {
	if c.phase != PhaseConfirmingDelete {
		var zero T
		return zero, ErrNoPending
	}
	c.phase = PhaseDeleting
	return c.selected, nil
}

func (c *Controller[T]) CancelDelete() {
	if c.phase == PhaseConfirmingDelete {
		c.reset()
	}
}

func (c *Controller[T]) RequestPrune() error {
	if c.phase != PhaseIdle {
		return ErrBusy
	}
	c.phase = PhaseConfirmingPrune
	return nil
}

func (c *Controller[T]) ConfirmPrune() error {
	if c.phase != PhaseConfirmingPrune {
		return ErrNoPending
	}
	c.phase = PhasePruning
	return nil
}

func (c *Controller[T]) CancelPrune() {
	if c.phase == PhaseConfirmingPrune {
		c.reset()
	}
}

// Finish ends an in-flight action. A successful one keeps the dialog open in
// PhaseClosing until Close is called; a failed one closes it right away.
func (c *Controller[T]) Finish(ok bool) {
	if !c.phase.Busy() {
		return
	}
	if ok {
		c.phase = PhaseClosing
		return
	}
	c.reset()
}

func (c *Controller[T]) Close() {
	if c.phase == PhaseClosing {
		c.reset()
	}
}

func (c *Controller[T]) reset() {
	var zero T
	c.selected = zero
	c.phase = PhaseIdle
}

func (c *Controller[T]) hasSelection() bool {
	if c.spec.Key == nil {
		return false
	}
	return c.spec.Key(c.selected) != ""
}
