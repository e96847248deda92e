package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/actions"
	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/listview"
	"github.com/scottbass3/keel/internal/resource"
)

type screenColumn struct {
	key   string
	title string
	width int
}

// screen is the type-erased view of one resource list so the model can hold
// all of them in a single map.
type screen interface {
	kind() resource.Kind
	columns() []screenColumn
	sortState() listview.Sort
	toggleSort(key string) bool
	setSort(key string, order listview.Order) bool
	cycleSort()
	searchable() bool
	searchPlaceholder() string
	search() string
	setSearch(term string)

	rows() [][]string
	keyAt(row int) (string, bool)
	routeAt(row int) (string, bool)
	loaded() bool
	noData() bool
	count() int
	load(client api.Client, node string, timeout time.Duration) tea.Cmd
	apply(msg collectionMsg) error

	phase() listview.Phase
	canDeleteAt(row int) bool
	requestDeleteAt(row int) error
	canPrune() bool
	requestPrune() error
	dialog() (title, message string)
	confirm(d *actions.Dispatcher, timeout time.Duration) (tea.Cmd, error)
	cancel()
	finish(ok bool)
	close()
}

type screenOf[T any] struct {
	desc  resource.Descriptor[T]
	ctrl  *listview.Controller[T]
	items []T
	total int
	ready bool
}

func newScreen[T any](desc resource.Descriptor[T]) *screenOf[T] {
	return &screenOf[T]{desc: desc, ctrl: desc.Controller()}
}

func newScreens() map[resource.Kind]screen {
	return map[resource.Kind]screen{
		resource.KindComposeLibrary: newScreen(resource.ComposeLibrary()),
		resource.KindImages:         newScreen(resource.Images()),
		resource.KindNetworks:       newScreen(resource.Networks()),
		resource.KindVolumes:        newScreen(resource.Volumes()),
	}
}

func (s *screenOf[T]) kind() resource.Kind {
	return s.desc.Kind
}

func (s *screenOf[T]) columns() []screenColumn {
	spec := s.ctrl.Spec()
	out := make([]screenColumn, 0, len(spec.Columns))
	for _, column := range spec.Columns {
		out = append(out, screenColumn{key: column.Key, title: column.Title, width: column.Width})
	}
	return out
}

func (s *screenOf[T]) sortState() listview.Sort {
	return s.ctrl.Sort()
}

func (s *screenOf[T]) toggleSort(key string) bool {
	return s.ctrl.ToggleSort(key)
}

func (s *screenOf[T]) setSort(key string, order listview.Order) bool {
	return s.ctrl.SetSort(key, order)
}

// cycleSort moves the active sort to the next column, ascending.
func (s *screenOf[T]) cycleSort() {
	keys := s.ctrl.Spec().Keys()
	if len(keys) == 0 {
		return
	}
	next := 0
	for i, key := range keys {
		if key == s.ctrl.Sort().Key {
			next = (i + 1) % len(keys)
			break
		}
	}
	s.ctrl.SetSort(keys[next], listview.Ascending)
}

func (s *screenOf[T]) searchable() bool {
	return s.ctrl.Spec().Searchable()
}

func (s *screenOf[T]) searchPlaceholder() string {
	return s.desc.SearchPlaceholder()
}

func (s *screenOf[T]) search() string {
	return s.ctrl.Search()
}

func (s *screenOf[T]) setSearch(term string) {
	s.ctrl.SetSearch(term)
}

func (s *screenOf[T]) visible() []T {
	return s.ctrl.Visible(s.items)
}

func (s *screenOf[T]) at(row int) (T, bool) {
	visible := s.visible()
	if row < 0 || row >= len(visible) {
		var zero T
		return zero, false
	}
	return visible[row], true
}

func (s *screenOf[T]) rows() [][]string {
	if s.noData() {
		return nil
	}
	visible := s.visible()
	spec := s.ctrl.Spec()
	out := make([][]string, 0, len(visible))
	for _, item := range visible {
		out = append(out, listview.Cells(spec, item))
	}
	return out
}

func (s *screenOf[T]) keyAt(row int) (string, bool) {
	item, ok := s.at(row)
	if !ok {
		return "", false
	}
	key := s.ctrl.Spec().Key(item)
	return key, key != ""
}

func (s *screenOf[T]) routeAt(row int) (string, bool) {
	if s.desc.Route == nil {
		return "", false
	}
	item, ok := s.at(row)
	if !ok {
		return "", false
	}
	return s.desc.Route(item)
}

func (s *screenOf[T]) loaded() bool {
	return s.ready
}

// noData reports the backend's "no data" sentinel, which wins over any rows.
func (s *screenOf[T]) noData() bool {
	return s.ready && s.total == -1
}

func (s *screenOf[T]) count() int {
	return len(s.items)
}

func (s *screenOf[T]) load(client api.Client, node string, timeout time.Duration) tea.Cmd {
	desc := s.desc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		collection, err := desc.Load(ctx, client, node)
		return collectionMsg{
			kind:  desc.Kind,
			node:  node,
			items: collection.Items,
			total: collection.TotalRows,
			err:   err,
		}
	}
}

func (s *screenOf[T]) apply(msg collectionMsg) error {
	if msg.err != nil {
		return msg.err
	}
	items, ok := msg.items.([]T)
	if !ok && msg.items != nil {
		return fmt.Errorf("unexpected %s payload %T", s.desc.Plural, msg.items)
	}
	s.items = items
	s.total = msg.total
	s.ready = true
	return nil
}

func (s *screenOf[T]) phase() listview.Phase {
	return s.ctrl.Phase()
}

func (s *screenOf[T]) canDeleteAt(row int) bool {
	item, ok := s.at(row)
	return ok && s.ctrl.CanDelete(item)
}

func (s *screenOf[T]) requestDeleteAt(row int) error {
	item, ok := s.at(row)
	if !ok {
		return listview.ErrNotDeletable
	}
	return s.ctrl.RequestDelete(item)
}

func (s *screenOf[T]) canPrune() bool {
	return s.desc.Prune != nil
}

func (s *screenOf[T]) requestPrune() error {
	if !s.canPrune() {
		return fmt.Errorf("%s cannot be pruned", s.desc.Plural)
	}
	return s.ctrl.RequestPrune()
}

func (s *screenOf[T]) dialog() (string, string) {
	if item, ok := s.ctrl.Selected(); ok {
		return s.desc.DeleteTitle(), s.desc.DeleteMessage(item)
	}
	return resource.PruneTitle, s.desc.PruneMessage()
}

func (s *screenOf[T]) confirm(d *actions.Dispatcher, timeout time.Duration) (tea.Cmd, error) {
	desc := s.desc
	switch s.ctrl.Phase() {
	case listview.PhaseConfirmingDelete:
		item, err := s.ctrl.ConfirmDelete()
		if err != nil {
			return nil, err
		}
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			return actionDoneMsg{kind: desc.Kind, outcome: actions.Remove(ctx, d, desc, item)}
		}, nil
	case listview.PhaseConfirmingPrune:
		if err := s.ctrl.ConfirmPrune(); err != nil {
			return nil, err
		}
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			return actionDoneMsg{kind: desc.Kind, outcome: actions.Prune(ctx, d, desc)}
		}, nil
	case listview.PhaseIdle:
		return nil, listview.ErrNoPending
	default:
		return nil, listview.ErrBusy
	}
}

func (s *screenOf[T]) cancel() {
	s.ctrl.CancelDelete()
	s.ctrl.CancelPrune()
}

func (s *screenOf[T]) finish(ok bool) {
	s.ctrl.Finish(ok)
}

func (s *screenOf[T]) close() {
	s.ctrl.Close()
}
