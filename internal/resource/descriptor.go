package resource

import (
	"context"
	"fmt"
	"strings"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/listview"
)

const (
	NothingDeleted = "Nothing found to delete"
	PruneTitle     = "Delete Unused"
	PruneCaption   = "Delete Unused (Prune All)"
)

// Descriptor wires one resource type into the generic list view: its columns,
// where the collection comes from and which destructive actions it offers.
type Descriptor[T any] struct {
	Kind     Kind
	Singular string
	Plural   string
	Spec     listview.Spec[T]
	Load     func(ctx context.Context, client api.Client, nodeID string) (api.Collection[T], error)
	// Deletable decides whether the delete affordance is shown. The backend
	// still has the final word.
	Deletable func(T) bool
	Label     func(T) string
	Remove    *RemoveAction[T]
	Prune     *PruneAction
	// Route resolves the detail page of an entity, when there is one.
	Route func(T) (string, bool)
}

type RemoveAction[T any] struct {
	Resource api.Resource
	Request  func(T) api.RemoveRequest
	Success  string
}

type PruneAction struct {
	Resource api.Resource
	Summary  func(api.PruneReport) string
}

func (d Descriptor[T]) Controller() *listview.Controller[T] {
	return listview.NewController(d.Spec, d.deletable)
}

func (d Descriptor[T]) deletable(item T) bool {
	if d.Remove == nil || d.Deletable == nil {
		return false
	}
	return d.Deletable(item)
}

func (d Descriptor[T]) CanDelete(item T) bool {
	return d.deletable(item)
}

func (d Descriptor[T]) DeleteTitle() string {
	return "Delete " + titleCase(d.Singular)
}

func (d Descriptor[T]) DeleteMessage(item T) string {
	return fmt.Sprintf("Are you sure you want to delete %s '%s?'", d.Singular, d.Label(item))
}

func (d Descriptor[T]) PruneMessage() string {
	return fmt.Sprintf("Are you sure you want to delete all unused %s?", d.Plural)
}

func (d Descriptor[T]) SearchPlaceholder() string {
	return fmt.Sprintf("Search %s...", d.Plural)
}

// Find returns the entity whose row key matches key.
func (d Descriptor[T]) Find(items []T, key string) (T, bool) {
	key = strings.TrimSpace(key)
	for _, item := range items {
		if d.Spec.Key(item) == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func titleCase(value string) string {
	if value == "" {
		return ""
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
