package contextstore

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/scottbass3/keel/internal/api"
)

var (
	ErrNotFound  = errors.New("unknown context")
	ErrDuplicate = errors.New("context already exists")
	ErrInvalid   = errors.New("invalid context")
)

// Service validates context edits before they reach the Store. The slice
// passed in is never modified; every call returns a fresh copy.
type Service struct {
	store Store
}

func NewService(path string) Service {
	return Service{store: New(path)}
}

func (s Service) Path() string {
	return s.store.Path()
}

func (s Service) Load() ([]Context, error) {
	return s.store.Ensure()
}

func (s Service) Save(contexts []Context) error {
	return s.store.Save(contexts)
}

// Add appends candidate and returns the new list with its index.
func (s Service) Add(existing []Context, candidate Context) ([]Context, int, error) {
	ctx, err := validate(existing, candidate, -1)
	if err != nil {
		return nil, -1, err
	}
	return append(slices.Clone(existing), ctx), len(existing), nil
}

func (s Service) Edit(existing []Context, index int, candidate Context) ([]Context, error) {
	if index < 0 || index >= len(existing) {
		return nil, fmt.Errorf("%w: no context at position %d", ErrInvalid, index)
	}
	ctx, err := validate(existing, candidate, index)
	if err != nil {
		return nil, err
	}
	updated := slices.Clone(existing)
	updated[index] = ctx
	return updated, nil
}

func (s Service) RemoveByName(existing []Context, name string) ([]Context, Context, int, error) {
	index, ok := ResolveByName(existing, name)
	if !ok {
		return nil, Context{}, -1, fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSpace(name))
	}
	return slices.Delete(slices.Clone(existing), index, index+1), existing[index], index, nil
}

// ResolveByName matches a context by name first and by API URL second.
func ResolveByName(contexts []Context, name string) (int, bool) {
	needle := strings.TrimSpace(name)
	if needle == "" {
		return 0, false
	}
	byName := func(ctx Context) bool { return strings.EqualFold(strings.TrimSpace(ctx.Name), needle) }
	byAPI := func(ctx Context) bool { return strings.EqualFold(strings.TrimSpace(ctx.API), needle) }
	for _, match := range []func(Context) bool{byName, byAPI} {
		if index := slices.IndexFunc(contexts, match); index >= 0 {
			return index, true
		}
	}
	return 0, false
}

// validate normalizes candidate and checks its name against every context
// except the one at skip.
func validate(existing []Context, candidate Context, skip int) (Context, error) {
	ctx := Context{
		Name: strings.TrimSpace(candidate.Name),
		API:  strings.TrimSpace(candidate.API),
		Node: strings.TrimSpace(candidate.Node),
	}
	switch {
	case ctx.Name == "":
		return Context{}, fmt.Errorf("%w: name is required", ErrInvalid)
	case ctx.API == "":
		return Context{}, fmt.Errorf("%w: api url is required", ErrInvalid)
	}
	base, err := api.ParseBaseURL(ctx.API)
	if err != nil {
		return Context{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	ctx.API = base.String()

	for i, other := range existing {
		if i != skip && strings.EqualFold(strings.TrimSpace(other.Name), ctx.Name) {
			return Context{}, fmt.Errorf("%w: %q", ErrDuplicate, ctx.Name)
		}
	}
	return ctx, nil
}
