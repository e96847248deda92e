package contextstore

import (
	"strings"

	"github.com/scottbass3/keel/internal/config"
)

// Context is one backend endpoint the client can talk to.
type Context struct {
	Name string
	API  string
	Node string
}

// Store persists contexts in the keel config file, leaving the other
// settings in that file untouched.
type Store struct {
	path string
}

func DefaultPath() string {
	return config.DefaultPath()
}

func New(path string) Store {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = config.DefaultPath()
	}
	return Store{path: trimmed}
}

func (s Store) Path() string {
	return s.path
}

func (s Store) Ensure() ([]Context, error) {
	cfg, err := config.Ensure(s.path)
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg.Contexts), nil
}

func (s Store) Save(contexts []Context) error {
	cfg, err := config.Ensure(s.path)
	if err != nil {
		return err
	}
	cfg.Contexts = make([]config.Context, 0, len(contexts))
	for _, ctx := range contexts {
		cfg.Contexts = append(cfg.Contexts, ctx.toConfig())
	}
	return config.Save(s.path, cfg)
}

func FromConfig(configContexts []config.Context) []Context {
	if len(configContexts) == 0 {
		return nil
	}
	out := make([]Context, 0, len(configContexts))
	for _, ctx := range configContexts {
		out = append(out, Context{
			Name: strings.TrimSpace(ctx.Name),
			API:  strings.TrimSpace(ctx.API),
			Node: strings.TrimSpace(ctx.Node),
		})
	}
	return out
}

func (c Context) toConfig() config.Context {
	return config.Context{
		Name: strings.TrimSpace(c.Name),
		API:  strings.TrimSpace(c.API),
		Node: strings.TrimSpace(c.Node),
	}
}
