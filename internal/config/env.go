package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAPI      = "KEEL_API"
	EnvNode     = "KEEL_NODE"
	EnvContext  = "KEEL_CONTEXT"
	EnvLogLevel = "KEEL_LOG_LEVEL"
)

// Selection picks the backend to talk to. Empty fields defer to the next
// source: flags, then environment, then the config file.
type Selection struct {
	Context string
	API     string
	Node    string
}

// LoadDotEnv reads .env style files into the process environment. Missing
// files are not an error and existing variables are never overwritten.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func FromEnv() Selection {
	return Selection{
		Context: strings.TrimSpace(os.Getenv(EnvContext)),
		API:     strings.TrimSpace(os.Getenv(EnvAPI)),
		Node:    strings.TrimSpace(os.Getenv(EnvNode)),
	}
}

func LogLevelFromEnv() string {
	return strings.TrimSpace(os.Getenv(EnvLogLevel))
}

// Merge fills empty fields of s from fallback.
func (s Selection) Merge(fallback Selection) Selection {
	if strings.TrimSpace(s.Context) == "" {
		s.Context = fallback.Context
	}
	if strings.TrimSpace(s.API) == "" {
		s.API = fallback.API
	}
	if strings.TrimSpace(s.Node) == "" {
		s.Node = fallback.Node
	}
	return s
}

// Resolve returns the context named by the selection, or the first
// configured one, with API and node overridden by the selection.
func (c Config) Resolve(sel Selection) (Context, error) {
	var picked Context
	name := strings.TrimSpace(sel.Context)
	switch {
	case name != "":
		found := false
		for _, ctx := range c.Contexts {
			if strings.EqualFold(ctx.Name, name) {
				picked, found = ctx, true
				break
			}
		}
		if !found {
			return Context{}, errors.New("unknown context: " + name)
		}
	case len(c.Contexts) > 0:
		picked = c.Contexts[0]
	}

	if api := strings.TrimSpace(sel.API); api != "" {
		picked.API = api
		if name == "" && picked.Name == "" {
			picked.Name = "env"
		}
	}
	if node := strings.TrimSpace(sel.Node); node != "" {
		picked.Node = node
	}
	if picked.API == "" {
		return Context{}, errors.New("no backend configured: add a context or set " + EnvAPI)
	}
	return picked, nil
}
