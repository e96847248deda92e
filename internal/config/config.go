package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const appName = "keel"

type Config struct {
	Contexts []Context     `yaml:"contexts"`
	Log      Log           `yaml:"log,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

type Context struct {
	Name string `yaml:"name"`
	API  string `yaml:"api"`
	Node string `yaml:"node,omitempty"`
}

type Log struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", appName, "config.yaml")
	}
	return "config.yaml"
}

// DefaultLogPath is where the TUI writes its log when nothing else is set.
func DefaultLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, appName+".log")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "state", appName, appName+".log")
	}
	return appName + ".log"
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config YAML: %w", err)
	}

	for i := range cfg.Contexts {
		cfg.Contexts[i].Name = strings.TrimSpace(cfg.Contexts[i].Name)
		cfg.Contexts[i].API = strings.TrimSpace(cfg.Contexts[i].API)
		cfg.Contexts[i].Node = strings.TrimSpace(cfg.Contexts[i].Node)
		if cfg.Contexts[i].API == "" {
			return Config{}, fmt.Errorf("context %d missing api", i+1)
		}
	}
	cfg.Log.Level = strings.TrimSpace(cfg.Log.Level)
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("timeout must not be negative")
	}
	return cfg, nil
}

// Ensure loads the config at path, creating an empty one first if needed.
func Ensure(path string) (Config, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return Load(path)
	case errors.Is(err, fs.ErrNotExist):
		if err := Save(path, Config{}); err != nil {
			return Config{}, err
		}
		return Config{}, nil
	default:
		return Config{}, err
	}
}

func Save(path string, cfg Config) error {
	if cfg.Contexts == nil {
		cfg.Contexts = []Context{}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// UnmarshalYAML accepts either the full document or a bare list of contexts.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) > 0 {
		value = value.Content[0]
	}
	switch value.Kind {
	case yaml.SequenceNode:
		var contexts []Context
		if err := value.Decode(&contexts); err != nil {
			return err
		}
		c.Contexts = contexts
		return nil
	case yaml.MappingNode:
		type plain Config
		var out plain
		if err := value.Decode(&out); err != nil {
			return err
		}
		*c = Config(out)
		return nil
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			return nil
		}
	}
	return fmt.Errorf("expected a mapping or a list of contexts at root")
}
