// Package config loads the optional spy configuration file. Everything in it
// can also be set with CLI flags or environment variables, which take
// precedence.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in the configuration file.
const (
	BackendDir    = "dir"
	BackendSQLite = "sqlite"
)

// Config is the loaded file configuration.
type Config struct {
	// Base is the status store directory (dir backend).
	Base string
	// Backend selects the storage backend (dir or sqlite). Empty means the
	// caller's default.
	Backend string
	// DBPath is the SQLite database path (sqlite backend).
	DBPath string
}

// YAMLRepository loads spy configuration from YAML files.
type YAMLRepository struct {
	fs fs.FS
}

// NewYAMLRepository creates a new YAML config repository.
func NewYAMLRepository(filesystem fs.FS) *YAMLRepository {
	return &YAMLRepository{fs: filesystem}
}

// GetConfig loads the configuration from a YAML file.
//
// A missing file is not an error, it returns an empty config: the file is
// optional and flags/env cover everything in it.
func (r *YAMLRepository) GetConfig(ctx context.Context, path string) (Config, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return Config{}, ctx.Err()
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg.toModel(), nil
}

// fileConfig represents the YAML structure of the configuration file.
type fileConfig struct {
	Base    string `yaml:"base"`
	Backend string `yaml:"backend"`
	DBPath  string `yaml:"db_path"`
}

func (c fileConfig) validate() error {
	switch c.Backend {
	case "", BackendDir, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (must be %s or %s)", c.Backend, BackendDir, BackendSQLite)
	}

	return nil
}

func (c fileConfig) toModel() Config {
	return Config{
		Base:    c.Base,
		Backend: c.Backend,
		DBPath:  c.DBPath,
	}
}
