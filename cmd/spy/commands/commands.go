package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/slok/spy/internal/config"
	"github.com/slok/spy/internal/conventions"
	"github.com/slok/spy/internal/log"
	"github.com/slok/spy/internal/storage"
	"github.com/slok/spy/internal/storage/fsdir"
	"github.com/slok/spy/internal/storage/sqlite"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	Base       string
	Backend    string
	DBPath     string
	ConfigPath string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	// Store location and backend selection. `app.DefaultEnvars()` makes these
	// also settable through SPY_BASE, SPY_BACKEND and SPY_DB_PATH.
	app.Flag("base", "Directory holding the status records (dir backend).").StringVar(&c.Base)
	app.Flag("backend", "Storage backend (dir, sqlite).").StringVar(&c.Backend)
	app.Flag("db-path", "Path to the SQLite database file (sqlite backend).").StringVar(&c.DBPath)

	defaultConfigPath := filepath.Join(homedir.HomeDir(), conventions.DefaultDataDir, "config.yaml")
	app.Flag("config", "Path to the optional spy config file.").Default(defaultConfigPath).StringVar(&c.ConfigPath)

	return c
}

// NewRepository resolves the storage configuration (flags/env first, then the
// optional config file) and initializes the selected storage backend. For the
// dir backend a missing store location is a fatal configuration error.
func (c *RootCommand) NewRepository(ctx context.Context) (storage.Repository, error) {
	fileCfg, err := loadFileConfig(ctx, c.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("could not load config file: %w", err)
	}

	backend := firstNonEmpty(c.Backend, fileCfg.Backend, config.BackendDir)

	switch backend {
	case config.BackendDir:
		base := firstNonEmpty(c.Base, fileCfg.Base)
		if base == "" {
			return nil, fmt.Errorf("status store location is not configured: set --base, SPY_BASE or `base` in %s", c.ConfigPath)
		}

		return fsdir.NewRepository(fsdir.RepositoryConfig{
			BaseDir: base,
			Logger:  c.Logger,
		})

	case config.BackendSQLite:
		dbPath := firstNonEmpty(c.DBPath, fileCfg.DBPath,
			filepath.Join(homedir.HomeDir(), conventions.DefaultDataDir, conventions.DBFile))

		return sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
			DBPath: dbPath,
			Logger: c.Logger,
		})

	default:
		return nil, fmt.Errorf("unknown storage backend: %s (must be: %s, %s)", backend, config.BackendDir, config.BackendSQLite)
	}
}

func loadFileConfig(ctx context.Context, path string) (config.Config, error) {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	repo := config.NewYAMLRepository(os.DirFS(dir))
	return repo.GetConfig(ctx, file)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
