package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/slok/spy/internal/log"
	"github.com/slok/spy/internal/model"
	"github.com/slok/spy/internal/storage"
	"github.com/slok/spy/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.Repository.
//
// Each job maps to a single row keyed by name whose content column is the
// exact encoded record text, so the stored unit is byte compatible with the
// directory backend.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

var _ storage.Repository = &Repository{}

// NewRepository creates a new SQLite repository.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite repository initialized at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// WriteStatus replaces the job's record with the received one. The upsert is a
// single statement, so the replace is atomic at the database level.
func (r *Repository) WriteStatus(ctx context.Context, rec model.Record) error {
	name := rec.Name()
	if err := model.ValidateName(name); err != nil {
		return fmt.Errorf("invalid record name: %w", err)
	}

	query := `
		INSERT INTO statuses (name, content)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET content = excluded.content
	`

	_, err := r.db.ExecContext(ctx, query, name, string(rec.Encode()))
	if err != nil {
		return fmt.Errorf("could not write status record: %w", err)
	}

	r.logger.Debugf("Wrote status record for job %s", name)

	return nil
}

// GetStatus returns the record of a single job.
func (r *Repository) GetStatus(ctx context.Context, name string) (*model.Record, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, fmt.Errorf("invalid job name: %w", err)
	}

	var content string
	err := r.db.QueryRowContext(ctx, `SELECT content FROM statuses WHERE name = ?`, name).Scan(&content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job %s: %w", name, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query status record: %w", err)
	}

	rec, err := model.DecodeRecord([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", name, err)
	}

	return &rec, nil
}

// ListStatuses returns the records of every job. The listing aborts on the
// first record that can't be parsed.
func (r *Repository) ListStatuses(ctx context.Context) ([]model.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, content FROM statuses`)
	if err != nil {
		return nil, fmt.Errorf("could not query status records: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var name, content string
		if err := rows.Scan(&name, &content); err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}

		rec, err := model.DecodeRecord([]byte(content))
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", name, err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}
