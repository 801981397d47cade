// Package fsdir implements the status repository on a local directory, one
// plain text file per job named exactly by the job name. This is the original
// spy storage format, so files written here can be read by any other spy
// compatible tooling.
package fsdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/slok/spy/internal/conventions"
	"github.com/slok/spy/internal/log"
	"github.com/slok/spy/internal/model"
	"github.com/slok/spy/internal/storage"
)

// RepositoryConfig is the configuration for the directory repository.
type RepositoryConfig struct {
	// BaseDir is the directory holding the status records. The repository owns
	// it exclusively: anything in it that is not a status record makes listing
	// fail.
	BaseDir string
	Logger  log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.BaseDir == "" {
		return fmt.Errorf("base directory is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.FSDir"})
	return nil
}

// Repository is a directory backed implementation of storage.Repository.
type Repository struct {
	baseDir string
	logger  log.Logger
}

var _ storage.Repository = &Repository{}

// NewRepository creates a new directory repository, creating the base
// directory if it is missing (an already existing directory is fine).
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create status directory: %w", err)
	}

	cfg.Logger.Debugf("Directory repository initialized at %s", cfg.BaseDir)

	return &Repository{baseDir: cfg.BaseDir, logger: cfg.Logger}, nil
}

// WriteStatus replaces the job's record with the received one.
//
// The replace is atomic: the record is written to a temporary file in the same
// directory and renamed over the final name, so a concurrent listing never
// observes a half written record.
func (r *Repository) WriteStatus(ctx context.Context, rec model.Record) error {
	name := rec.Name()
	if err := model.ValidateName(name); err != nil {
		return fmt.Errorf("invalid record name: %w", err)
	}

	tmpPath := filepath.Join(r.baseDir, conventions.TempFileName(ulid.Make().String()))
	if err := os.WriteFile(tmpPath, rec.Encode(), 0o644); err != nil {
		return fmt.Errorf("could not write status record: %w", err)
	}

	if err := os.Rename(tmpPath, filepath.Join(r.baseDir, name)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("could not replace status record: %w", err)
	}

	r.logger.Debugf("Wrote status record for job %s", name)

	return nil
}

// GetStatus returns the record of a single job.
func (r *Repository) GetStatus(ctx context.Context, name string) (*model.Record, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, fmt.Errorf("invalid job name: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(r.baseDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("job %s: %w", name, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not read status record: %w", err)
	}

	rec, err := model.DecodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", name, err)
	}

	return &rec, nil
}

// ListStatuses returns the records of every job in the directory.
//
// Enumeration order is whatever the filesystem returns, callers must not
// depend on it. The listing aborts on the first unreadable or malformed
// entry instead of silently dropping it.
func (r *Repository) ListStatuses(ctx context.Context) ([]model.Record, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, fmt.Errorf("could not list status directory: %w", err)
	}

	records := make([]model.Record, 0, len(entries))
	for _, entry := range entries {
		// In-flight temporary files belong to the repository, not to a job.
		if strings.HasPrefix(entry.Name(), conventions.TempFilePrefix) {
			continue
		}

		if entry.IsDir() {
			return nil, fmt.Errorf("entry %q is not a status record: %w", entry.Name(), model.ErrMalformedRecord)
		}

		data, err := os.ReadFile(filepath.Join(r.baseDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read status record %q: %w", entry.Name(), err)
		}

		rec, err := model.DecodeRecord(data)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", entry.Name(), err)
		}

		records = append(records, rec)
	}

	r.logger.Debugf("Listed %d status records", len(records))

	return records, nil
}
