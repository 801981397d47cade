package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/spy/internal/log"
	"github.com/slok/spy/internal/model"
	"github.com/slok/spy/internal/storage"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.Repository. Records are
// kept as their encoded form so it behaves exactly like the durable backends,
// including parse failures on listing.
type Repository struct {
	statuses map[string][]byte
	mu       sync.RWMutex
	logger   log.Logger
}

var _ storage.Repository = &Repository{}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		statuses: map[string][]byte{},
		logger:   cfg.Logger,
	}, nil
}

// WriteStatus replaces the job's record with the received one.
func (r *Repository) WriteStatus(ctx context.Context, rec model.Record) error {
	name := rec.Name()
	if err := model.ValidateName(name); err != nil {
		return fmt.Errorf("invalid record name: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.statuses[name] = rec.Encode()
	r.logger.Debugf("Wrote status record for job %s", name)

	return nil
}

// GetStatus returns the record of a single job.
func (r *Repository) GetStatus(ctx context.Context, name string) (*model.Record, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, fmt.Errorf("invalid job name: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.statuses[name]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", name, model.ErrNotFound)
	}

	rec, err := model.DecodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", name, err)
	}

	return &rec, nil
}

// ListStatuses returns the records of every job.
func (r *Repository) ListStatuses(ctx context.Context) ([]model.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]model.Record, 0, len(r.statuses))
	for name, data := range r.statuses {
		rec, err := model.DecodeRecord(data)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", name, err)
		}
		records = append(records, rec)
	}

	return records, nil
}
