package list

import (
	"context"
	"fmt"
	"sort"

	"github.com/slok/spy/internal/log"
	"github.com/slok/spy/internal/model"
	"github.com/slok/spy/internal/storage"
)

// ServiceConfig is the configuration for the list service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service lists the current status records of all jobs.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	// SortByName sorts records by job name for stable display output. The
	// store itself guarantees no ordering.
	SortByName bool
}

// Run returns a fresh snapshot of every job's status record.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Record, error) {
	records, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list status records: %w", err)
	}

	if req.SortByName {
		sort.Slice(records, func(i, j int) bool { return records[i].Name() < records[j].Name() })
	}

	s.logger.Debugf("found %d status records", len(records))
	return records, nil
}
