package status

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/spy/internal/log"
	"github.com/slok/spy/internal/model"
	"github.com/slok/spy/internal/storage"
)

// ServiceConfig is the configuration for the status service.
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

// Service retrieves a single job's status record.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new status service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the status request parameters.
type Request struct {
	// Name is the job to query.
	Name string
}

// Run retrieves the current status record of a job.
func (s *Service) Run(ctx context.Context, req Request) (*model.Record, error) {
	s.logger.Debugf("getting status for job: %s", req.Name)

	rec, err := s.repo.GetStatus(ctx, req.Name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("job not found: %s: %w", req.Name, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get job status: %w", err)
	}

	return rec, nil
}
