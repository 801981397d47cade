package report

import (
	"context"
	"fmt"

	"github.com/slok/spy/internal/log"
	"github.com/slok/spy/internal/model"
	"github.com/slok/spy/internal/storage"
)

// ServiceConfig is the configuration for the report service.
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

// Service reports job progress by replacing the job's status record.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new report service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the report request parameters.
type Request struct {
	// Name is the job being reported on.
	Name string
	// ElapsedSeconds is the time the job has been running, in seconds.
	ElapsedSeconds float64
	// FractionComplete is the fraction of the work done, nominally in [0, 1].
	// It must not be zero, the ETA would be undefined.
	FractionComplete float64
}

// Run computes the job's status record (including ETA) and stores it,
// replacing any previous record for the same job. It returns the record as
// written.
func (s *Service) Run(ctx context.Context, req Request) (*model.Record, error) {
	s.logger.Debugf("reporting progress for job %s: elapsed=%v fraction=%v", req.Name, req.ElapsedSeconds, req.FractionComplete)

	rec, err := model.NewStatus(req.Name, req.ElapsedSeconds, req.FractionComplete)
	if err != nil {
		return nil, fmt.Errorf("could not build status record: %w", err)
	}

	if err := s.repo.WriteStatus(ctx, rec); err != nil {
		return nil, fmt.Errorf("could not store status record: %w", err)
	}

	return &rec, nil
}
