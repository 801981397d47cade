package lib

import (
	"context"
	"fmt"

	"github.com/slok/spy/internal/app/list"
	"github.com/slok/spy/internal/app/report"
	"github.com/slok/spy/internal/app/status"
	"github.com/slok/spy/internal/log"
	"github.com/slok/spy/internal/storage/fsdir"
)

// Config configures the SDK client.
type Config struct {
	// BaseDir is the directory holding the status records (required). Jobs and
	// viewers pointing at the same directory see each other's records.
	BaseDir string

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.BaseDir == "" {
		return fmt.Errorf("base directory is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the main SDK entry point for reporting and reading job statuses.
//
// A Client is safe for concurrent use.
type Client struct {
	reportSvc *report.Service
	listSvc   *list.Service
	statusSvc *status.Service
}

// New creates a new SDK client backed by a status directory, creating the
// directory if it doesn't exist yet.
func New(cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	repo, err := fsdir.NewRepository(fsdir.RepositoryConfig{
		BaseDir: cfg.BaseDir,
		Logger:  cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	reportSvc, err := report.NewService(report.ServiceConfig{Repository: repo, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create report service: %w", err)
	}

	listSvc, err := list.NewService(list.ServiceConfig{Repository: repo, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create list service: %w", err)
	}

	statusSvc, err := status.NewService(status.ServiceConfig{Repository: repo, Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create status service: %w", err)
	}

	return &Client{
		reportSvc: reportSvc,
		listSvc:   listSvc,
		statusSvc: statusSvc,
	}, nil
}

// Report computes the job's status record (elapsed, completion percent, ETA)
// and stores it, fully replacing the job's previous record. It returns the
// record as written.
func (c *Client) Report(ctx context.Context, job string, elapsedSeconds, fractionComplete float64) (Record, error) {
	rec, err := c.reportSvc.Run(ctx, report.Request{
		Name:             job,
		ElapsedSeconds:   elapsedSeconds,
		FractionComplete: fractionComplete,
	})
	if err != nil {
		return Record{}, err
	}

	return *rec, nil
}

// List returns a fresh snapshot of every job's current status record, sorted
// by job name.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	return c.listSvc.Run(ctx, list.Request{SortByName: true})
}

// Status returns the current status record of a single job.
func (c *Client) Status(ctx context.Context, job string) (Record, error) {
	rec, err := c.statusSvc.Run(ctx, status.Request{Name: job})
	if err != nil {
		return Record{}, err
	}

	return *rec, nil
}
