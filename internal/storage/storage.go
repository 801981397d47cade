package storage

import (
	"context"

	"github.com/slok/spy/internal/model"
)

// Repository is the interface for job status persistence.
//
// A repository holds exactly one record per job: writing a status is always a
// full replace of the previous record, there is no delete operation. Listing
// returns a fresh snapshot on every call, in no guaranteed order.
type Repository interface {
	WriteStatus(ctx context.Context, r model.Record) error
	GetStatus(ctx context.Context, name string) (*model.Record, error)
	ListStatuses(ctx context.Context) ([]model.Record, error)
}
