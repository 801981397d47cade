// Package storagemock has mocks for the storage repositories.
package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slok/spy/internal/model"
)

// MockRepository is a mock implementation of storage.Repository.
type MockRepository struct {
	mock.Mock
}

// WriteStatus satisfies storage.Repository.
func (m *MockRepository) WriteStatus(ctx context.Context, r model.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// GetStatus satisfies storage.Repository.
func (m *MockRepository) GetStatus(ctx context.Context, name string) (*model.Record, error) {
	args := m.Called(ctx, name)
	rec, _ := args.Get(0).(*model.Record)
	return rec, args.Error(1)
}

// ListStatuses satisfies storage.Repository.
func (m *MockRepository) ListStatuses(ctx context.Context) ([]model.Record, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]model.Record)
	return records, args.Error(1)
}
