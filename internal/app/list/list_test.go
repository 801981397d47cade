package list_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/spy/internal/app/list"
	"github.com/slok/spy/internal/log"
	"github.com/slok/spy/internal/model"
	"github.com/slok/spy/internal/storage/storagemock"
)

func record(name string) model.Record {
	rec, err := model.NewStatus(name, 10, 0.5)
	if err != nil {
		panic(err)
	}
	return rec
}

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config list.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: list.ServiceConfig{
				Repository: &storagemock.MockRepository{},
				Logger:     log.Noop,
			},
		},
		"missing repository should fail": {
			config: list.ServiceConfig{Logger: log.Noop},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			svc, err := list.NewService(test.config)

			if test.expErr {
				require.Error(t, err)
				require.Nil(t, svc)
			} else {
				require.NoError(t, err)
				require.NotNil(t, svc)
			}
		})
	}
}

func TestRun(t *testing.T) {
	tests := map[string]struct {
		mock      func(m *storagemock.MockRepository)
		req       list.Request
		expResult []model.Record
		expErr    bool
	}{
		"Listing should return the store snapshot as is": {
			mock: func(m *storagemock.MockRepository) {
				m.On("ListStatuses", mock.Anything).Once().Return([]model.Record{record("b"), record("a")}, nil)
			},
			req:       list.Request{},
			expResult: []model.Record{record("b"), record("a")},
		},

		"Sorting by name should order records for display": {
			mock: func(m *storagemock.MockRepository) {
				m.On("ListStatuses", mock.Anything).Once().Return([]model.Record{record("b"), record("a")}, nil)
			},
			req:       list.Request{SortByName: true},
			expResult: []model.Record{record("a"), record("b")},
		},

		"An empty store should list zero records": {
			mock: func(m *storagemock.MockRepository) {
				m.On("ListStatuses", mock.Anything).Once().Return([]model.Record{}, nil)
			},
			req:       list.Request{},
			expResult: []model.Record{},
		},

		"A listing failure should propagate": {
			mock: func(m *storagemock.MockRepository) {
				m.On("ListStatuses", mock.Anything).Once().Return(nil, fmt.Errorf("boom"))
			},
			req:    list.Request{},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m := &storagemock.MockRepository{}
			test.mock(m)

			svc, err := list.NewService(list.ServiceConfig{
				Repository: m,
				Logger:     log.Noop,
			})
			require.NoError(t, err)

			result, err := svc.Run(context.Background(), test.req)

			if test.expErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, test.expResult, result)
			}

			m.AssertExpectations(t)
		})
	}
}
