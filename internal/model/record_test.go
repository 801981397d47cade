package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/spy/internal/model"
)

func TestNewStatus(t *testing.T) {
	tests := map[string]struct {
		name     string
		elapsed  float64
		fraction float64
		expRec   model.Record
		expErr   error
	}{
		"Partial progress should compute a constant rate ETA": {
			name:     "love",
			elapsed:  96,
			fraction: 0.1,
			expRec: model.Record{Fields: []model.Field{
				{Key: "name", Value: "love"},
				{Key: "time", Value: "96 seconds"},
				{Key: "complete", Value: "10%"},
				{Key: "eta", Value: "864 seconds"},
			}},
		},

		"A finished job should have a zero ETA": {
			name:     "me",
			elapsed:  69,
			fraction: 1,
			expRec: model.Record{Fields: []model.Field{
				{Key: "name", Value: "me"},
				{Key: "time", Value: "69 seconds"},
				{Key: "complete", Value: "100%"},
				{Key: "eta", Value: "0 seconds"},
			}},
		},

		"Zero elapsed time should produce a zero ETA, not an error": {
			name:     "you",
			elapsed:  0,
			fraction: 0.45,
			expRec: model.Record{Fields: []model.Field{
				{Key: "name", Value: "you"},
				{Key: "time", Value: "0 seconds"},
				{Key: "complete", Value: "45%"},
				{Key: "eta", Value: "0 seconds"},
			}},
		},

		"Fractional results should truncate seconds and round the percent": {
			name:     "long",
			elapsed:  999,
			fraction: 0.34,
			expRec: model.Record{Fields: []model.Field{
				{Key: "name", Value: "long"},
				{Key: "time", Value: "999 seconds"},
				{Key: "complete", Value: "34%"},
				{Key: "eta", Value: "1939 seconds"},
			}},
		},

		"Fractional elapsed seconds should truncate toward zero": {
			name:     "time",
			elapsed:  42.9,
			fraction: 0.5,
			expRec: model.Record{Fields: []model.Field{
				{Key: "name", Value: "time"},
				{Key: "time", Value: "42 seconds"},
				{Key: "complete", Value: "50%"},
				{Key: "eta", Value: "42 seconds"},
			}},
		},

		"Zero fraction complete should fail, the ETA is undefined": {
			name:     "job",
			elapsed:  42,
			fraction: 0,
			expErr:   model.ErrInvalidProgress,
		},

		"Negative elapsed seconds should fail": {
			name:     "job",
			elapsed:  -1,
			fraction: 0.5,
			expErr:   model.ErrNotValid,
		},

		"Empty job name should fail": {
			name:     "",
			elapsed:  1,
			fraction: 0.5,
			expErr:   model.ErrNotValid,
		},

		"Job name with a path separator should fail": {
			name:     "a/b",
			elapsed:  1,
			fraction: 0.5,
			expErr:   model.ErrNotValid,
		},

		"Job name starting with a dot should fail": {
			name:     ".hidden",
			elapsed:  1,
			fraction: 0.5,
			expErr:   model.ErrNotValid,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			rec, err := model.NewStatus(test.name, test.elapsed, test.fraction)

			if test.expErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, test.expErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expRec, rec)
		})
	}
}

func TestRecordEncode(t *testing.T) {
	rec, err := model.NewStatus("love", 96, 0.1)
	require.NoError(t, err)

	exp := "name:love\ntime:96 seconds\ncomplete:10%\neta:864 seconds\n"
	assert.Equal(t, exp, string(rec.Encode()))
}

func TestDecodeRecord(t *testing.T) {
	tests := map[string]struct {
		data   string
		expRec model.Record
		expErr bool
	}{
		"A canonical record should round-trip preserving field order": {
			data: "name:love\ntime:96 seconds\ncomplete:10%\neta:864 seconds\n",
			expRec: model.Record{Fields: []model.Field{
				{Key: "name", Value: "love"},
				{Key: "time", Value: "96 seconds"},
				{Key: "complete", Value: "10%"},
				{Key: "eta", Value: "864 seconds"},
			}},
		},

		"Values with colons should split on the first colon only": {
			data: "name:job\nnote:started at 10:45:00\n",
			expRec: model.Record{Fields: []model.Field{
				{Key: "name", Value: "job"},
				{Key: "note", Value: "started at 10:45:00"},
			}},
		},

		"Non canonical fields should parse without schema validation": {
			data: "whatever:yes\n",
			expRec: model.Record{Fields: []model.Field{
				{Key: "whatever", Value: "yes"},
			}},
		},

		"A line without a colon should fail": {
			data:   "name:job\nnocolonhere\n",
			expErr: true,
		},

		"Empty content should fail": {
			data:   "",
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			rec, err := model.DecodeRecord([]byte(test.data))

			if test.expErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrMalformedRecord))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expRec, rec)
		})
	}
}

func TestRecordGet(t *testing.T) {
	rec := model.Record{Fields: []model.Field{
		{Key: "name", Value: "job"},
		{Key: "eta", Value: "10 seconds"},
	}}

	v, ok := rec.Get("eta")
	assert.True(t, ok)
	assert.Equal(t, "10 seconds", v)

	_, ok = rec.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, "job", rec.Name())
}
