package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/spy/internal/model"
	"github.com/slok/spy/internal/storage/sqlite"
)

func newTestRepository(ctx context.Context, t *testing.T) *sqlite.Repository {
	t.Helper()

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: filepath.Join(t.TempDir(), "spy.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestNewRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing db path should fail", func(t *testing.T) {
		_, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{})
		require.Error(t, err)
	})

	t.Run("Opening the same database twice should run migrations idempotently", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "spy.db")

		repo1, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{DBPath: path})
		require.NoError(t, err)
		require.NoError(t, repo1.Close())

		repo2, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{DBPath: path})
		require.NoError(t, err)
		require.NoError(t, repo2.Close())
	})
}

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("A written record should come back identical from a listing", func(t *testing.T) {
		repo := newTestRepository(ctx, t)

		rec, err := model.NewStatus("love", 96, 0.1)
		require.NoError(t, err)
		require.NoError(t, repo.WriteStatus(ctx, rec))

		records, err := repo.ListStatuses(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, rec, records[0])
	})

	t.Run("A rewrite should fully replace the previous record", func(t *testing.T) {
		repo := newTestRepository(ctx, t)

		rec1, err := model.NewStatus("job", 96, 0.1)
		require.NoError(t, err)
		require.NoError(t, repo.WriteStatus(ctx, rec1))

		rec2, err := model.NewStatus("job", 100, 0.5)
		require.NoError(t, err)
		require.NoError(t, repo.WriteStatus(ctx, rec2))

		records, err := repo.ListStatuses(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, rec2, records[0])
	})

	t.Run("Writing five jobs should list five records", func(t *testing.T) {
		repo := newTestRepository(ctx, t)

		for _, name := range []string{"one", "two", "three", "four", "five"} {
			rec, err := model.NewStatus(name, 10, 0.5)
			require.NoError(t, err)
			require.NoError(t, repo.WriteStatus(ctx, rec))
		}

		records, err := repo.ListStatuses(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 5)
	})

	t.Run("Getting a written record should work", func(t *testing.T) {
		repo := newTestRepository(ctx, t)

		rec, err := model.NewStatus("love", 96, 0.1)
		require.NoError(t, err)
		require.NoError(t, repo.WriteStatus(ctx, rec))

		got, err := repo.GetStatus(ctx, "love")
		require.NoError(t, err)
		assert.Equal(t, &rec, got)
	})

	t.Run("Getting a missing job should fail with not found", func(t *testing.T) {
		repo := newTestRepository(ctx, t)

		_, err := repo.GetStatus(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})

	t.Run("Writing a record without a valid name should fail", func(t *testing.T) {
		repo := newTestRepository(ctx, t)

		err := repo.WriteStatus(ctx, model.Record{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotValid))
	})
}
