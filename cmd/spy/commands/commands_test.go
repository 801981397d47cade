package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/spy/internal/storage/fsdir"
	"github.com/slok/spy/internal/storage/sqlite"
)

func TestRootCommandNewRepository(t *testing.T) {
	tests := map[string]struct {
		rootCmd func(t *testing.T) *RootCommand
		check   func(t *testing.T, repo any)
		expErr  bool
		errMsg  string
	}{
		"Dir backend with a base flag should create a directory repository": {
			rootCmd: func(t *testing.T) *RootCommand {
				return &RootCommand{
					Base:       filepath.Join(t.TempDir(), "status"),
					ConfigPath: filepath.Join(t.TempDir(), "nonexistent.yaml"),
				}
			},
			check: func(t *testing.T, repo any) {
				assert.IsType(t, &fsdir.Repository{}, repo)
			},
		},

		"Dir backend without a store location should fail": {
			rootCmd: func(t *testing.T) *RootCommand {
				return &RootCommand{
					ConfigPath: filepath.Join(t.TempDir(), "nonexistent.yaml"),
				}
			},
			expErr: true,
			errMsg: "store location is not configured",
		},

		"The config file should provide the store location when flags don't": {
			rootCmd: func(t *testing.T) *RootCommand {
				dir := t.TempDir()
				cfgPath := filepath.Join(dir, "config.yaml")
				base := filepath.Join(dir, "status")
				require.NoError(t, os.WriteFile(cfgPath, []byte("base: "+base+"\n"), 0o644))
				return &RootCommand{ConfigPath: cfgPath}
			},
			check: func(t *testing.T, repo any) {
				assert.IsType(t, &fsdir.Repository{}, repo)
			},
		},

		"Flags should take precedence over the config file": {
			rootCmd: func(t *testing.T) *RootCommand {
				dir := t.TempDir()
				cfgPath := filepath.Join(dir, "config.yaml")
				require.NoError(t, os.WriteFile(cfgPath, []byte("backend: sqlite\n"), 0o644))
				return &RootCommand{
					Backend:    "dir",
					Base:       filepath.Join(dir, "status"),
					ConfigPath: cfgPath,
				}
			},
			check: func(t *testing.T, repo any) {
				assert.IsType(t, &fsdir.Repository{}, repo)
			},
		},

		"SQLite backend should create a SQLite repository": {
			rootCmd: func(t *testing.T) *RootCommand {
				return &RootCommand{
					Backend:    "sqlite",
					DBPath:     filepath.Join(t.TempDir(), "spy.db"),
					ConfigPath: filepath.Join(t.TempDir(), "nonexistent.yaml"),
				}
			},
			check: func(t *testing.T, repo any) {
				assert.IsType(t, &sqlite.Repository{}, repo)
			},
		},

		"An unknown backend should fail": {
			rootCmd: func(t *testing.T) *RootCommand {
				return &RootCommand{
					Backend:    "redis",
					ConfigPath: filepath.Join(t.TempDir(), "nonexistent.yaml"),
				}
			},
			expErr: true,
			errMsg: "unknown storage backend",
		},

		"An invalid config file should fail": {
			rootCmd: func(t *testing.T) *RootCommand {
				cfgPath := filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(cfgPath, []byte("backend: [broken"), 0o644))
				return &RootCommand{ConfigPath: cfgPath}
			},
			expErr: true,
			errMsg: "could not load config file",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			repo, err := tc.rootCmd(t).NewRepository(context.Background())

			if tc.expErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				return
			}

			require.NoError(t, err)
			tc.check(t, repo)
		})
	}
}
