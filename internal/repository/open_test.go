package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-todo/internal/config"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]*config.Config{
		"memory":   {StoreBackend: config.StoreMemory},
		"file":     {StoreBackend: config.StoreFile, StateFile: filepath.Join(dir, "state.json")},
		"database": {StoreBackend: config.StoreDatabase, DBDriver: config.DriverSQLite, SQLitePath: filepath.Join(dir, "todo.db"), DBLogLevel: "silent"},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			repo, closeFn, err := Open(cfg)
			require.NoError(t, err)
			defer closeFn()

			require.NoError(t, repo.Set("todoAppState", "{}"))
			value, ok, err := repo.Get("todoAppState")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "{}", value)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open(&config.Config{StoreBackend: "redis"})
	assert.Error(t, err)
}
