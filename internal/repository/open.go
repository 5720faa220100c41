package repository

import (
	"fmt"

	"github.com/yukikurage/project-todo/internal/config"
	"github.com/yukikurage/project-todo/internal/database"
)

// Open builds the StateRepository selected by cfg.StoreBackend. The
// returned close function releases any connection it opened.
func Open(cfg *config.Config) (StateRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreBackend {
	case config.StoreMemory:
		return NewMemoryStateRepository(), noop, nil
	case config.StoreFile:
		repo, err := NewFileStateRepository(cfg.StateFile)
		if err != nil {
			return nil, nil, err
		}
		return repo, noop, nil
	case config.StoreDatabase:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			database.Close(db)
			return nil, nil, err
		}
		return NewStateRepository(db), func() error { return database.Close(db) }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
}
