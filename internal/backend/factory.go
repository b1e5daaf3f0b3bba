package backend

import (
	"fmt"

	"kudi/internal/config"
	applog "kudi/internal/log"
	"kudi/internal/storage"
	"kudi/internal/store"
)

// Factory builds stores from configuration.
type Factory struct {
	logger *applog.Logger
}

func NewFactory(logger *applog.Logger) *Factory {
	return &Factory{logger: logger.WithComponent(applog.ComponentBackend)}
}

// Create builds the store named by cfg.DataBackend.
func (f *Factory) Create(cfg *config.Config) (*Result, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type %q: must be one of %v", cfg.DataBackend, TypeStrings())
	}

	switch t {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", applog.FieldPath, cfg.SQLiteDBPath)
		return &Result{Store: repo, Cleanup: repo.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &Result{Store: store.NewMemoryStore()}, nil

	default:
		f.logger.Info("Initialized CSV backend", applog.FieldPath, cfg.CSVPath)
		return &Result{Store: store.NewCSVStore(cfg.CSVPath)}, nil
	}
}
