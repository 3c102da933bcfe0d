package providers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/cosmezukan/cosme-server/internal/config"
	"github.com/cosmezukan/cosme-server/internal/logger"
	"github.com/cosmezukan/cosme-server/internal/store"
	"github.com/cosmezukan/cosme-server/internal/store/badgerrepo"
	"github.com/cosmezukan/cosme-server/internal/store/sqliterepo"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the catalog store on top of the configured
// repository backend.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if err := os.MkdirAll(cfg.Data.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	var (
		repo store.Repository
		err  error
	)
	switch cfg.Data.Backend {
	case config.BackendSQLite:
		repo, err = sqliterepo.Open(filepath.Join(cfg.Data.BasePath, "catalog.db"), log.Logger)
	default:
		repo, err = badgerrepo.Open(filepath.Join(cfg.Data.BasePath, "db"), log.Logger)
	}
	if err != nil {
		return nil, err
	}

	db, err := store.New(context.Background(), repo, log.Logger)
	if err != nil {
		repo.Close()
		return nil, err
	}

	log.Info("Catalog store initialized", "backend", cfg.Data.Backend, "path", cfg.Data.BasePath)

	return &StoreHandle{Store: db}, nil
}
