package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/cosmezukan/cosme-server/internal/api"
	"github.com/cosmezukan/cosme-server/internal/backup"
	"github.com/cosmezukan/cosme-server/internal/config"
	"github.com/cosmezukan/cosme-server/internal/i18n"
	"github.com/cosmezukan/cosme-server/internal/logger"
	"github.com/cosmezukan/cosme-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	cosmeticService := do.MustInvoke[*service.CosmeticService](i)
	lookService := do.MustInvoke[*service.LookService](i)
	settingsService := do.MustInvoke[*service.SettingsService](i)
	backupService := do.MustInvoke[*backup.Service](i)
	localeBundle := do.MustInvoke[*i18n.Bundle](i)

	handler := api.NewServer(
		storeHandle.Store,
		cosmeticService,
		lookService,
		settingsService,
		backupService,
		localeBundle,
		log.Logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
