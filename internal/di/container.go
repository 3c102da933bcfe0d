// Package di provides dependency injection configuration for the Cosme Zukan server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/cosmezukan/cosme-server/internal/backup"
	"github.com/cosmezukan/cosme-server/internal/config"
	"github.com/cosmezukan/cosme-server/internal/di/providers"
	"github.com/cosmezukan/cosme-server/internal/i18n"
	"github.com/cosmezukan/cosme-server/internal/logger"
	"github.com/cosmezukan/cosme-server/internal/service"
	"github.com/cosmezukan/cosme-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideLocaleBundle)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideCosmeticService)
	do.Provide(injector, providers.ProvideLookService)
	do.Provide(injector, providers.ProvideSettingsService)
	do.Provide(injector, providers.ProvideBackupService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*validation.Validator](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*i18n.Bundle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.CosmeticService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.LookService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.SettingsService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*backup.Service](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
