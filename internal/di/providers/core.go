// Package providers contains dependency injection providers for the Cosme Zukan server.
package providers

import (
	"time"

	"github.com/samber/do/v2"

	"github.com/cosmezukan/cosme-server/internal/config"
	"github.com/cosmezukan/cosme-server/internal/i18n"
	"github.com/cosmezukan/cosme-server/internal/logger"
	"github.com/cosmezukan/cosme-server/internal/validation"
)

const (
	// shutdownTimeout is the maximum time to wait for graceful shutdown of services.
	shutdownTimeout = 30 * time.Second
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Info("Starting Cosme Zukan Server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_path", cfg.Data.BasePath,
		"store_backend", cfg.Data.Backend,
	)

	return log, nil
}

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideLocaleBundle provides the bilingual UI dictionary.
func ProvideLocaleBundle(i do.Injector) (*i18n.Bundle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return i18n.NewBundle(cfg.Locale.Default)
}
