package providers

import (
	"github.com/samber/do/v2"

	"github.com/cosmezukan/cosme-server/internal/backup"
	"github.com/cosmezukan/cosme-server/internal/config"
	"github.com/cosmezukan/cosme-server/internal/logger"
	"github.com/cosmezukan/cosme-server/internal/service"
	"github.com/cosmezukan/cosme-server/internal/validation"
)

// ProvideCosmeticService provides the cosmetic service.
func ProvideCosmeticService(i do.Injector) (*service.CosmeticService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewCosmeticService(storeHandle.Store, v, log.Logger), nil
}

// ProvideLookService provides the makeup look service.
func ProvideLookService(i do.Injector) (*service.LookService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewLookService(storeHandle.Store, v, log.Logger), nil
}

// ProvideSettingsService provides the alias table and view state service.
func ProvideSettingsService(i do.Injector) (*service.SettingsService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewSettingsService(storeHandle.Store, v, log.Logger), nil
}

// ProvideBackupService provides the backup and restore service.
func ProvideBackupService(i do.Injector) (*backup.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return backup.NewService(storeHandle.Store, cfg.Data.BackupPath, log.Logger), nil
}
