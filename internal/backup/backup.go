// Package backup exports the catalog snapshot as a portable JSON document
// and restores it. The export format is the persisted snapshot itself, so a
// backup taken under an older schema restores through the same migration
// engine the startup path uses.
package backup

import (
	"context"
	"encoding/json/v2"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cosmezukan/cosme-server/internal/errors"
	"github.com/cosmezukan/cosme-server/internal/store"
)

const (
	filePrefix = "my-cosme-zukan-backup-"
	fileSuffix = ".json"
)

// Info describes one backup file on disk.
type Info struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service manages backup creation, listing, and restore.
type Service struct {
	store     *store.Store
	backupDir string
	logger    *slog.Logger
}

// NewService creates a backup Service writing into backupDir.
func NewService(s *store.Store, backupDir string, logger *slog.Logger) *Service {
	return &Service{store: s, backupDir: backupDir, logger: logger}
}

// Filename returns the dated backup filename for the given time.
func Filename(now time.Time) string {
	return filePrefix + now.Format("2006-01-02") + fileSuffix
}

// Export serializes the current snapshot and returns the document together
// with its suggested filename.
func (s *Service) Export(_ context.Context) ([]byte, string, error) {
	raw, err := json.Marshal(s.store.Snapshot())
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CodeInternal, "marshal snapshot")
	}
	return raw, Filename(time.Now()), nil
}

// Create writes a backup file into the backup directory. A second backup on
// the same day replaces the first.
func (s *Service) Create(ctx context.Context) (*Info, error) {
	raw, name, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create backup dir")
	}

	path := filepath.Join(s.backupDir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "write backup file")
	}

	if s.logger != nil {
		s.logger.Info("backup created", "path", path, "size", len(raw))
	}
	return &Info{Name: name, Size: int64(len(raw)), CreatedAt: time.Now()}, nil
}

// List returns the backup files in the backup directory, newest first.
func (s *Service) List() ([]Info, error) {
	entries, err := os.ReadDir(s.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "read backup dir")
	}

	out := make([]Info, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !validName(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, Info{
			Name:      entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Read returns the contents of a named backup file.
func (s *Service) Read(name string) ([]byte, error) {
	if !validName(name) {
		return nil, errors.Validationf("invalid backup name %q", name)
	}
	raw, err := os.ReadFile(filepath.Join(s.backupDir, name))
	if os.IsNotExist(err) {
		return nil, errors.NotFoundf("backup %s not found", name)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "read backup file")
	}
	return raw, nil
}

// Delete removes a named backup file.
func (s *Service) Delete(name string) error {
	if !validName(name) {
		return errors.Validationf("invalid backup name %q", name)
	}
	err := os.Remove(filepath.Join(s.backupDir, name))
	if os.IsNotExist(err) {
		return errors.NotFoundf("backup %s not found", name)
	}
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "delete backup file")
	}
	return nil
}

// validName accepts only flat dated backup filenames. Keeps path traversal
// out of the backup directory.
func validName(name string) bool {
	return filepath.Base(name) == name &&
		strings.HasPrefix(name, filePrefix) &&
		strings.HasSuffix(name, fileSuffix)
}
