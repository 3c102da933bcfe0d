package backup

import (
	"context"

	"github.com/cosmezukan/cosme-server/internal/errors"
	"github.com/cosmezukan/cosme-server/internal/migrate"
)

// Restore replaces the entire catalog with the contents of a backup
// document. The document runs through schema migration first, so backups
// from older versions import cleanly.
//
// Restore is atomic: a document that cannot be parsed fails with a
// restore-failed error and current state is untouched.
func (s *Service) Restore(ctx context.Context, raw []byte) error {
	snap, err := migrate.Parse(raw)
	if err != nil {
		return errors.RestoreFailed("backup document is not a valid snapshot").WithCause(err)
	}

	if err := s.store.Restore(ctx, snap); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("restore complete",
			"cosmetics", len(snap.Cosmetics),
			"makeup_looks", len(snap.MakeupLooks))
	}
	return nil
}

// RestoreFile restores from a named backup file in the backup directory.
func (s *Service) RestoreFile(ctx context.Context, name string) error {
	raw, err := s.Read(name)
	if err != nil {
		return err
	}
	return s.Restore(ctx, raw)
}
