package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cosmezukan/cosme-server/internal/errors"
	"github.com/cosmezukan/cosme-server/internal/http/response"
)

// maxBackupBody caps restore uploads. Photo payloads are inline data URLs so
// real documents can be large, but not unbounded.
const maxBackupBody = 256 << 20

func (s *Server) handleListBackups(w http.ResponseWriter, _ *http.Request) {
	list, err := s.backups.List()
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, list, s.logger)
}

func (s *Server) handleCreateBackup(w http.ResponseWriter, r *http.Request) {
	info, err := s.backups.Create(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, info, s.logger)
}

// handleExportBackup streams the current snapshot as a download without
// writing anything to the backup directory.
func (s *Server) handleExportBackup(w http.ResponseWriter, r *http.Request) {
	raw, name, err := s.backups.Export(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil && s.logger != nil {
		s.logger.Error("failed to stream backup export", "error", err)
	}
}

func (s *Server) handleDownloadBackup(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	raw, err := s.backups.Read(name)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil && s.logger != nil {
		s.logger.Error("failed to stream backup download", "error", err)
	}
}

func (s *Server) handleDeleteBackup(w http.ResponseWriter, r *http.Request) {
	if err := s.backups.Delete(chi.URLParam(r, "name")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.NoContent(w)
}

// handleRestoreUpload restores from a backup document in the request body.
// A document that fails to parse leaves current state untouched and returns
// 422.
func (s *Server) handleRestoreUpload(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBackupBody))
	if err != nil {
		response.HandleError(w, errors.Validation("failed to read upload").WithCause(err), s.logger)
		return
	}

	if err := s.backups.Restore(r.Context(), raw); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, s.store.Snapshot(), s.logger)
}

func (s *Server) handleRestoreFile(w http.ResponseWriter, r *http.Request) {
	if err := s.backups.RestoreFile(r.Context(), chi.URLParam(r, "name")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, s.store.Snapshot(), s.logger)
}
