package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cosmezukan/cosme-server/internal/http/response"
	"github.com/cosmezukan/cosme-server/internal/service"
)

func (s *Server) handleListCosmetics(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.cosmetics.List(r.Context()), s.logger)
}

func (s *Server) handleGetCosmetic(w http.ResponseWriter, r *http.Request) {
	c, err := s.cosmetics.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, c, s.logger)
}

func (s *Server) handleCreateCosmetic(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.CosmeticInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	res, err := s.cosmetics.Create(r.Context(), in)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, res, s.logger)
}

func (s *Server) handleUpdateCosmetic(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.CosmeticInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	res, err := s.cosmetics.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, res, s.logger)
}

func (s *Server) handleDeleteCosmetic(w http.ResponseWriter, r *http.Request) {
	if err := s.cosmetics.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.NoContent(w)
}

func (s *Server) handleCheckDuplicate(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.CosmeticInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	res, err := s.cosmetics.CheckDuplicate(r.Context(), in)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, res, s.logger)
}

func (s *Server) handleRecordRepurchase(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.CosmeticInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	res, err := s.cosmetics.RecordRepurchase(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, res, s.logger)
}

// handleExpiringCosmetics lists items expiring within ?days= (default 30).
func (s *Server) handleExpiringCosmetics(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "days must be a non-negative integer", s.logger)
			return
		}
		days = parsed
	}
	response.Success(w, s.cosmetics.ExpiringSoon(r.Context(), time.Now(), days), s.logger)
}
