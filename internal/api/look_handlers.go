package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cosmezukan/cosme-server/internal/http/response"
	"github.com/cosmezukan/cosme-server/internal/service"
)

func (s *Server) handleListLooks(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.looks.List(r.Context()), s.logger)
}

func (s *Server) handleGetLook(w http.ResponseWriter, r *http.Request) {
	look, err := s.looks.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, look, s.logger)
}

func (s *Server) handleCreateLook(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.LookInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	res, err := s.looks.Create(r.Context(), in)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, res, s.logger)
}

func (s *Server) handleUpdateLook(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.LookInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	res, err := s.looks.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, res, s.logger)
}

func (s *Server) handleDeleteLook(w http.ResponseWriter, r *http.Request) {
	if err := s.looks.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.NoContent(w)
}

func (s *Server) handleLookPersonalColor(w http.ResponseWriter, r *http.Request) {
	res, err := s.looks.DominantPersonalColor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, res, s.logger)
}
