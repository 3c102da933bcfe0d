package api

import (
	"net/http"

	"github.com/cosmezukan/cosme-server/internal/http/response"
	"github.com/cosmezukan/cosme-server/internal/service"
)

func (s *Server) handleGetAliasTables(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.settings.AliasTables(r.Context()), s.logger)
}

func (s *Server) handleAddBrand(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.NameAliasInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := s.settings.AddBrand(r.Context(), in); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, s.settings.AliasTables(r.Context()).Brands, s.logger)
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.NameAliasInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := s.settings.AddCategory(r.Context(), in); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, s.settings.AliasTables(r.Context()).Categories, s.logger)
}

func (s *Server) handleAddColor(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.ColorAliasInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := s.settings.AddColor(r.Context(), in); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, s.settings.AliasTables(r.Context()).Colors, s.logger)
}

func (s *Server) handleGetViewSettings(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.settings.ViewSettings(r.Context()), s.logger)
}

func (s *Server) handleSetMakeupViewMode(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.ViewModeInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := s.settings.SetMakeupListViewMode(r.Context(), in); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, s.settings.ViewSettings(r.Context()), s.logger)
}

func (s *Server) handleSetCosmeticViewMode(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.ViewModeInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := s.settings.SetCosmeticListViewMode(r.Context(), in); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, s.settings.ViewSettings(r.Context()), s.logger)
}

func (s *Server) handleSetLookbookCursor(w http.ResponseWriter, r *http.Request) {
	in, err := decode[service.LookbookCursorInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if err := s.settings.SetLookbookCursor(r.Context(), in); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, s.settings.ViewSettings(r.Context()), s.logger)
}
