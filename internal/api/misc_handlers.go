package api

import (
	"net/http"

	"github.com/cosmezukan/cosme-server/internal/http/response"
	"github.com/cosmezukan/cosme-server/internal/photo"
)

// HealthData is the health check payload.
type HealthData struct {
	Status      string `json:"status"`
	Cosmetics   int    `json:"cosmetics"`
	MakeupLooks int    `json:"makeupLooks"`
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	response.Success(w, HealthData{
		Status:      "healthy",
		Cosmetics:   len(snap.Cosmetics),
		MakeupLooks: len(snap.MakeupLooks),
	}, s.logger)
}

// LocaleData is the dictionary payload for one negotiated locale.
type LocaleData struct {
	Locale     string            `json:"locale"`
	Dictionary map[string]string `json:"dictionary"`
}

// handleGetLocale returns the UI dictionary. ?lang= wins over the
// Accept-Language header.
func (s *Server) handleGetLocale(w http.ResponseWriter, r *http.Request) {
	accept := r.URL.Query().Get("lang")
	if accept == "" {
		accept = r.Header.Get("Accept-Language")
	}
	tag := s.locales.Resolve(accept)
	response.Success(w, LocaleData{
		Locale:     tag.String(),
		Dictionary: s.locales.Dictionary(tag),
	}, s.logger)
}

// PlaceholderInput is a photo payload to hash.
type PlaceholderInput struct {
	Photo string `json:"photo"`
}

// PlaceholderData is the computed BlurHash placeholder.
type PlaceholderData struct {
	BlurHash string `json:"blurHash"`
}

func (s *Server) handlePhotoPlaceholder(w http.ResponseWriter, r *http.Request) {
	in, err := decode[PlaceholderInput](r)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	hash, err := photo.Placeholder(in.Photo)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, PlaceholderData{BlurHash: hash}, s.logger)
}
