// Package api provides the HTTP API server and handlers for the Cosme Zukan catalog.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cosmezukan/cosme-server/internal/backup"
	"github.com/cosmezukan/cosme-server/internal/i18n"
	"github.com/cosmezukan/cosme-server/internal/service"
	"github.com/cosmezukan/cosme-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     *store.Store
	cosmetics *service.CosmeticService
	looks     *service.LookService
	settings  *service.SettingsService
	backups   *backup.Service
	locales   *i18n.Bundle
	router    *chi.Mux
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	st *store.Store,
	cosmetics *service.CosmeticService,
	looks *service.LookService,
	settings *service.SettingsService,
	backups *backup.Service,
	locales *i18n.Bundle,
	logger *slog.Logger,
) *Server {
	s := &Server{
		store:     st,
		cosmetics: cosmetics,
		looks:     looks,
		settings:  settings,
		backups:   backups,
		locales:   locales,
		router:    chi.NewRouter(),
		logger:    logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/cosmetics", func(r chi.Router) {
			r.Get("/", s.handleListCosmetics)
			r.Post("/", s.handleCreateCosmetic)
			r.Get("/expiring", s.handleExpiringCosmetics)
			r.Post("/check-duplicate", s.handleCheckDuplicate)
			r.Get("/{id}", s.handleGetCosmetic)
			r.Put("/{id}", s.handleUpdateCosmetic)
			r.Delete("/{id}", s.handleDeleteCosmetic)
			r.Post("/{id}/repurchase", s.handleRecordRepurchase)
		})

		r.Route("/looks", func(r chi.Router) {
			r.Get("/", s.handleListLooks)
			r.Post("/", s.handleCreateLook)
			r.Get("/{id}", s.handleGetLook)
			r.Put("/{id}", s.handleUpdateLook)
			r.Delete("/{id}", s.handleDeleteLook)
			r.Get("/{id}/personal-color", s.handleLookPersonalColor)
		})

		r.Route("/aliases", func(r chi.Router) {
			r.Get("/", s.handleGetAliasTables)
			r.Post("/brands", s.handleAddBrand)
			r.Post("/categories", s.handleAddCategory)
			r.Post("/colors", s.handleAddColor)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/view", s.handleGetViewSettings)
			r.Put("/view/makeup", s.handleSetMakeupViewMode)
			r.Put("/view/cosmetics", s.handleSetCosmeticViewMode)
			r.Put("/lookbook-cursor", s.handleSetLookbookCursor)
		})

		r.Route("/backups", func(r chi.Router) {
			r.Get("/", s.handleListBackups)
			r.Post("/", s.handleCreateBackup)
			r.Get("/export", s.handleExportBackup)
			r.Post("/restore", s.handleRestoreUpload)
			r.Get("/{name}", s.handleDownloadBackup)
			r.Delete("/{name}", s.handleDeleteBackup)
			r.Post("/{name}/restore", s.handleRestoreFile)
		})

		r.Post("/photos/placeholder", s.handlePhotoPlaceholder)
		r.Get("/locale", s.handleGetLocale)
	})
}
