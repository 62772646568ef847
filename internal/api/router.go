package api

import (
	"moped-route-service/internal/api/handlers"
	"moped-route-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type RouterConfig struct {
	DefaultLang    string
	AllowedOrigins []string
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(presets ports.PresetRepository, logger *zap.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	presetHandler := &handlers.PresetHandler{Repo: presets, Logger: logger}
	calcHandler := &handlers.CalculationHandler{
		Presets:     presets,
		Logger:      logger,
		DefaultLang: cfg.DefaultLang,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", handlers.Health(logger))
	r.Get("/task-types", handlers.TaskTypes(logger, cfg.DefaultLang))
	r.Get("/presets", presetHandler.List)
	r.Get("/presets/{id}", presetHandler.Get)
	r.Post("/calculations", calcHandler.Calculate)

	return r
}
