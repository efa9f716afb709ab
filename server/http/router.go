package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	catHnd "figure-catalog/internal/catalog/handler"
	"figure-catalog/internal/catalog/service"
	"figure-catalog/internal/config"
	"figure-catalog/internal/middleware"
	"figure-catalog/internal/store"
	"figure-catalog/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, st store.Store, matcher *service.Matcher) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	maxUpload := int64(cfg.MaxUploadMB) * 1024 * 1024
	r.Use(middleware.LimitBytes(maxUpload))

	r.Get("/health", handlers.Health)

	h := catHnd.New(st, matcher, maxUpload, logger)
	r.Route("/api/v1", h.Register)

	return r
}
