package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"apt-report/internal/config"
	"apt-report/internal/middleware"
	recHnd "apt-report/internal/report/handler"
	"apt-report/server/http/handlers"
)

func NewRouter(cfg config.Config, rules config.Rules, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// основной эндпоинт: книга → сводка
	r.Post("/summary", recHnd.Summary(cfg, rules, logger))

	return r
}
