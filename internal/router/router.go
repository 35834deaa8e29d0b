package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"channelscope-backend/internal/config"
	"channelscope-backend/internal/handlers"
	"channelscope-backend/internal/middleware"
)

func New(cfg *config.Config, channelHandler *handlers.ChannelHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.FrontendURL))

	r.Get("/health", handlers.Health)

	analyzeLimiter := middleware.NewRateLimiter(cfg.AnalyzeRateLimit, time.Minute)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/channels", func(r chi.Router) {
			r.With(analyzeLimiter.Middleware).Post("/analyze", channelHandler.Analyze)
			r.Get("/{channelID}/analysis", channelHandler.GetAnalysis)
			r.Post("/{channelID}/ideas", channelHandler.MoreIdeas)
		})
	})

	return r
}
