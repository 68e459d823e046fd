package handlers

import (
	"net/http"

	"gametrack/internal/config"
	"gametrack/internal/container"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// NewRouter mounts the full REST surface on a chi router.
func NewRouter(c *container.Container) http.Handler {
	rps, burst := config.RateLimitConfig()
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	games := NewGamesHandler(c.Games, c.Stats, c.Logger)
	backlog := NewBacklogHandler(c.Backlog, c.Logger)
	prefs := NewPreferencesHandler(c.Preferences, c.Logger)

	r := chi.NewRouter()
	r.Use(RequestLogger(c.Logger))
	r.Use(RateLimit(limiter))

	r.Get("/healthz", HealthHandler(c))

	r.Route("/games", func(r chi.Router) {
		r.Get("/", games.List)
		r.Post("/", games.Create)
		r.Get("/stats/dashboard", games.Stats)
		r.Get("/{id}", games.Get)
		r.Put("/{id}", games.Update)
		r.Delete("/{id}", games.Delete)
	})

	r.Route("/backlog", func(r chi.Router) {
		r.Get("/", backlog.List)
		r.Post("/", backlog.Create)
		r.Get("/{id}", backlog.Get)
		r.Put("/{id}", backlog.Update)
		r.Delete("/{id}", backlog.Delete)
		r.Post("/{id}/move-to-library", backlog.MoveToLibrary)
	})

	r.Get("/preferences", prefs.Get)
	r.Put("/preferences", prefs.Update)

	return r
}
