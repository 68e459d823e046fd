package handlers

import (
	"context"
	"net/http"
	"time"

	"gametrack/internal/container"
)

// HealthHandler reports liveness, pinging the database and Redis.
func HealthHandler(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := c.DB.Ping(ctx); err != nil {
			c.Logger.WithError(err).Error("Health check failed: database")
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "database unavailable"})
			return
		}
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			c.Logger.WithError(err).Error("Health check failed: redis")
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "redis unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
	}
}
