package handlers

import (
	"net/http"

	"gametrack/internal/models"
	"gametrack/internal/repository"
	"gametrack/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const gameEntity = "Game"

type GamesHandler struct {
	games *services.GameService
	stats *services.StatsService
	log   *logrus.Logger
}

func NewGamesHandler(games *services.GameService, stats *services.StatsService, log *logrus.Logger) *GamesHandler {
	return &GamesHandler{games: games, stats: stats, log: log}
}

func (h *GamesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.GameFilter{
		Platform: q.Get("platform"),
		Genre:    q.Get("genre"),
		Status:   q.Get("status"),
		Search:   q.Get("search"),
	}

	games, err := h.games.List(r.Context(), filter)
	if err != nil {
		writeError(w, h.log, err, gameEntity)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (h *GamesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateGameInput
	if !decodeBody(w, r, &in) {
		return
	}

	game, err := h.games.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err, gameEntity)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

func (h *GamesHandler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := h.games.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err, gameEntity)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *GamesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateGameInput
	if !decodeBody(w, r, &in) {
		return
	}

	game, err := h.games.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, h.log, err, gameEntity)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *GamesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.games.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err, gameEntity)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Game deleted successfully"})
}

func (h *GamesHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Dashboard(r.Context())
	if err != nil {
		writeError(w, h.log, err, gameEntity)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
