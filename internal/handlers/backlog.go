package handlers

import (
	"net/http"

	"gametrack/internal/models"
	"gametrack/internal/repository"
	"gametrack/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const backlogEntity = "Backlog item"

type BacklogHandler struct {
	backlog *services.BacklogService
	log     *logrus.Logger
}

func NewBacklogHandler(backlog *services.BacklogService, log *logrus.Logger) *BacklogHandler {
	return &BacklogHandler{backlog: backlog, log: log}
}

func (h *BacklogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.BacklogFilter{
		Category: q.Get("category"),
		Priority: q.Get("priority"),
		Platform: q.Get("platform"),
	}

	items, err := h.backlog.List(r.Context(), filter)
	if err != nil {
		writeError(w, h.log, err, backlogEntity)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *BacklogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateBacklogInput
	if !decodeBody(w, r, &in) {
		return
	}

	item, err := h.backlog.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err, backlogEntity)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *BacklogHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.backlog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err, backlogEntity)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *BacklogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateBacklogInput
	if !decodeBody(w, r, &in) {
		return
	}

	item, err := h.backlog.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, h.log, err, backlogEntity)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *BacklogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.backlog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err, backlogEntity)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Backlog item deleted successfully"})
}

// MoveToLibrary decodes the override payload onto its defaults, so absent
// fields keep the default values.
func (h *BacklogHandler) MoveToLibrary(w http.ResponseWriter, r *http.Request) {
	req := models.DefaultMoveToLibraryRequest()
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}

	game, err := h.backlog.MoveToLibrary(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, h.log, err, backlogEntity)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}
