package handlers

import (
	"net/http"

	"gametrack/internal/models"
	"gametrack/internal/services"

	"github.com/sirupsen/logrus"
)

const preferencesEntity = "Preferences"

type PreferencesHandler struct {
	prefs *services.PreferencesService
	log   *logrus.Logger
}

func NewPreferencesHandler(prefs *services.PreferencesService, log *logrus.Logger) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs, log: log}
}

func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.prefs.Get(r.Context())
	if err != nil {
		writeError(w, h.log, err, preferencesEntity)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdatePreferencesInput
	if !decodeBody(w, r, &in) {
		return
	}

	prefs, err := h.prefs.Update(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err, preferencesEntity)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
