package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	appVersion   = "1.0.0"
	appBuild     = 8
	appName      = "Vainilla"
	appDeveloper = "Julian Lopez"
)

type versionInfo struct {
	Version   string `json:"version"`
	Build     int    `json:"build"`
	Name      string `json:"name"`
	Developer string `json:"developer"`
}

type VersionHandler struct {
	log *slog.Logger
}

func NewVersionHandler(log *slog.Logger) *VersionHandler {
	return &VersionHandler{log: log}
}

func (h *VersionHandler) Mount(r chi.Router) {
	r.Get("/api/version", h.Version)
}

// Version returns the static build descriptor.
func (h *VersionHandler) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), h.log, w, http.StatusOK, versionInfo{
		Version:   appVersion,
		Build:     appBuild,
		Name:      appName,
		Developer: appDeveloper,
	})
}
