// Package handlers translates HTTP/JSON requests into the orchestrator's
// internal model. Handlers carry no business logic; all pipeline semantics
// live behind the App's collaborators.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"imagegenservice/internal/assets"
	"imagegenservice/internal/orchestrator"
)

// App is the container shared by all HTTP handlers.
type App struct {
	Orchestrator *orchestrator.Orchestrator
	Uploader     *assets.Uploader
	Logger       zerolog.Logger
}

// NewApp wires the handler container.
func NewApp(orch *orchestrator.Orchestrator, uploader *assets.Uploader, logger zerolog.Logger) *App {
	return &App{Orchestrator: orch, Uploader: uploader, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// failure writes the error envelope used by the v1 API.
func (a *App) failure(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg, "status": "failed"})
}
