package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type statusResponse struct {
	Status       string `json:"status"`
	ImageURL     string `json:"image_url"`
	Progress     int    `json:"progress"`
	ErrorMessage string `json:"error_message"`
}

// GenerationStatus reports the recorded state of a job. Unknown ids answer a
// synthesized not_found record, still 200.
func (a *App) GenerationStatus(w http.ResponseWriter, r *http.Request) {
	job := a.Orchestrator.Status(chi.URLParam(r, "generation_id"))
	a.json(w, http.StatusOK, statusResponse{
		Status:       string(job.Status),
		ImageURL:     job.ImageURL,
		Progress:     job.Progress,
		ErrorMessage: job.ErrorMessage,
	})
}
