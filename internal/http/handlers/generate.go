package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"imagegenservice/internal/domain"
)

type generateImageRequest struct {
	UserID             string            `json:"user_id"`
	StylePreference    string            `json:"style_preference"`
	BackgroundImageURL string            `json:"background_image_url"`
	CartItems          []cartItemPayload `json:"cart_items"`
}

type generateImageResponse struct {
	ImageURL     string `json:"image_url"`
	GenerationID string `json:"generation_id"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// GenerateImage runs the generation pipeline. All pipeline outcomes,
// including failed jobs, answer 200; only malformed payloads and domain
// rejections use error codes.
func (a *App) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req generateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.failure(w, http.StatusInternalServerError, err.Error())
		return
	}
	res, err := a.Orchestrator.Generate(r.Context(), buildGenerationRequest(req.UserID, req.StylePreference, req.BackgroundImageURL, req.CartItems))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyRequest) {
			a.failure(w, http.StatusBadRequest, err.Error())
			return
		}
		a.failure(w, http.StatusInternalServerError, err.Error())
		return
	}
	a.json(w, http.StatusOK, generateImageResponse{
		ImageURL:     res.ImageURL,
		GenerationID: res.GenerationID,
		Status:       string(res.Status),
		ErrorMessage: res.ErrorMessage,
	})
}
