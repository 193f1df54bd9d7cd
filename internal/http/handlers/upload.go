package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"imagegenservice/internal/domain"
)

type uploadBackgroundRequest struct {
	ImageData string `json:"image_data"`
}

type uploadBackgroundResponse struct {
	ImageURL     string `json:"image_url"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// UploadBackground processes a base64-encoded background image. Processing
// problems are reported inside a 200 response; they are an expected outcome,
// not a transport failure.
func (a *App) UploadBackground(w http.ResponseWriter, r *http.Request) {
	var req uploadBackgroundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.failure(w, http.StatusInternalServerError, err.Error())
		return
	}
	raw, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		a.json(w, http.StatusOK, uploadBackgroundResponse{
			Status:       string(domain.UploadStatusFailed),
			ErrorMessage: fmt.Sprintf("decode base64 image data: %v", err),
		})
		return
	}
	asset := a.Uploader.UploadBackground(r.Context(), raw)
	a.json(w, http.StatusOK, uploadBackgroundResponse{
		ImageURL:     asset.URL,
		Status:       string(asset.Status),
		ErrorMessage: asset.ErrorMessage,
	})
}
