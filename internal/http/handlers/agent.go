package handlers

import (
	"encoding/json"
	"net/http"
)

// Agent-protocol facades. Both envelopes map 1:1 onto the generation
// operation; they differ only in the field naming of the outer envelope.

type agentParams struct {
	UserID        string `json:"user_id"`
	Style         string `json:"style"`
	BackgroundURL string `json:"background_url"`
}

type mcpRequest struct {
	Action string      `json:"action"`
	Params agentParams `json:"params"`
}

type a2aRequest struct {
	Method string      `json:"method"`
	Params agentParams `json:"params"`
}

type agentResult struct {
	ImageURL     string `json:"image_url"`
	GenerationID string `json:"generation_id"`
	Status       string `json:"status"`
}

// MCP handles the action-envelope entry point.
func (a *App) MCP(w http.ResponseWriter, r *http.Request) {
	var req mcpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.agentError(w, "invalid payload")
		return
	}
	if req.Action != "generate_image" {
		a.agentError(w, "Unknown action")
		return
	}
	a.agentGenerate(w, r, req.Params)
}

// A2A handles the method-envelope entry point.
func (a *App) A2A(w http.ResponseWriter, r *http.Request) {
	var req a2aRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.agentError(w, "invalid payload")
		return
	}
	if req.Method != "generate_image" {
		a.agentError(w, "Unknown method")
		return
	}
	a.agentGenerate(w, r, req.Params)
}

func (a *App) agentGenerate(w http.ResponseWriter, r *http.Request, params agentParams) {
	res, err := a.Orchestrator.Generate(r.Context(), buildGenerationRequest(params.UserID, params.Style, params.BackgroundURL, nil))
	if err != nil {
		a.agentError(w, err.Error())
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"result": agentResult{
			ImageURL:     res.ImageURL,
			GenerationID: res.GenerationID,
			Status:       string(res.Status),
		},
		"status": "success",
	})
}

func (a *App) agentError(w http.ResponseWriter, msg string) {
	a.json(w, http.StatusOK, map[string]string{"status": "error", "message": msg})
}
