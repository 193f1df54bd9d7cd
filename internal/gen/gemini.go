// Package gen wraps the generative image backend. The orchestrator only sees
// the Backend contract; any error from the real implementation is absorbed
// upstream by the placeholder path.
package gen

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"imagegenservice/internal/assets"
)

// Backend renders a cart image for a prompt and returns its URL.
type Backend interface {
	GenerateImage(ctx context.Context, jobID, prompt string) (string, error)
}

// GeminiBackend renders images through the Gemini API and persists the
// result via the asset uploader.
type GeminiBackend struct {
	client   *genai.Client
	model    string
	uploader *assets.Uploader
	logger   zerolog.Logger
}

// NewGeminiBackend builds a backend for model using apiKey. An empty key is
// an error; the caller decides whether to run without a backend.
func NewGeminiBackend(ctx context.Context, apiKey, model string, uploader *assets.Uploader, logger zerolog.Logger) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, errors.New("gen: api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gen: create gemini client: %w", err)
	}
	return &GeminiBackend{client: client, model: model, uploader: uploader, logger: logger}, nil
}

// GenerateImage submits the prompt and stores the first image part of the
// response under a job-scoped key.
func (g *GeminiBackend) GenerateImage(ctx context.Context, jobID, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gen: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gen: response contained no candidates")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		blob, ok := part.(genai.Blob)
		if !ok {
			continue
		}
		g.logger.Info().Str("job_id", jobID).Str("mime", blob.MIMEType).Int("bytes", len(blob.Data)).Msg("gemini returned image data")
		return g.uploader.StoreGenerated(ctx, jobID, blob.Data, blob.MIMEType), nil
	}
	return "", errors.New("gen: response contained no image data")
}

// Close releases the underlying API client.
func (g *GeminiBackend) Close() error {
	return g.client.Close()
}
