// Package rpc exposes the ImageGenerationService over gRPC. Handlers are
// pure translation between wire shapes and the orchestrator's request model;
// no business logic lives here.
package rpc

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"imagegenservice/internal/assets"
	"imagegenservice/internal/domain"
	"imagegenservice/internal/orchestrator"
	"imagegenservice/internal/wire"
)

// Server implements ImageGenerationServer against the shared orchestrator.
type Server struct {
	orch     *orchestrator.Orchestrator
	uploader *assets.Uploader
	logger   zerolog.Logger
}

// NewServer wires the facade to its collaborators.
func NewServer(orch *orchestrator.Orchestrator, uploader *assets.Uploader, logger zerolog.Logger) *Server {
	return &Server{orch: orch, uploader: uploader, logger: logger}
}

// GenerateCartImage runs the generation pipeline for the request. Domain
// rejections map to InvalidArgument; pipeline outcomes, including failed
// jobs, ride in the response body.
func (s *Server) GenerateCartImage(ctx context.Context, req *wire.GenerateCartImageRequest) (*wire.GenerateCartImageResponse, error) {
	res, err := s.orch.Generate(ctx, toGenerationRequest(req))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyRequest) {
			return nil, grpcstatus.Error(codes.InvalidArgument, err.Error())
		}
		return nil, grpcstatus.Error(codes.Internal, err.Error())
	}
	return &wire.GenerateCartImageResponse{
		ImageURL:     res.ImageURL,
		GenerationID: res.GenerationID,
		Status:       string(res.Status),
		ErrorMessage: res.ErrorMessage,
	}, nil
}

// UploadBackground decodes the base64 payload and hands it to the asset
// store. Processing problems are reported in the response, never as an RPC
// error.
func (s *Server) UploadBackground(ctx context.Context, req *wire.UploadBackgroundRequest) (*wire.UploadBackgroundResponse, error) {
	raw, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		return &wire.UploadBackgroundResponse{
			Status:       string(domain.UploadStatusFailed),
			ErrorMessage: fmt.Sprintf("decode base64 image data: %v", err),
		}, nil
	}
	asset := s.uploader.UploadBackground(ctx, raw)
	return &wire.UploadBackgroundResponse{
		ImageURL:     asset.URL,
		Status:       string(asset.Status),
		ErrorMessage: asset.ErrorMessage,
	}, nil
}

// GetImageGenerationStatus reports the recorded state of a job.
func (s *Server) GetImageGenerationStatus(ctx context.Context, req *wire.GetStatusRequest) (*wire.GetStatusResponse, error) {
	job := s.orch.Status(req.GenerationID)
	return &wire.GetStatusResponse{
		Status:       string(job.Status),
		ImageURL:     job.ImageURL,
		Progress:     job.Progress,
		ErrorMessage: job.ErrorMessage,
	}, nil
}

func toGenerationRequest(req *wire.GenerateCartImageRequest) domain.GenerationRequest {
	items := make([]domain.CartItem, 0, len(req.CartItems))
	for _, it := range req.CartItems {
		q := it.Quantity
		if q <= 0 {
			q = 1
		}
		items = append(items, domain.CartItem{ProductID: it.ProductID, Quantity: q})
	}
	style := req.StylePreference
	if style == "" {
		style = orchestrator.DefaultStyle
	}
	return domain.GenerationRequest{
		UserID:             req.UserID,
		CartItems:          items,
		StylePreference:    style,
		BackgroundImageURL: req.BackgroundImageURL,
	}
}
