package rpc

import (
	"context"
	"encoding/base64"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"imagegenservice/internal/assets"
	"imagegenservice/internal/clients"
	"imagegenservice/internal/domain"
	"imagegenservice/internal/orchestrator"
	"imagegenservice/internal/status"
	"imagegenservice/internal/wire"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	orch := orchestrator.New(orchestrator.Options{
		Cart:     clients.StubCartClient{},
		Products: clients.StubProductClient{},
		Store:    status.NewStore(),
		Logger:   zerolog.Nop(),
		Rand:     rand.New(rand.NewSource(1)),
	})
	uploader := assets.NewUploader(nil, "", zerolog.Nop())
	return NewServer(orch, uploader, zerolog.Nop())
}

func TestGenerateCartImageRejectsEmptyRequest(t *testing.T) {
	s := newTestServer(t)
	_, err := s.GenerateCartImage(context.Background(), &wire.GenerateCartImageRequest{})
	st, ok := grpcstatus.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}

func TestGenerateCartImageCompletesWithExplicitItems(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.GenerateCartImage(context.Background(), &wire.GenerateCartImageRequest{
		UserID:          "u1",
		StylePreference: "vintage",
		CartItems:       []wire.CartItem{{ProductID: "p1", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("GenerateCartImage returned error: %v", err)
	}
	if resp.Status != string(domain.JobStatusCompleted) {
		t.Fatalf("Status = %q, want completed: %s", resp.Status, resp.ErrorMessage)
	}
	if resp.ImageURL == "" || resp.GenerationID == "" {
		t.Fatalf("resp = %+v", resp)
	}

	st, err := s.GetImageGenerationStatus(context.Background(), &wire.GetStatusRequest{GenerationID: resp.GenerationID})
	if err != nil {
		t.Fatalf("GetImageGenerationStatus returned error: %v", err)
	}
	if st.Status != string(domain.JobStatusCompleted) || st.Progress != 100 {
		t.Fatalf("status = %+v", st)
	}
}

func TestGenerateCartImageEmptyResolvableCartFailsInBody(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.GenerateCartImage(context.Background(), &wire.GenerateCartImageRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("GenerateCartImage returned error: %v", err)
	}
	if resp.Status != string(domain.JobStatusFailed) || resp.ErrorMessage == "" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestUploadBackgroundBadBase64ReportsFailure(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.UploadBackground(context.Background(), &wire.UploadBackgroundRequest{ImageData: "!!!not-base64!!!"})
	if err != nil {
		t.Fatalf("UploadBackground returned error: %v", err)
	}
	if resp.Status != string(domain.UploadStatusFailed) || resp.ErrorMessage == "" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestUploadBackgroundNonImagePayloadReportsFailure(t *testing.T) {
	s := newTestServer(t)
	payload := base64.StdEncoding.EncodeToString([]byte("plain text"))
	resp, err := s.UploadBackground(context.Background(), &wire.UploadBackgroundRequest{ImageData: payload})
	if err != nil {
		t.Fatalf("UploadBackground returned error: %v", err)
	}
	if resp.Status != string(domain.UploadStatusFailed) || resp.ErrorMessage == "" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestGetImageGenerationStatusUnknownID(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.GetImageGenerationStatus(context.Background(), &wire.GetStatusRequest{GenerationID: "missing"})
	if err != nil {
		t.Fatalf("GetImageGenerationStatus returned error: %v", err)
	}
	if resp.Status != string(domain.JobStatusNotFound) {
		t.Fatalf("Status = %q, want not_found", resp.Status)
	}
}
