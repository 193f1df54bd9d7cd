// Package assets processes and persists image bytes. Uploads are decoded,
// bounded to a maximum dimension, normalized to one color model, and encoded
// as JPEG before storage. Running without a backing store is a supported
// degraded mode, not an error: the uploader then answers with synthetic
// placeholder URLs.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/image/draw"

	"imagegenservice/internal/domain"
)

const (
	maxWidth    = 1920
	maxHeight   = 1080
	jpegQuality = 85
)

// ObjectStore persists encoded bytes under a key and returns a public URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Uploader validates, normalizes, and stores images.
type Uploader struct {
	store         ObjectStore // nil means offline mode
	syntheticBase string      // address prefix for synthetic URLs in offline mode
	logger        zerolog.Logger
}

// NewUploader builds an uploader over store. A nil store enables offline
// mode; syntheticBase addresses the synthetic URLs and should match the
// configured storage mode.
func NewUploader(store ObjectStore, syntheticBase string, logger zerolog.Logger) *Uploader {
	if syntheticBase == "" {
		syntheticBase = "https://cart-image-assets.s3.amazonaws.com"
	}
	return &Uploader{store: store, syntheticBase: strings.TrimRight(syntheticBase, "/"), logger: logger}
}

// UploadBackground processes a raw background image and persists it under a
// fresh key. Decode and encode problems yield a failed asset; storage
// problems degrade to a synthetic URL. Nothing raises past this boundary.
func (u *Uploader) UploadBackground(ctx context.Context, raw []byte) domain.UploadedAsset {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return domain.UploadedAsset{
			Status:       domain.UploadStatusFailed,
			ErrorMessage: fmt.Sprintf("decode image: %v", err),
		}
	}
	normalized := normalize(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, normalized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return domain.UploadedAsset{
			Status:       domain.UploadStatusFailed,
			ErrorMessage: fmt.Sprintf("encode image: %v", err),
		}
	}

	key := fmt.Sprintf("backgrounds/%s.jpg", uuid.NewString())
	url := u.put(ctx, key, buf.Bytes(), "image/jpeg")
	u.logger.Info().Str("key", key).Str("source_format", format).Msg("background image uploaded")
	return domain.UploadedAsset{URL: url, Status: domain.UploadStatusSuccess}
}

// StoreGenerated persists a rendered cart image for jobID and returns its
// URL. Unlike UploadBackground the bytes are trusted as produced by the
// backend and stored as-is.
func (u *Uploader) StoreGenerated(ctx context.Context, jobID string, data []byte, contentType string) string {
	ext := "png"
	if contentType == "image/jpeg" {
		ext = "jpg"
	}
	key := fmt.Sprintf("generated/%s.%s", jobID, ext)
	return u.put(ctx, key, data, contentType)
}

// put stores the bytes when a store is configured, otherwise (or when the
// store fails) synthesizes a placeholder URL. The caller always gets an
// address back.
func (u *Uploader) put(ctx context.Context, key string, data []byte, contentType string) string {
	if u.store != nil {
		url, err := u.store.Put(ctx, key, data, contentType)
		if err == nil {
			return url
		}
		u.logger.Warn().Err(err).Str("key", key).Msg("object store unavailable, returning synthetic url")
	}
	return fmt.Sprintf("%s/mock-%s", u.syntheticBase, key)
}

// normalize bounds the image to the maximum dimensions, preserving aspect
// ratio, and redraws it into a single color model.
func normalize(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxWidth || h > maxHeight {
		scale := math.Min(float64(maxWidth)/float64(w), float64(maxHeight)/float64(h))
		w = int(math.Round(float64(w) * scale))
		h = int(math.Round(float64(h) * scale))
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
