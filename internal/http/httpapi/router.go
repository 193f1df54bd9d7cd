package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"imagegenservice/internal/http/handlers"
	"imagegenservice/internal/middleware"
)

// NewRouter assembles the HTTP surface: health, the v1 API, and the agent
// protocol entry points. A non-empty staticDir is additionally served under
// /static for filesystem-store deployments.
func NewRouter(app *handlers.App, logger zerolog.Logger, staticDir string) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Logger(logger))

	r.Get("/healthz", app.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/generate-image", app.GenerateImage)
		r.Post("/upload-background", app.UploadBackground)
		r.Get("/status/{generation_id}", app.GenerationStatus)
	})

	r.Post("/mcp", app.MCP)
	r.Post("/a2a", app.A2A)

	if staticDir != "" {
		fs := stdhttp.StripPrefix("/static/", stdhttp.FileServer(stdhttp.Dir(staticDir)))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
