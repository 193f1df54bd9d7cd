// Package orchestrator runs the cart-image generation pipeline: resolve cart
// items, enrich against the product catalog, build a prompt, invoke the
// generative backend, and record per-job status. Every external failure past
// request validation degrades the result instead of failing the job; only an
// empty cart is user-visible as a failure.
package orchestrator

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"imagegenservice/internal/clients"
	"imagegenservice/internal/domain"
	"imagegenservice/internal/gen"
	"imagegenservice/internal/status"
)

const (
	progressEnriched = 25
	progressPrompted = 50
	progressRendered = 100
)

// Result is the synchronous outcome of one generation request.
type Result struct {
	GenerationID string
	ImageURL     string
	Status       domain.JobStatus
	ErrorMessage string
}

// Options configures an Orchestrator.
type Options struct {
	Cart     clients.CartClient
	Products clients.ProductClient
	Backend  gen.Backend // nil leaves the backend in placeholder-only mode
	Store    *status.Store
	Logger   zerolog.Logger
	// CallTimeout bounds each external call made by the pipeline.
	CallTimeout time.Duration
	// MaxConcurrent bounds the number of pipelines executing at once.
	MaxConcurrent int64
	// Rand drives placeholder selection; tests inject a seeded source.
	Rand *rand.Rand
}

// Orchestrator owns the generation pipeline. One instance is shared by all
// protocol facades.
type Orchestrator struct {
	cart        clients.CartClient
	products    clients.ProductClient
	backend     gen.Backend
	store       *status.Store
	logger      zerolog.Logger
	callTimeout time.Duration
	sem         *semaphore.Weighted

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New builds an Orchestrator, applying defaults for unset options.
func New(opts Options) *Orchestrator {
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 10 * time.Second
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 8
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Orchestrator{
		cart:        opts.Cart,
		products:    opts.Products,
		backend:     opts.Backend,
		store:       opts.Store,
		logger:      opts.Logger,
		callTimeout: opts.CallTimeout,
		sem:         semaphore.NewWeighted(opts.MaxConcurrent),
		rng:         opts.Rand,
	}
}

// Generate validates the request, creates a job, and runs the pipeline to a
// terminal state. The only error return is the domain rejection for a
// request with neither items nor a user id; every other problem lands in the
// job record.
func (o *Orchestrator) Generate(ctx context.Context, req domain.GenerationRequest) (Result, error) {
	if len(req.CartItems) == 0 && strings.TrimSpace(req.UserID) == "" {
		return Result{}, domain.ErrEmptyRequest
	}
	// The job outlives the caller: a client that disconnects mid-request
	// must not abort a pipeline that still writes status. Per-call timeouts
	// remain the only bound on external work.
	ctx = context.WithoutCancel(ctx)
	if err := o.sem.Acquire(ctx, 1); err != nil {
		return Result{}, fmt.Errorf("acquire worker slot: %w", err)
	}
	defer o.sem.Release(1)

	jobID := o.store.Create(req.UserID)
	o.logger.Info().Str("job_id", jobID).Str("user_id", req.UserID).Msg("starting image generation")
	return o.run(ctx, jobID, req), nil
}

// Status returns the recorded job state, or a synthesized not_found record.
func (o *Orchestrator) Status(generationID string) domain.Job {
	return o.store.Get(generationID)
}

// run executes the pipeline for an already-created job. Panics are recovered
// at this boundary and recorded as a failed job, never surfaced to the
// transport.
func (o *Orchestrator) run(ctx context.Context, jobID string, req domain.GenerationRequest) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			o.logger.Error().Str("job_id", jobID).Str("panic", msg).Msg("generation pipeline panicked")
			o.fail(jobID, msg)
			res = Result{GenerationID: jobID, Status: domain.JobStatusFailed, ErrorMessage: msg}
		}
	}()

	items := req.CartItems
	if len(items) == 0 {
		items = o.resolveCart(ctx, req.UserID)
	}
	if len(items) == 0 {
		o.logger.Warn().Str("job_id", jobID).Str("user_id", req.UserID).Msg("no cart items resolved")
		o.fail(jobID, domain.ErrNoItems.Error())
		return Result{
			GenerationID: jobID,
			Status:       domain.JobStatusFailed,
			ErrorMessage: domain.ErrNoItems.Error(),
		}
	}

	details := o.enrich(ctx, jobID, items)
	o.advance(jobID, progressEnriched)

	prompt := buildPrompt(details, req.StylePreference, req.BackgroundImageURL)
	o.advance(jobID, progressPrompted)

	imageURL := o.render(ctx, jobID, prompt, req.StylePreference)
	o.advance(jobID, progressRendered)

	o.store.Update(jobID, func(j *domain.Job) {
		j.Status = domain.JobStatusCompleted
		j.ImageURL = imageURL
	})
	o.logger.Info().Str("job_id", jobID).Str("image_url", imageURL).Msg("image generation completed")
	return Result{GenerationID: jobID, ImageURL: imageURL, Status: domain.JobStatusCompleted}
}

// resolveCart looks up the user's cart. Lookup failures resolve to an empty
// cart; the caller decides whether that fails the job.
func (o *Orchestrator) resolveCart(ctx context.Context, userID string) []domain.CartItem {
	cctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()
	items, err := o.cart.GetCart(cctx, userID)
	if err != nil {
		o.logger.Warn().Err(err).Str("user_id", userID).Msg("cart lookup failed")
		return nil
	}
	return items
}

// enrich resolves catalog detail per item. Individual lookup failures drop
// the item; if nothing enriches, bare details derived from the raw ids keep
// the pipeline moving.
func (o *Orchestrator) enrich(ctx context.Context, jobID string, items []domain.CartItem) []domain.ProductDetail {
	details := make([]domain.ProductDetail, 0, len(items))
	for _, item := range items {
		cctx, cancel := context.WithTimeout(ctx, o.callTimeout)
		detail, err := o.products.GetProduct(cctx, item.ProductID)
		cancel()
		if err != nil {
			o.logger.Warn().Err(err).Str("job_id", jobID).Str("product_id", item.ProductID).Msg("product lookup failed, dropping item")
			continue
		}
		detail.Quantity = item.Quantity
		details = append(details, detail)
	}
	if len(details) == 0 {
		for _, item := range items {
			details = append(details, domain.ProductDetail{
				ID:       item.ProductID,
				Name:     item.ProductID,
				Quantity: item.Quantity,
			})
		}
	}
	return details
}

// render invokes the backend when one is available; any error or
// unavailability selects a placeholder asset instead of failing the job.
func (o *Orchestrator) render(ctx context.Context, jobID, prompt, style string) string {
	if o.backend != nil {
		cctx, cancel := context.WithTimeout(ctx, o.callTimeout)
		url, err := o.backend.GenerateImage(cctx, jobID, prompt)
		cancel()
		if err == nil && url != "" {
			return url
		}
		o.logger.Warn().Err(err).Str("job_id", jobID).Msg("generation backend failed, selecting placeholder")
	}
	return o.placeholderImage(style, jobID)
}

func (o *Orchestrator) advance(jobID string, progress int) {
	o.store.Update(jobID, func(j *domain.Job) { j.AdvanceProgress(progress) })
}

func (o *Orchestrator) fail(jobID, msg string) {
	o.store.Update(jobID, func(j *domain.Job) {
		j.Status = domain.JobStatusFailed
		j.ErrorMessage = msg
	})
}
