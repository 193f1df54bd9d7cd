package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"imagegenservice/internal/assets"
	"imagegenservice/internal/clients"
	"imagegenservice/internal/gen"
	"imagegenservice/internal/http/handlers"
	httpapi "imagegenservice/internal/http/httpapi"
	"imagegenservice/internal/infra"
	"imagegenservice/internal/orchestrator"
	"imagegenservice/internal/rpc"
	"imagegenservice/internal/secrets"
	"imagegenservice/internal/status"
	"imagegenservice/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Sibling-service clients: reachability is probed once here; an
	// unreachable service selects the stub variant for the process lifetime.
	dialCtx, cancelDial := context.WithTimeout(ctx, cfg.DialTimeout)
	cart := clients.NewCartClient(dialCtx, cfg.CartServiceAddr, logger)
	products := clients.NewProductClient(dialCtx, cfg.ProductCatalogAddr, logger)
	cancelDial()

	// Object storage, in preference order: S3 bucket, local filesystem,
	// offline mode with synthetic URLs.
	var store assets.ObjectStore
	var syntheticBase string
	switch {
	case cfg.StorageBucket != "":
		syntheticBase = fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.StorageBucket)
		s3store, err := storage.NewS3Store(ctx, cfg.StorageBucket)
		if err != nil {
			logger.Warn().Err(err).Msg("s3 store unavailable, running in offline asset mode")
		} else {
			store = s3store
			logger.Info().Str("bucket", cfg.StorageBucket).Msg("s3 asset store configured")
		}
	case cfg.StoragePath != "":
		syntheticBase = cfg.StorageBaseURL
		fileStore, err := storage.NewFileStore(cfg.StoragePath, cfg.StorageBaseURL)
		if err != nil {
			logger.Warn().Err(err).Msg("filesystem store unavailable, running in offline asset mode")
		} else {
			store = fileStore
			logger.Info().Str("path", cfg.StoragePath).Msg("filesystem asset store configured")
		}
	default:
		logger.Info().Msg("no asset store configured, synthesizing asset urls")
	}
	uploader := assets.NewUploader(store, syntheticBase, logger)

	// The API key is resolved once; without one the backend stays nil and
	// every job renders a placeholder.
	resolveCtx, cancelResolve := context.WithTimeout(ctx, cfg.DependencyTimeout)
	apiKey := secrets.NewResolver(resolveCtx, cfg.GeminiSecretID, cfg.GeminiAPIKey, logger).Resolve(resolveCtx)
	cancelResolve()

	var backend gen.Backend
	if apiKey != "" {
		gemini, err := gen.NewGeminiBackend(ctx, apiKey, cfg.GeminiModel, uploader, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("gemini backend unavailable, placeholder mode only")
		} else {
			backend = gemini
			defer gemini.Close()
			logger.Info().Str("model", cfg.GeminiModel).Msg("gemini backend configured")
		}
	} else {
		logger.Warn().Msg("no gemini api key resolved, placeholder mode only")
	}

	orch := orchestrator.New(orchestrator.Options{
		Cart:          cart,
		Products:      products,
		Backend:       backend,
		Store:         status.NewStore(),
		Logger:        logger,
		CallTimeout:   cfg.DependencyTimeout,
		MaxConcurrent: int64(cfg.MaxConcurrentGenerations),
	})

	// gRPC surface.
	grpcServer := grpc.NewServer()
	rpc.Register(grpcServer, rpc.NewServer(orch, uploader, logger))
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		logger.Fatal().Err(err).Str("port", cfg.GRPCPort).Msg("failed to listen for grpc")
	}
	go func() {
		logger.Info().Msgf("gRPC listening on :%s", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal().Err(err).Msg("grpc server failed")
		}
	}()

	// HTTP surface.
	app := handlers.NewApp(orch, uploader, logger)
	router := httpapi.NewRouter(app, logger, cfg.StoragePath)
	server := infra.NewHTTPServer(cfg, router)
	go func() {
		logger.Info().Msgf("HTTP listening on :%s", cfg.HTTPPort)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown http server")
	}
	grpcServer.GracefulStop()
	logger.Info().Msg("server stopped")
}
