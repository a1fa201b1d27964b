package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/golf-league/internal/config"
	"github.com/riskibarqy/golf-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/golf-league/internal/platform/id"
	"github.com/riskibarqy/golf-league/internal/platform/imaging"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

// NewHTTPServer builds the admin API server for the configured data backend.
// The returned cleanup releases backend resources and must be called after
// the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	storage, err := newObjectStorage(cfg, logger)
	if err != nil {
		_ = repos.close()
		return nil, nil, err
	}

	compressor := imaging.NewCompressor(imaging.Config{
		MaxBytes:     cfg.UploadMaxBytes,
		MaxDimension: cfg.UploadMaxDimension,
	})
	uploadSvc := usecase.NewUploadService(storage, compressor, id.NewUUIDGenerator(), usecase.UploadConfig{
		DefaultBucket: cfg.StorageDefaultBucket,
		Workers:       cfg.UploadWorkers,
	}, logger.Named("upload"))

	handler := httpapi.NewHandler(
		usecase.NewPlayerService(repos.players, logger),
		usecase.NewSeriesService(repos.series, logger),
		usecase.NewEventService(repos.events, logger),
		usecase.NewResultService(repos.results, logger),
		usecase.NewPhotoService(repos.photos, uploadSvc, logger),
		uploadSvc,
		usecase.NewViewService(repos.players, repos.series, repos.events, repos.results, repos.photos, logger),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminAPIKey:        cfg.AdminAPIKey,
	})

	if cfg.AdminAPIKey == "" {
		logger.Warn("ADMIN_API_KEY is empty, admin routes will refuse requests")
	}
	logger.Info("application wired",
		"data_backend", cfg.DataBackend,
		"storage_configured", cfg.SupabaseURL != "",
		"upload_workers", cfg.UploadWorkers,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.close, nil
}
