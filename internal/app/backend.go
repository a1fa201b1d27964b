package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-league/internal/config"
	"github.com/riskibarqy/golf-league/internal/domain/event"
	"github.com/riskibarqy/golf-league/internal/domain/photo"
	"github.com/riskibarqy/golf-league/internal/domain/player"
	"github.com/riskibarqy/golf-league/internal/domain/result"
	"github.com/riskibarqy/golf-league/internal/domain/series"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/golf-league/internal/infrastructure/repository/rest"
	"github.com/riskibarqy/golf-league/internal/infrastructure/supabase"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

type repositories struct {
	players player.Repository
	series  series.Repository
	events  event.Repository
	results result.Repository
	photos  photo.Repository
	close   func() error
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.DataBackend {
	case config.BackendREST:
		return newRESTRepositories(cfg, logger)
	case config.BackendPostgres:
		return newPostgresRepositories(ctx, cfg, logger)
	case config.BackendMemory:
		return newMemoryRepositories(ctx, cfg, logger)
	default:
		return repositories{}, fmt.Errorf("unsupported data backend %q", cfg.DataBackend)
	}
}

func newRESTRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	client, err := supabase.NewClient(supabase.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.SupabaseTimeout},
		BaseURL:        cfg.SupabaseURL,
		APIKey:         cfg.SupabaseKey,
		Timeout:        cfg.SupabaseTimeout,
		Logger:         logger,
		CircuitBreaker: cfg.SupabaseCircuit,
	})
	if err != nil {
		return repositories{}, fmt.Errorf("build supabase client: %w", err)
	}

	return repositories{
		players: rest.NewPlayerRepository(client),
		series:  rest.NewSeriesRepository(client),
		events:  rest.NewEventRepository(client),
		results: rest.NewResultRepository(client),
		photos:  rest.NewPhotoRepository(client),
		close:   func() error { return nil },
	}, nil
}

func newPostgresRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	target := resolvePostgresTarget(cfg.DBURL, cfg.ServiceName, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", target.DSN,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(target.DBName),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return repositories{}, fmt.Errorf("ping postgres: %w", err)
	}

	if cfg.DBBootstrapSeed {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
		}
		logger.Info("postgres bootstrap seed applied")
	}

	return postgresRepositories(db), nil
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		players: postgres.NewPlayerRepository(db),
		series:  postgres.NewSeriesRepository(db),
		events:  postgres.NewEventRepository(db),
		results: postgres.NewResultRepository(db),
		photos:  postgres.NewPhotoRepository(db),
		close:   db.Close,
	}
}

func newMemoryRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	store := memory.NewStore()
	if cfg.MemorySeed {
		if err := memory.Seed(ctx, store); err != nil {
			return repositories{}, fmt.Errorf("seed memory store: %w", err)
		}
		logger.Info("memory store seeded with demo league")
	}

	return repositories{
		players: memory.NewPlayerRepository(store),
		series:  memory.NewSeriesRepository(store),
		events:  memory.NewEventRepository(store),
		results: memory.NewResultRepository(store),
		photos:  memory.NewPhotoRepository(store),
		close:   func() error { return nil },
	}, nil
}

// newObjectStorage returns the hosted object store, or a stand-in that
// rejects uploads when SUPABASE_URL is not configured.
func newObjectStorage(cfg config.Config, logger *logging.Logger) (usecase.ObjectStorage, error) {
	if cfg.SupabaseURL == "" {
		logger.Warn("SUPABASE_URL is empty, image uploads are disabled")
		return unavailableStorage{}, nil
	}

	storage, err := supabase.NewStorage(supabase.StorageConfig{
		BaseURL:        cfg.SupabaseURL,
		APIKey:         cfg.SupabaseKey,
		Timeout:        cfg.SupabaseTimeout,
		Logger:         logger,
		CircuitBreaker: cfg.SupabaseCircuit,
	})
	if err != nil {
		return nil, fmt.Errorf("build supabase storage: %w", err)
	}
	return storage, nil
}

type unavailableStorage struct{}

func (unavailableStorage) Upload(context.Context, string, string, string, []byte) error {
	return fmt.Errorf("%w: object storage is not configured", usecase.ErrDependencyUnavailable)
}

func (unavailableStorage) PublicURL(string, string) string {
	return ""
}
