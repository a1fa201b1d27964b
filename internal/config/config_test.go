package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATA_BACKEND", BackendMemory)
	t.Setenv("UPTRACE_ENABLED", "false")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "golf-league-api", cfg.ServiceName)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, logging.LevelInfo, cfg.LogLevel)
	require.Equal(t, "photos", cfg.StorageDefaultBucket)
	require.Equal(t, 1048576, cfg.UploadMaxBytes)
	require.Equal(t, 4, cfg.UploadWorkers)
	require.True(t, cfg.MemorySeed)
	require.True(t, cfg.SupabaseCircuit.Enabled)
	require.Equal(t, 5, cfg.SupabaseCircuit.FailureThreshold)
	require.Equal(t, 15*time.Second, cfg.SupabaseCircuit.OpenTimeout)
	require.Empty(t, cfg.AdminAPIKey)
}

func TestLoad_DataBackend(t *testing.T) {
	t.Run("rest requires supabase url", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DATA_BACKEND", BackendREST)
		t.Setenv("SUPABASE_URL", "")

		_, err := Load()
		require.ErrorContains(t, err, "SUPABASE_URL is required")
	})

	t.Run("rest with url", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DATA_BACKEND", " REST ")
		t.Setenv("SUPABASE_URL", "https://example.supabase.co")
		t.Setenv("SUPABASE_KEY", " anon-key ")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, BackendREST, cfg.DataBackend)
		require.Equal(t, "anon-key", cfg.SupabaseKey)
	})

	t.Run("unknown backend", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DATA_BACKEND", "mongo")

		_, err := Load()
		require.ErrorContains(t, err, "invalid DATA_BACKEND")
	})
}

func TestLoad_SupabaseCircuitParsing(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SUPABASE_CIRCUIT_ENABLED", "false")
	t.Setenv("SUPABASE_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("SUPABASE_CIRCUIT_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.SupabaseCircuit.Enabled)
	require.Equal(t, 3, cfg.SupabaseCircuit.FailureThreshold)
	require.Equal(t, 30*time.Second, cfg.SupabaseCircuit.OpenTimeout)
	require.Equal(t, 2, cfg.SupabaseCircuit.HalfOpenMaxReq)

	t.Setenv("SUPABASE_CIRCUIT_FAILURE_COUNT", "0")
	_, err = Load()
	require.Error(t, err)
}

func TestLoad_UploadLimits(t *testing.T) {
	setBaseEnv(t)

	t.Setenv("UPLOAD_MAX_BYTES", "not-a-number")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("UPLOAD_MAX_BYTES", "524288")
	t.Setenv("UPLOAD_WORKERS", "0")
	_, err = Load()
	require.ErrorContains(t, err, "UPLOAD_WORKERS")

	t.Setenv("UPLOAD_WORKERS", "8")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 524288, cfg.UploadMaxBytes)
	require.Equal(t, 8, cfg.UploadWorkers)
}

func TestLoad_EnvFileDoesNotOverrideProcessEnv(t *testing.T) {
	setBaseEnv(t)
	path := filepath.Join(t.TempDir(), "golf.env")
	require.NoError(t, os.WriteFile(path, []byte("ADMIN_API_KEY=from-file\nAPP_SERVICE_NAME=golf-league-file\n"), 0o600))
	t.Setenv("APP_ENV_FILE", path)
	t.Setenv("APP_SERVICE_NAME", "golf-league-env")
	t.Setenv("ADMIN_API_KEY", "")
	require.NoError(t, os.Unsetenv("ADMIN_API_KEY"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "golf-league-env", cfg.ServiceName)
	require.Equal(t, "from-file", cfg.AdminAPIKey)
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://token@api.uptrace.dev?grpc=4317", cfg.UptraceDSN)
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_SERVICE_NAME", "golf-league-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "golf-league-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Run("default wildcard", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://admin.golf.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		require.Equal(t, []string{"https://admin.golf.example.com", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Run("default true", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}
