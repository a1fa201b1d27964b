package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/platform/resilience"
	"github.com/riskibarqy/golf-league/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

const storagePrefix = "/storage/v1/object/"

type StorageConfig struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Storage uploads objects into buckets of the hosted object store and builds
// their public URLs.
type Storage struct {
	client         *fasthttp.Client
	baseURL        string
	apiKey         string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

type storageErrorBody struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

func NewStorage(cfg StorageConfig) (*Storage, error) {
	baseURL, err := validateBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid SUPABASE_URL")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Storage{
		client: &fasthttp.Client{
			Name:                "golf-league-storage",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		timeout:        timeout,
		logger:         logger.Named("storage"),
		breaker:        cfg.CircuitBreaker.NewBreaker(),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}, nil
}

// PublicURL returns {base}/storage/v1/object/public/{bucket}/{path}.
func (s *Storage) PublicURL(bucket, path string) string {
	return s.baseURL + storagePrefix + "public/" + escapePath(bucket) + "/" + escapePath(path)
}

// Upload stores data at bucket/path. Existing objects are never overwritten.
func (s *Storage) Upload(ctx context.Context, bucket, path, contentType string, data []byte) error {
	bucket = strings.Trim(strings.TrimSpace(bucket), "/")
	path = strings.Trim(strings.TrimSpace(path), "/")
	if bucket == "" || path == "" {
		return crerr.New("bucket and path are required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.circuitEnabled {
		if err := s.breaker.Allow(); err != nil {
			s.logger.WarnContext(ctx, "storage circuit breaker rejected request", "state", s.breaker.State())
			return fmt.Errorf("%w: object store is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	uploadURL := s.baseURL + storagePrefix + escapePath(bucket) + "/" + escapePath(path)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	s.logger.DebugContext(ctx, "storage upload request",
		"bucket", bucket,
		"path", path,
		"size", len(data),
		"curl_preview", buildUploadCurlPreview(uploadURL, contentType, len(data)),
	)

	err := s.execute(ctx, uploadURL, contentType, data)
	if s.circuitEnabled {
		s.breaker.Record(err, isSupabaseCircuitFailure)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "storage upload failed", "bucket", bucket, "path", path, "error", err)
		return err
	}
	return nil
}

func (s *Storage) execute(ctx context.Context, uploadURL, contentType string, data []byte) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uploadURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType(contentType)
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("x-upsert", "false")
	req.Header.Set("cache-control", "max-age=3600")
	req.SetBodyRaw(data)

	deadline := time.Now().Add(s.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := s.client.DoDeadline(req, resp, deadline); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: send upload: %s", errSupabaseTransient, sanitizeSensitiveText(err.Error(), s.apiKey))
	}

	status := resp.StatusCode()
	if status >= 200 && status < 300 {
		return nil
	}

	body := resp.Body()
	apiErr := &APIError{Status: status}
	var decoded storageErrorBody
	if err := sonic.Unmarshal(body, &decoded); err == nil && decoded.Message != "" {
		apiErr.Code = decoded.Error
		apiErr.Message = decoded.Message
	} else {
		apiErr.Message = abbreviateBody(body)
	}
	if isRetryableStatus(status) {
		return fmt.Errorf("%w: %w", errSupabaseTransient, apiErr)
	}
	return apiErr
}

func escapePath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

func buildUploadCurlPreview(uploadURL, contentType string, size int) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}
	appendFlagHeader := func(value string) {
		appendPart("-H")
		appendPart(shellQuote(value))
	}

	appendPart("curl")
	appendPart("-X")
	appendPart("POST")
	appendPart(shellQuote(uploadURL))
	appendFlagHeader("apikey: ***")
	appendFlagHeader("Authorization: Bearer ***")
	appendFlagHeader("Content-Type: " + contentType)
	appendFlagHeader("x-upsert: false")
	appendPart("--data-binary")
	appendPart(shellQuote("@<" + strconv.Itoa(size) + " bytes>"))

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'"'"'`) + "'"
}
