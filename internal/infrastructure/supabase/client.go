package supabase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/platform/resilience"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

const (
	restPrefix           = "/rest/v1/"
	maxResponseBytes     = 8 << 20
	preferRepresentation = "return=representation"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the hosted store's table API. It is safe for concurrent
// use and is meant to be created once per process.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight[[]byte]
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL, err := validateBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "invalid SUPABASE_URL")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		logger:         logger.Named("supabase"),
		breaker:        cfg.CircuitBreaker.NewBreaker(),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Select fetches the rows of table matching q into target, a pointer to a
// slice.
func (c *Client) Select(ctx context.Context, table string, q Query, target any) error {
	return c.doJSON(ctx, http.MethodGet, table, q, nil, target)
}

// Insert writes row and decodes the stored representation into target.
func (c *Client) Insert(ctx context.Context, table string, q Query, row any, target any) error {
	return c.doJSON(ctx, http.MethodPost, table, q, []any{row}, target)
}

// Update patches the rows matched by q's filters. Matching nothing yields an
// empty representation, not an error.
func (c *Client) Update(ctx context.Context, table string, q Query, patch any, target any) error {
	if len(q.Filters) == 0 {
		return crerr.New("update without filter is not allowed")
	}
	return c.doJSON(ctx, http.MethodPatch, table, q, patch, target)
}

// Delete removes the rows matched by q's filters and decodes the removed rows
// into target.
func (c *Client) Delete(ctx context.Context, table string, q Query, target any) error {
	if len(q.Filters) == 0 {
		return crerr.New("delete without filter is not allowed")
	}
	return c.doJSON(ctx, http.MethodDelete, table, q, nil, target)
}

func (c *Client) doJSON(ctx context.Context, method, table string, q Query, body any, target any) error {
	table = strings.TrimSpace(table)
	if table == "" {
		return crerr.New("table is required")
	}

	fullURL := c.baseURL + restPrefix + table
	if encoded := q.Values().Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = sonic.Marshal(body)
		if err != nil {
			return crerr.Wrapf(err, "marshal %s body", table)
		}
	}

	// Coalesced GETs share one breaker slot: only the executing call takes
	// and releases it.
	call := func() ([]byte, error) {
		if c.circuitEnabled {
			if err := c.breaker.Allow(); err != nil {
				c.logger.WarnContext(ctx, "supabase circuit breaker rejected request", "state", c.breaker.State(), "table", table)
				return nil, errCircuitRejected
			}
		}
		raw, reqErr := c.executeRequest(ctx, method, fullURL, payload)
		if c.circuitEnabled {
			c.breaker.Record(reqErr, isSupabaseCircuitFailure)
		}
		return raw, reqErr
	}

	var (
		raw []byte
		err error
	)
	if method == http.MethodGet {
		raw, err, _ = c.flight.Do(method+" "+fullURL, call)
	} else {
		raw, err = call()
	}
	if err != nil {
		if crerr.Is(err, errCircuitRejected) {
			return fmt.Errorf("%w: data store is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		if isSupabaseCircuitFailure(err) {
			return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
		}
		return err
	}

	if target == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s response", table)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, method, fullURL string, payload []byte) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", preferRepresentation)
	}

	startedAt := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.WarnContext(ctx, "supabase request failed", "method", method, "url", fullURL, "error", err)
		return nil, fmt.Errorf("%w: send request: %s", errSupabaseTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errSupabaseTransient, err)
	}

	c.logger.DebugContext(ctx, "supabase request",
		"method", method,
		"url", fullURL,
		"status", resp.StatusCode,
		"duration_ms", time.Since(startedAt).Milliseconds(),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	apiErr := decodeAPIError(resp.StatusCode, raw)
	if isRetryableStatus(resp.StatusCode) {
		return nil, fmt.Errorf("%w: %w", errSupabaseTransient, apiErr)
	}
	return nil, apiErr
}

func decodeAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{}
	if err := sonic.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
		apiErr = &APIError{Message: abbreviateBody(raw)}
	}
	apiErr.Status = status
	return apiErr
}

func validateBaseURL(raw string) (string, error) {
	candidate := strings.TrimRight(strings.TrimSpace(raw), "/")
	if candidate == "" {
		return "", crerr.New("base url is required")
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return candidate, nil
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if key != "" {
		value = strings.ReplaceAll(value, key, "REDACTED")
	}
	return value
}
