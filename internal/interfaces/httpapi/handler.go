package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/golf-league/internal/platform/logging"
	"github.com/riskibarqy/golf-league/internal/usecase"
)

const maxJSONBodyBytes = 1 << 20

type Handler struct {
	playerService *usecase.PlayerService
	seriesService *usecase.SeriesService
	eventService  *usecase.EventService
	resultService *usecase.ResultService
	photoService  *usecase.PhotoService
	uploadService *usecase.UploadService
	viewService   *usecase.ViewService
	logger        *logging.Logger
	validator     *validator.Validate
	maxUpload     int64
}

func NewHandler(
	playerService *usecase.PlayerService,
	seriesService *usecase.SeriesService,
	eventService *usecase.EventService,
	resultService *usecase.ResultService,
	photoService *usecase.PhotoService,
	uploadService *usecase.UploadService,
	viewService *usecase.ViewService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService: playerService,
		seriesService: seriesService,
		eventService:  eventService,
		resultService: resultService,
		photoService:  photoService,
		uploadService: uploadService,
		viewService:   viewService,
		logger:        logger,
		validator:     validator.New(),
		maxUpload:     defaultMaxUploadRequestBytes,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(nil, r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id %q is not a positive integer", usecase.ErrInvalidInput, raw)
	}
	return id, nil
}

// Timestamps arrive either as RFC 3339 or in the shorter forms produced by
// date and datetime-local inputs, which are read as UTC.
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

func parseTimestamp(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s %q is not a valid timestamp", usecase.ErrInvalidInput, field, value)
}

func parseOptionalTimestamp(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	ts, err := parseTimestamp(field, *value)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	status := mapError(err).HTTPStatus
	args = append(args, "error", err, "status", status)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}
