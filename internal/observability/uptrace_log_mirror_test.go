package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsQuietRequestLog(t *testing.T) {
	assert.True(t, isQuietRequestLog("http request", []any{"method", "GET", "path", "/healthz"}))
	assert.True(t, isQuietRequestLog("http request", []any{"path", "/openapi.yaml"}))
	assert.False(t, isQuietRequestLog("http request", []any{"path", "/v1/players"}))
	assert.False(t, isQuietRequestLog("storage upload request", []any{"path", "/healthz"}))
	assert.False(t, isQuietRequestLog("http request", []any{"status", 200}))
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"bucket", "photos", "uploaded", 2, 7, "x", "payload"})
	require.Len(t, attrs, 4)

	assert.Equal(t, "bucket", attrs[0].Key)
	assert.Equal(t, "photos", attrs[0].Value.AsString())
	assert.Equal(t, "uploaded", attrs[1].Key)
	assert.Equal(t, int64(2), attrs[1].Value.AsInt64())
	assert.Equal(t, "arg_2", attrs[2].Key)
	assert.Equal(t, "payload", attrs[3].Key)
	assert.Equal(t, otellog.KindEmpty, attrs[3].Value.Kind())
}

func TestLogAttributes_RedactsSecrets(t *testing.T) {
	attrs := logAttributes([]any{
		"apikey", "anon-key",
		"headers", map[string]string{"Authorization": "Bearer anon-key", "Accept": "application/json"},
	})
	require.Len(t, attrs, 2)
	assert.Equal(t, redactedValue, attrs[0].Value.AsString())

	headers := attrs[1].Value.AsMap()
	require.Len(t, headers, 2)
	assert.Equal(t, "Accept", headers[0].Key)
	assert.Equal(t, "application/json", headers[0].Value.AsString())
	assert.Equal(t, "Authorization", headers[1].Key)
	assert.Equal(t, redactedValue, headers[1].Value.AsString())
}

func TestLogValue_Kinds(t *testing.T) {
	type points int32

	assert.Equal(t, int64(36), logValue(points(36), 0).AsInt64())
	assert.Equal(t, 12.4, logValue(12.4, 0).AsFloat64())
	assert.True(t, logValue(true, 0).AsBool())
	assert.Equal(t, "1.5s", logValue(1500*time.Millisecond, 0).AsString())
	assert.Equal(t, "upload failed", logValue(errors.New("upload failed"), 0).AsString())
	assert.Equal(t, otellog.KindEmpty, logValue((*int)(nil), 0).Kind())

	slice := logValue([]string{"a.jpg", "b.png"}, 0)
	require.Equal(t, otellog.KindSlice, slice.Kind())
	assert.Len(t, slice.AsSlice(), 2)
}

func TestToOTelSeverity(t *testing.T) {
	assert.Equal(t, otellog.SeverityDebug, toOTelSeverity(zapcore.DebugLevel))
	assert.Equal(t, otellog.SeverityWarn, toOTelSeverity(zapcore.WarnLevel))
	assert.Equal(t, otellog.SeverityError, toOTelSeverity(zapcore.ErrorLevel))
	assert.Equal(t, otellog.SeverityFatal, toOTelSeverity(zapcore.FatalLevel))
}
