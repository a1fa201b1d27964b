package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func TestNewJSONWriter_EncodesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).Named("upload")

	logger.InfoContext(context.Background(), "image uploaded", "bucket", "photos", "bytes", 2048, "error", errors.New("boom"))
	require.NoError(t, logger.Sync())

	var line map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	require.Equal(t, "image uploaded", line["msg"])
	require.Equal(t, "INFO", line["level"])
	require.Equal(t, "upload", line["logger"])
	require.Equal(t, "photos", line["bucket"])
	require.EqualValues(t, 2048, line["bytes"])
	require.Equal(t, "boom", line["error"])
	_, hasTrace := line["trace_id"]
	require.False(t, hasTrace)
}

func TestNewJSONWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("hidden")
	logger.Debug("hidden")
	require.Zero(t, buf.Len())

	logger.Warn("shown", "odd")
	require.Contains(t, buf.String(), `"odd":null`)
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	require.NotPanics(t, func() {
		logger.Info("no-op")
		_ = logger.With("k", "v")
	})
}

func TestSetMirror_ReceivesEnabledRecords(t *testing.T) {
	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger := NewJSONWriter(&bytes.Buffer{}, LevelInfo)
	logger.Debug("filtered")
	logger.InfoContext(context.Background(), "kept", "event_id", 4)
	logger.Error("failed")

	require.Equal(t, []string{"info:kept", "error:failed"}, got)

	SetMirror(nil)
	logger.Info("after reset")
	require.Len(t, got, 2)
}
