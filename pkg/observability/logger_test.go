package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates text logger", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
			Output: &buf,
		}

		logger := NewLogger(cfg)
		require.NotNil(t, logger)

		logger.Info("test message", "key", "value")
		output := buf.String()

		assert.Contains(t, output, "test message")
		assert.Contains(t, output, "key=value")
	})

	t.Run("creates JSON logger", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatJSON,
			Output: &buf,
		}

		logger := NewLogger(cfg)
		require.NotNil(t, logger)

		logger.Info("test message", "key", "value")
		output := buf.String()

		var logEntry map[string]any
		err := json.Unmarshal([]byte(output), &logEntry)
		require.NoError(t, err)

		assert.Equal(t, "test message", logEntry["msg"])
		assert.Equal(t, "value", logEntry["key"])
	})

	t.Run("respects log level", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := LogConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
			Output: &buf,
		}

		logger := NewLogger(cfg)
		logger.Info("not logged")
		logger.Warn("logged")

		output := buf.String()
		assert.NotContains(t, output, "not logged")
		assert.Contains(t, output, "logged")
	})

	t.Run("adds service attributes", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := LogConfig{
			Level:       LogLevelInfo,
			Format:      LogFormatJSON,
			Output:      &buf,
			ServiceName: "bagelpay-sandbox",
		}

		logger := NewLogger(cfg)
		logger.Info("hello")

		var logEntry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
		assert.Equal(t, "bagelpay-sandbox", logEntry["service"])
	})
}

func TestCorrelationIDPropagation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:  LogLevelInfo,
		Format: LogFormatJSON,
		Output: &buf,
	})

	ctx := WithCorrelationID(context.Background(), "corr-123")
	logger.InfoContext(ctx, "with correlation")

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "corr-123", logEntry["correlation_id"])
}

func TestWithCorrelationID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")
	assert.NotEmpty(t, CorrelationIDFromContext(ctx))
}

func TestParseSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseSlogLevel(LogLevelDebug))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel(LogLevelInfo))
	assert.Equal(t, slog.LevelWarn, parseSlogLevel(LogLevelWarn))
	assert.Equal(t, slog.LevelError, parseSlogLevel(LogLevelError))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("bogus"))
}
