package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/log"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/correlationid"
)

func TestNew(t *testing.T) {
	t.Run("Should enrich JSON records with correlation id", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, config.Log{Format: config.LogFormatJSON, Level: slog.LevelInfo})

		ctx := correlationid.NewContext(context.Background(), "corr-1")
		logger.With(slog.String("service", "sale")).InfoContext(ctx, "sale created", slog.Int64("sale_id", 3))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "sale created", record["msg"])
		assert.Equal(t, "corr-1", record[log.CorrelationIDKey])
		assert.Equal(t, "sale", record["service"])
		assert.NotContains(t, record, log.TraceIDKey)
	})

	t.Run("Should add context attributes at the top level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, config.Log{Format: config.LogFormatJSON, Level: slog.LevelInfo})

		ctx := log.ContextWithAttrs(context.Background(), slog.String("topic", "sales.sale.created"))
		ctx = log.ContextWithAttrs(ctx, slog.Int64("sale_id", 7))
		logger.InfoContext(ctx, "sale recorded")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "sales.sale.created", record["topic"])
		assert.EqualValues(t, 7, record["sale_id"])
		assert.NotContains(t, record, log.CorrelationIDKey)
	})

	t.Run("Should leave the parent context untouched", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, config.Log{Format: config.LogFormatJSON, Level: slog.LevelInfo})

		parent := context.Background()
		_ = log.ContextWithAttrs(parent, slog.String("topic", "inventory.alert.raised"))
		logger.InfoContext(parent, "poll")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.NotContains(t, record, "topic")
	})

	t.Run("Should drop records below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, config.Log{Format: config.LogFormatText, Level: slog.LevelWarn})

		logger.Info("ignored")
		assert.Empty(t, buf.String())

		logger.Warn("stock alert raised")
		assert.Contains(t, buf.String(), "stock alert raised")
	})
}
